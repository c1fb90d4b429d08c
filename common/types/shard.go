package types

import "fmt"

// ShardID identifies a single shard of an index.
type ShardID struct {
	Index string
	Shard uint32
}

// String returns a string representation of the ShardID, for logging
// purposes. It implements the Stringer interface.
func (s ShardID) String() string {
	return fmt.Sprintf("[%s][%d]", s.Index, s.Shard)
}
