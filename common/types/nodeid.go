package types

import (
	"crypto/rand"
	"encoding/hex"
)

// NodeIDSize in bytes.
const NodeIDSize = 32

// NodeID identifies a node in the cluster.
type NodeID [NodeIDSize]byte

// BytesToNodeID is a helper to copy buffer into NodeID struct.
func BytesToNodeID(buf []byte) (id NodeID) {
	copy(id[:], buf)
	return id
}

// RandomNodeID generates a random NodeID for testing.
func RandomNodeID() NodeID {
	var id NodeID
	if _, err := rand.Read(id[:]); err != nil {
		return NodeID{}
	}
	return id
}

// String returns a string representation of the NodeID, for logging purposes.
// It implements the Stringer interface.
func (id NodeID) String() string {
	return hex.EncodeToString(id[:])
}

// Bytes returns the byte representation of the node's public key.
func (id NodeID) Bytes() []byte {
	return id[:]
}

// ShortString returns the first 5 characters of the ID, for logging purposes.
func (id NodeID) ShortString() string {
	s := id.String()
	if len(s) > 5 {
		s = s[:5]
	}
	return s
}

// EmptyNodeID is a canonical empty NodeID.
var EmptyNodeID NodeID
