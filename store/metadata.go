package store

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// FileMetadata describes a single store file as known to the recovery source.
// Size and Checksum are what the receiving side verifies incoming content
// against.
type FileMetadata struct {
	Name     string
	Size     int64
	Checksum string // hex-encoded blake3 digest of the file content
}

// Digest returns the hex-encoded blake3 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
