package store

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/zeebo/blake3"
)

// ErrVerification is wrapped by all content verification failures.
var ErrVerification = errors.New("content verification failed")

// VerifyingWriter writes one store file, digesting content as it arrives so
// the result can be checked against the metadata the source advertised.
// It is not safe for concurrent writes.
type VerifyingWriter struct {
	name    string
	file    afero.File
	meta    FileMetadata
	hasher  *blake3.Hasher
	written int64
}

func newVerifyingWriter(file afero.File, name string, meta FileMetadata) *VerifyingWriter {
	return &VerifyingWriter{
		name:   name,
		file:   file,
		meta:   meta,
		hasher: blake3.New(),
	}
}

// Name returns the name the file is being written under, which may be a
// temporary name rather than the one in the metadata.
func (w *VerifyingWriter) Name() string {
	return w.name
}

func (w *VerifyingWriter) Write(p []byte) (int, error) {
	if w.written+int64(len(p)) > w.meta.Size {
		return 0, fmt.Errorf("%w: %s: content exceeds expected size %d",
			ErrVerification, w.meta.Name, w.meta.Size)
	}
	n, err := w.file.Write(p)
	w.written += int64(n)
	w.hasher.Write(p[:n])
	if err != nil {
		return n, fmt.Errorf("write %s: %w", w.name, err)
	}
	return n, nil
}

// Verify checks that the received content matches the expected metadata.
// Call it after all content has been written and before Close.
func (w *VerifyingWriter) Verify() error {
	if w.written != w.meta.Size {
		return fmt.Errorf("%w: %s: got %d bytes, expected %d",
			ErrVerification, w.meta.Name, w.written, w.meta.Size)
	}
	if sum := hex.EncodeToString(w.hasher.Sum(nil)); sum != w.meta.Checksum {
		return fmt.Errorf("%w: %s: digest mismatch (got %s, expected %s)",
			ErrVerification, w.meta.Name, sum, w.meta.Checksum)
	}
	return nil
}

func (w *VerifyingWriter) Close() error {
	return w.file.Close()
}
