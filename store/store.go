package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Store provides access to the files of a single shard. It is shared by
// everything touching the shard on this node, including concurrent
// recoveries, and is reference counted: the creator holds the initial
// reference, every other holder pairs TryAcquire/AddRef with Release, and
// the close hook runs when the count reaches zero.
type Store struct {
	logger  *zap.Logger
	fs      afero.Fs
	refs    atomic.Int32
	onClose func()
}

type Opt func(*Store)

func WithLogger(logger *zap.Logger) Opt {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithCloseHook registers a hook invoked once, when the last reference to
// the store is released.
func WithCloseHook(hook func()) Opt {
	return func(s *Store) {
		s.onClose = hook
	}
}

// New creates a store over fs, which must be rooted at the shard directory.
// The returned store holds one reference on behalf of the caller.
func New(fs afero.Fs, opts ...Opt) *Store {
	s := &Store{
		logger: zap.NewNop(),
		fs:     fs,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.refs.Store(1)
	return s
}

// CreateVerifying creates the named file and returns a write handle that
// digests incoming content against meta. The name may differ from meta.Name
// when the file is staged under a temporary name.
func (s *Store) CreateVerifying(name string, meta FileMetadata) (*VerifyingWriter, error) {
	file, err := s.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	return newVerifyingWriter(file, name, meta), nil
}

// Rename moves from to to. Backing filesystems may refuse to rename over an
// existing file, so callers delete the target first.
func (s *Store) Rename(from, to string) error {
	if err := s.fs.Rename(from, to); err != nil {
		return fmt.Errorf("rename %s to %s: %w", from, to, err)
	}
	return nil
}

// Delete removes the named file. A missing file is reported as an error
// satisfying errors.Is(err, fs.ErrNotExist).
func (s *Store) Delete(name string) error {
	if err := s.fs.Remove(name); err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}

// DeleteQuiet removes the named files, swallowing all errors. Missing files
// are expected here; anything else is logged.
func (s *Store) DeleteQuiet(names ...string) {
	for _, name := range names {
		if err := s.fs.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to delete store file",
				zap.String("file", name),
				zap.Error(err),
			)
		}
	}
}

// TryAcquire attempts to take a reference on the store. It returns false if
// the store has already been closed, in which case the caller must not use
// it.
func (s *Store) TryAcquire() bool {
	for {
		n := s.refs.Load()
		if n <= 0 {
			return false
		}
		if s.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// AddRef takes a reference on the store. It panics if the store is already
// closed; use TryAcquire when racing teardown.
func (s *Store) AddRef() {
	if !s.TryAcquire() {
		panic("store: AddRef on closed store")
	}
}

// Release drops a reference. The reference dropping the count to zero closes
// the store.
func (s *Store) Release() {
	n := s.refs.Add(-1)
	if n < 0 {
		panic("store: Release without matching reference")
	}
	if n == 0 {
		s.logger.Debug("store closed")
		if s.onClose != nil {
			s.onClose()
		}
	}
}
