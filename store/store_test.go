package store

import (
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestStore(t *testing.T, opts ...Opt) (*Store, afero.Fs) {
	t.Helper()
	mfs := afero.NewMemMapFs()
	opts = append([]Opt{WithLogger(zaptest.NewLogger(t))}, opts...)
	return New(mfs, opts...), mfs
}

func TestStore_CreateVerifying(t *testing.T) {
	s, mfs := newTestStore(t)
	content := []byte("segment content")
	meta := FileMetadata{Name: "segment1", Size: int64(len(content)), Checksum: Digest(content)}

	w, err := s.CreateVerifying("recovery.1.segment1", meta)
	require.NoError(t, err)
	require.Equal(t, "recovery.1.segment1", w.Name())
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Verify())
	require.NoError(t, w.Close())

	got, err := afero.ReadFile(mfs, "recovery.1.segment1")
	require.NoError(t, err)
	require.Equal(t, content, got)

	// the staged name is already taken now
	_, err = s.CreateVerifying("recovery.1.segment1", meta)
	require.Error(t, err)
}

func TestVerifyingWriter_RejectsBadContent(t *testing.T) {
	s, _ := newTestStore(t)
	meta := FileMetadata{Name: "segment1", Size: 4, Checksum: Digest([]byte("good"))}

	w, err := s.CreateVerifying("tmp.segment1", meta)
	require.NoError(t, err)
	_, err = w.Write([]byte("evil"))
	require.NoError(t, err)
	err = w.Verify()
	require.ErrorIs(t, err, ErrVerification)
	require.NoError(t, w.Close())
}

func TestVerifyingWriter_RejectsShortAndLongContent(t *testing.T) {
	s, _ := newTestStore(t)
	meta := FileMetadata{Name: "segment1", Size: 4, Checksum: Digest([]byte("good"))}

	w, err := s.CreateVerifying("tmp.short", meta)
	require.NoError(t, err)
	_, err = w.Write([]byte("go"))
	require.NoError(t, err)
	require.ErrorIs(t, w.Verify(), ErrVerification)

	_, err = w.Write([]byte("odbye"))
	require.ErrorIs(t, err, ErrVerification)
	require.NoError(t, w.Close())
}

func TestStore_DeleteThenRename(t *testing.T) {
	s, mfs := newTestStore(t)
	require.NoError(t, afero.WriteFile(mfs, "segment1", []byte("old"), 0o644))
	require.NoError(t, afero.WriteFile(mfs, "tmp.segment1", []byte("new"), 0o644))

	require.NoError(t, s.Delete("segment1"))
	require.NoError(t, s.Rename("tmp.segment1", "segment1"))

	got, err := afero.ReadFile(mfs, "segment1")
	require.NoError(t, err)
	require.Equal(t, "new", string(got))
	exists, err := afero.Exists(mfs, "tmp.segment1")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestStore_DeleteNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.Delete("missing")
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)

	require.NotPanics(t, func() { s.DeleteQuiet("missing", "also-missing") })
}

func TestStore_RefCounting(t *testing.T) {
	closed := 0
	s, _ := newTestStore(t, WithCloseHook(func() { closed++ }))

	require.True(t, s.TryAcquire())
	s.AddRef()
	s.Release()
	s.Release()
	require.Zero(t, closed, "initial reference still held")

	s.Release()
	require.Equal(t, 1, closed)
	require.False(t, s.TryAcquire())
	require.Panics(t, func() { s.AddRef() })
	require.Panics(t, func() { s.Release() })
}

func TestLegacyChecksums(t *testing.T) {
	var lc LegacyChecksums
	_, ok := lc.Get("segment1")
	require.False(t, ok)

	lc.Add("segment1", 0x1234)
	lc.Add("segment1", 0x5678)
	lc.Add("segment2", 0x9abc)
	require.Equal(t, 2, lc.Len())
	sum, ok := lc.Get("segment1")
	require.True(t, ok)
	require.EqualValues(t, 0x5678, sum)

	lc.Clear()
	require.Zero(t, lc.Len())
}
