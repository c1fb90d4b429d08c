package recovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/strandsearch/strand/common/types"
	"github.com/strandsearch/strand/store"
)

// tempFilePrefix starts the name of every file staged by a recovery. Files
// carrying it are never valid shard content.
const tempFilePrefix = "recovery."

// sessionID generates process-wide unique session ids. Ids are never reused.
var sessionID atomic.Int64

// ErrCanceled is the cancellation cause a blocked worker observes when its
// session reaches a terminal state.
var ErrCanceled = errors.New("recovery canceled")

type Opt func(*Session)

func WithLogger(logger *zap.Logger) Opt {
	return func(s *Session) {
		s.logger = logger
	}
}

func withClock(clock clockwork.Clock) Opt {
	return func(s *Session) {
		s.clock = clock
	}
}

// Session tracks one in-progress shard recovery: the temporary files it has
// staged, the write handles still open, and the references keeping it alive.
// All methods are safe for concurrent use.
//
// A session reaches exactly one of the cancel/fail/done terminal states no
// matter how many code paths race to end it. Whichever Release drops the
// reference count to zero cleans up staged files and releases the store, so
// cleanup waits for every holder taken via TryAcquire to finish.
type Session struct {
	logger   *zap.Logger
	clock    clockwork.Clock
	id       int64
	shard    types.ShardID
	source   types.NodeID
	state    *State
	listener Listener
	store    FileStore
	prefix   string

	refs     atomic.Int32
	finished atomic.Bool
	waiting  atomic.Pointer[Waiter]
	lastSeen atomic.Int64 // unix nanos of the last caller activity

	mu        sync.Mutex
	tempFiles map[string]struct{}
	outputs   map[string]*store.VerifyingWriter

	checksums store.LegacyChecksums
}

// Begin starts a recovery of shard from source. It takes a reference on
// fstore for the lifetime of the session and records the start time on
// state. The returned session holds its own initial reference, released by
// whichever of Cancel, Fail or MarkAsDone runs first.
func Begin(
	shard types.ShardID,
	source types.NodeID,
	state *State,
	listener Listener,
	fstore FileStore,
	opts ...Opt,
) *Session {
	s := &Session{
		logger:    zap.NewNop(),
		clock:     clockwork.NewRealClock(),
		id:        sessionID.Add(1),
		shard:     shard,
		source:    source,
		state:     state,
		listener:  listener,
		store:     fstore,
		tempFiles: make(map[string]struct{}),
		outputs:   make(map[string]*store.VerifyingWriter),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.Stringer("shard", shard), zap.Int64("recovery", s.id))
	now := s.clock.Now()
	state.Start(now)
	// the id keeps prefixes of sessions started in the same millisecond apart
	s.prefix = fmt.Sprintf("%s%d.%d.", tempFilePrefix, now.UnixMilli(), s.id)
	s.refs.Store(1)
	s.touch(now)
	fstore.AddRef()
	startedCount.Inc()
	inFlight.Inc()
	s.logger.Debug("recovery started", zap.String("source", source.ShortString()))
	return s
}

func (s *Session) ID() int64 {
	return s.id
}

func (s *Session) ShardID() types.ShardID {
	return s.shard
}

func (s *Session) SourceNode() types.NodeID {
	return s.source
}

func (s *Session) State() *State {
	return s.state
}

func (s *Session) Store() FileStore {
	return s.store
}

// Finished reports whether the session has reached a terminal state.
// Outstanding references may still delay resource cleanup.
func (s *Session) Finished() bool {
	return s.finished.Load()
}

// SetStage forwards to the progress tracker.
func (s *Session) SetStage(stage Stage) {
	s.state.SetStage(stage)
}

// Stage forwards to the progress tracker.
func (s *Session) Stage() Stage {
	return s.state.Stage()
}

// LegacyChecksums returns the per-session accumulator for checksums of files
// copied from sources without content digests. It is cleared when the
// session's resources are released.
func (s *Session) LegacyChecksums() *store.LegacyChecksums {
	return &s.checksums
}

// LastActivity returns the last time a caller touched the session.
func (s *Session) LastActivity() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch(t time.Time) {
	s.lastSeen.Store(t.UnixNano())
}

// TryAcquire attempts to take a reference keeping the session alive across
// an operation. It returns false once the session has started finalizing,
// in which case the caller must not use it. Pair every successful
// TryAcquire with exactly one Release.
func (s *Session) TryAcquire() bool {
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

// Release drops a reference. The release that brings the count to zero
// cleans up the session's files and releases the store, regardless of which
// goroutine it happens on.
func (s *Session) Release() {
	n := s.refs.Add(-1)
	if n < 0 {
		panic("recovery: Release without matching reference")
	}
	if n == 0 {
		s.finalize()
	}
}

// Waiter identifies one worker blocked on I/O for this session.
type Waiter struct {
	cancel context.CancelCauseFunc
}

// SetWaiting registers the calling worker as blocked and derives the context
// it should block on. Cancel cancels that context with ErrCanceled so the
// worker observes cancellation promptly instead of staying blocked. Pair
// with ClearWaiting once the blocking call returns. If the session already
// reached a terminal state the returned context is canceled immediately.
func (s *Session) SetWaiting(ctx context.Context) (context.Context, *Waiter) {
	wctx, cancel := context.WithCancelCause(ctx)
	w := &Waiter{cancel: cancel}
	s.waiting.Store(w)
	if s.finished.Load() {
		cancel(ErrCanceled)
	}
	return wctx, w
}

// ClearWaiting unregisters w. It is a no-op if a newer waiter has been
// registered since, so a late clear cannot wipe another worker's handle.
func (s *Session) ClearWaiting(w *Waiter) {
	s.waiting.CompareAndSwap(w, nil)
}

// TempName registers and returns the session-unique temporary name under
// which origName is staged. Call it before creating the file so cleanup
// knows the name even if creation fails.
func (s *Session) TempName(origName string) string {
	name := s.prefix + origName
	s.mu.Lock()
	s.tempFiles[name] = struct{}{}
	s.mu.Unlock()
	return name
}

// IsTempFile reports whether name is a temporary name issued by this
// session.
func (s *Session) IsTempFile(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tempFiles[name]
	return ok
}

// OriginalName returns the name a temporary file will be committed under.
// Calling it with a name not issued by this session is a programming error.
func (s *Session) OriginalName(tempName string) string {
	if !s.IsTempFile(tempName) {
		panic(fmt.Sprintf("recovery: %q is not a temporary file of this session", tempName))
	}
	return strings.TrimPrefix(tempName, s.prefix)
}

// TempFiles returns a snapshot of the temporary names staged so far.
func (s *Session) TempFiles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.tempFiles))
	for name := range s.tempFiles {
		names = append(names, name)
	}
	return names
}

// OpenOutput stages the file described by meta under a temporary name and
// registers the open write handle under key. On error the temporary name
// stays registered, so cleanup still tries to delete whatever the store may
// have created.
func (s *Session) OpenOutput(key string, meta store.FileMetadata) (*store.VerifyingWriter, error) {
	temp := s.TempName(meta.Name)
	out, err := s.store.CreateVerifying(temp, meta)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.outputs[key] = out
	s.mu.Unlock()
	s.touch(s.clock.Now())
	return out, nil
}

// Output returns the open write handle registered under key, or nil.
func (s *Session) Output(key string) *store.VerifyingWriter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outputs[key]
}

// RemoveOutput unregisters and returns the write handle under key, or nil.
// The caller becomes responsible for closing it.
func (s *Session) RemoveOutput(key string) *store.VerifyingWriter {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.outputs[key]
	delete(s.outputs, key)
	return out
}

// CommitTempFiles renames every staged file to its real name, replacing any
// existing file. It must empty the temp registry before MarkAsDone is
// called. A rename failure aborts the commit and is returned to the caller:
// files committed before the failure are not rolled back, and the remaining
// temporary files stay registered for cleanup.
func (s *Session) CommitTempFiles() error {
	for _, temp := range s.TempFiles() {
		orig := s.OriginalName(temp)
		// deleting a file that is not there is the common case
		if err := s.store.Delete(orig); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("failed to delete file before commit",
				zap.String("file", orig),
				zap.Error(err),
			)
		}
		if err := s.store.Rename(temp, orig); err != nil {
			return fmt.Errorf("commit %s: %w", temp, err)
		}
		s.mu.Lock()
		delete(s.tempFiles, temp)
		s.mu.Unlock()
		committedFiles.Inc()
	}
	s.touch(s.clock.Now())
	return nil
}

// Cancel stops the recovery. The first of Cancel, Fail and MarkAsDone wins;
// later terminal calls are no-ops. Staged files are cleaned up as soon as
// all outstanding references are released, and a worker registered via
// SetWaiting is woken. No listener callback fires for a canceled recovery.
func (s *Session) Cancel(reason string) {
	if !s.finished.CompareAndSwap(false, true) {
		return
	}
	s.logger.Debug("recovery canceled", zap.String("reason", reason))
	s.state.Stop(s.clock.Now())
	canceledCount.Inc()
	// release the initial reference; cleanup runs once all holders are done
	s.Release()
	if w := s.waiting.Load(); w != nil {
		w.cancel(ErrCanceled)
	}
}

// Fail reports the recovery as failed and notifies the listener exactly
// once. The first of Cancel, Fail and MarkAsDone wins; later terminal calls
// are no-ops. A listener panic is logged and never blocks cleanup.
func (s *Session) Fail(err error, sendShardFailure bool) {
	if !s.finished.CompareAndSwap(false, true) {
		return
	}
	s.logger.Debug("recovery failed", zap.Error(err))
	s.state.Stop(s.clock.Now())
	failedCount.Inc()
	s.notify(func() {
		s.listener.OnRecoveryFailure(s.state, err, sendShardFailure)
	})
	s.Release()
}

// MarkAsDone completes the recovery and notifies the listener exactly once.
// The first of Cancel, Fail and MarkAsDone wins; later terminal calls are
// no-ops. Calling it with temporary files still staged is a programming
// error: CommitTempFiles must have emptied the registry first.
func (s *Session) MarkAsDone() {
	if !s.finished.CompareAndSwap(false, true) {
		return
	}
	if n := len(s.TempFiles()); n != 0 {
		panic(fmt.Sprintf("recovery: MarkAsDone with %d uncommitted temporary files", n))
	}
	s.state.Stop(s.clock.Now())
	s.state.SetStage(StageDone)
	doneCount.Inc()
	s.Release()
	s.notify(func() {
		s.listener.OnRecoveryDone(s.state)
	})
	s.logger.Debug("recovery done")
}

func (s *Session) notify(f func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("recovery listener panicked", zap.Any("reason", r))
		}
	}()
	f()
}

// finalize runs exactly once, on whichever goroutine drops the reference
// count to zero. Outputs are closed before their backing files are deleted,
// and the store reference is released only after cleanup stopped touching
// the store.
func (s *Session) finalize() {
	defer inFlight.Dec()
	defer s.checksums.Clear()
	defer s.store.Release()
	s.mu.Lock()
	outputs := s.outputs
	temp := make([]string, 0, len(s.tempFiles))
	for name := range s.tempFiles {
		temp = append(temp, name)
	}
	s.outputs = make(map[string]*store.VerifyingWriter)
	s.tempFiles = make(map[string]struct{})
	s.mu.Unlock()
	for key, out := range outputs {
		if err := out.Close(); err != nil {
			s.logger.Warn("failed to close recovery output",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
	s.store.DeleteQuiet(temp...)
	s.logger.Debug("recovery resources released", zap.Int("temp_files", len(temp)))
}

func (s *Session) String() string {
	return fmt.Sprintf("%s [%d]", s.shard, s.id)
}
