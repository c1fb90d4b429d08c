package recovery

import (
	"fmt"
	"sync"
	"time"
)

// Stage identifies the phase a recovery is in.
type Stage int

const (
	// StageInit is the stage before any file content has been requested.
	StageInit Stage = iota
	// StageFiles is the stage during which file content is copied from the
	// source node.
	StageFiles
	// StageVerify is the stage during which copied content is verified
	// against the source metadata.
	StageVerify
	// StageFinalize is the stage during which temporary files are committed.
	StageFinalize
	// StageDone is the stage of a successfully completed recovery.
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageInit:
		return "init"
	case StageFiles:
		return "files"
	case StageVerify:
		return "verify"
	case StageFinalize:
		return "finalize"
	case StageDone:
		return "done"
	default:
		panic(fmt.Sprintf("unknown recovery stage %d", s))
	}
}

// Progress is a point-in-time snapshot of a recovery's state.
type Progress struct {
	Stage          Stage
	StartTime      time.Time
	StopTime       time.Time
	TotalFiles     int
	RecoveredFiles int
	TotalBytes     int64
	RecoveredBytes int64
}

// State tracks the progress of one recovery session: the current stage,
// timing, and how much file content has arrived so far. It is safe for
// concurrent use.
type State struct {
	mu       sync.Mutex
	progress Progress
}

func NewState() *State {
	return &State{}
}

// Start records the time the recovery began.
func (st *State) Start(t time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.progress.StartTime = t
}

func (st *State) StartTime() time.Time {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.progress.StartTime
}

// Stop records the time the recovery reached a terminal state.
func (st *State) Stop(t time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.progress.StopTime = t
}

// Duration returns how long the recovery ran, or zero if it has not been
// stopped yet.
func (st *State) Duration() time.Duration {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.progress.StopTime.IsZero() {
		return 0
	}
	return st.progress.StopTime.Sub(st.progress.StartTime)
}

func (st *State) SetStage(stage Stage) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.progress.Stage = stage
}

func (st *State) Stage() Stage {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.progress.Stage
}

// SetTotals records the expected number of files and bytes for this
// recovery, as advertised by the source.
func (st *State) SetTotals(files int, bytes int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.progress.TotalFiles = files
	st.progress.TotalBytes = bytes
}

// AddRecoveredFile records a fully received file of the given size.
func (st *State) AddRecoveredFile(bytes int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.progress.RecoveredFiles++
	st.progress.RecoveredBytes += bytes
}

// Progress returns a snapshot of the current state.
func (st *State) Progress() Progress {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.progress
}
