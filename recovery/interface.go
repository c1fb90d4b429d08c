package recovery

import (
	"github.com/strandsearch/strand/store"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./interface.go

// Listener is notified when a recovery reaches a terminal state. At most one
// of the callbacks fires per session; a canceled session notifies neither.
type Listener interface {
	OnRecoveryDone(state *State)
	// OnRecoveryFailure reports the failed recovery. sendShardFailure tells
	// the owner whether to report the whole shard as failed to the cluster.
	OnRecoveryFailure(state *State, err error, sendShardFailure bool)
}

// FileStore is the slice of the shard file store a recovery session drives.
// *store.Store implements it.
type FileStore interface {
	CreateVerifying(name string, meta store.FileMetadata) (*store.VerifyingWriter, error)
	Rename(from, to string) error
	Delete(name string) error
	DeleteQuiet(names ...string)
	AddRef()
	Release()
}
