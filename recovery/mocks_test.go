package recovery_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/strandsearch/strand/common/types"
	"github.com/strandsearch/strand/recovery"
	"github.com/strandsearch/strand/recovery/mocks"
	"github.com/strandsearch/strand/store"
)

func beginMocked(t *testing.T, ctrl *gomock.Controller) (*recovery.Session, *mocks.MockFileStore, *mocks.MockListener, *recovery.State) {
	t.Helper()
	fstore := mocks.NewMockFileStore(ctrl)
	listener := mocks.NewMockListener(ctrl)
	state := recovery.NewState()
	fstore.EXPECT().AddRef()
	s := recovery.Begin(
		types.ShardID{Index: "logs", Shard: 7},
		types.RandomNodeID(),
		state,
		listener,
		fstore,
		recovery.WithLogger(zaptest.NewLogger(t)),
	)
	return s, fstore, listener, state
}

func TestFail_NotifiesListenerExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, fstore, listener, state := beginMocked(t, ctrl)
	werr := errors.New("source node left the cluster")

	listener.EXPECT().OnRecoveryFailure(state, werr, true)
	fstore.EXPECT().DeleteQuiet()
	fstore.EXPECT().Release()

	s.Fail(werr, true)
	s.Fail(werr, true)
	s.Cancel("too late")
	s.MarkAsDone()
}

func TestCancel_NotifiesNobody(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, fstore, _, _ := beginMocked(t, ctrl)

	fstore.EXPECT().DeleteQuiet()
	fstore.EXPECT().Release()

	s.Cancel("replica no longer needed")
	require.True(t, s.Finished())
}

func TestOpenOutput_StoreErrorSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, fstore, _, _ := beginMocked(t, ctrl)
	meta := store.FileMetadata{Name: "segment1", Size: 10, Checksum: "abc"}
	werr := errors.New("disk full")

	fstore.EXPECT().CreateVerifying(gomock.Any(), meta).Return(nil, werr)
	_, err := s.OpenOutput("k1", meta)
	require.ErrorIs(t, err, werr)

	// the temp name stays registered and is deleted on cleanup
	temps := s.TempFiles()
	require.Len(t, temps, 1)
	fstore.EXPECT().DeleteQuiet(temps[0])
	fstore.EXPECT().Release()
	s.Cancel("create failed")
}
