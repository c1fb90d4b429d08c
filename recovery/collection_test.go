package recovery

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/strandsearch/strand/common/types"
	"github.com/strandsearch/strand/store"
)

func newTestCollection(t *testing.T, cfg Config, clock clockwork.Clock) *Collection {
	t.Helper()
	return NewCollection(cfg,
		CollectionLogger(zaptest.NewLogger(t)),
		collectionClock(clock),
	)
}

func beginTestRecovery(t *testing.T, c *Collection, shard types.ShardID) (*Session, *fakeListener) {
	t.Helper()
	listener := &fakeListener{}
	s := c.Begin(shard, types.RandomNodeID(), NewState(), listener,
		store.New(afero.NewMemMapFs(), store.WithLogger(zaptest.NewLogger(t))))
	return s, listener
}

func TestCollection_Get(t *testing.T) {
	c := newTestCollection(t, DefaultConfig(), clockwork.NewRealClock())
	s, _ := beginTestRecovery(t, c, types.ShardID{Index: "logs", Shard: 0})

	require.Nil(t, c.Get(s.ID()+1000))

	ref := c.Get(s.ID())
	require.NotNil(t, ref)
	require.Equal(t, s.ID(), ref.ID())
	ref.Close()
	ref.Close() // tolerated

	require.True(t, c.Cancel(s.ID(), "test done"))
	require.False(t, c.Cancel(s.ID(), "again"), "already deregistered")
	require.Nil(t, c.Get(s.ID()))
	require.Zero(t, c.Len())
}

func TestCollection_GetWhileFinalizing(t *testing.T) {
	c := newTestCollection(t, DefaultConfig(), clockwork.NewRealClock())
	s, _ := beginTestRecovery(t, c, types.ShardID{Index: "logs", Shard: 0})

	// cancel directly on the session, leaving it registered in the
	// collection; Get must still refuse a handle
	s.Cancel("out of band")
	require.Nil(t, c.Get(s.ID()))
}

func TestCollection_CancelForShard(t *testing.T) {
	c := newTestCollection(t, DefaultConfig(), clockwork.NewRealClock())
	shard := types.ShardID{Index: "logs", Shard: 1}
	s1, _ := beginTestRecovery(t, c, shard)
	s2, _ := beginTestRecovery(t, c, shard)
	s3, _ := beginTestRecovery(t, c, types.ShardID{Index: "logs", Shard: 2})

	require.True(t, c.CancelForShard(shard, "shard relocated"))
	require.True(t, s1.Finished())
	require.True(t, s2.Finished())
	require.False(t, s3.Finished())
	require.Equal(t, 1, c.Len())

	require.False(t, c.CancelForShard(shard, "nothing left"))
	c.Close("node shutdown")
	require.True(t, s3.Finished())
	require.Zero(t, c.Len())
}

func TestCollection_MarkDone(t *testing.T) {
	c := newTestCollection(t, DefaultConfig(), clockwork.NewRealClock())
	s, listener := beginTestRecovery(t, c, types.ShardID{Index: "logs", Shard: 0})

	c.MarkDone(s.ID())
	done, failed := listener.counts()
	require.Equal(t, 1, done)
	require.Zero(t, failed)
	require.Zero(t, c.Len())
}

func TestCollection_MonitorFailsIdleRecovery(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cfg := Config{MonitorInterval: time.Minute, ActivityTimeout: 5 * time.Minute}
	c := newTestCollection(t, cfg, clock)
	s, listener := beginTestRecovery(t, c, types.ShardID{Index: "logs", Shard: 0})

	clock.BlockUntil(1) // monitor waiting on its ticker
	clock.Advance(6 * time.Minute)

	require.Eventually(t, func() bool { return s.Finished() },
		5*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		_, failed := listener.counts()
		return failed == 1
	}, 5*time.Second, 10*time.Millisecond)
	require.ErrorContains(t, listener.lastErr, "no activity")
	require.True(t, listener.lastSend)
	require.Zero(t, c.Len())
}

func TestCollection_MonitorSparesActiveRecovery(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cfg := Config{MonitorInterval: time.Minute, ActivityTimeout: 5 * time.Minute}
	c := newTestCollection(t, cfg, clock)
	s, _ := beginTestRecovery(t, c, types.ShardID{Index: "logs", Shard: 0})

	for n := 0; n < 4; n++ {
		clock.BlockUntil(1)
		// touches the session, resetting the inactivity window
		ref := c.Get(s.ID())
		require.NotNil(t, ref)
		ref.Close()
		clock.Advance(2 * time.Minute)
	}
	clock.BlockUntil(1)
	require.False(t, s.Finished())
	require.True(t, c.Cancel(s.ID(), "test done"))
}
