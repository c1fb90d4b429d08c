package recovery

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/strandsearch/strand/common/types"
)

// Config is the configuration of the recovery collection.
type Config struct {
	// MonitorInterval is how often each session is checked for inactivity.
	MonitorInterval time.Duration `mapstructure:"recovery-monitor-interval"`
	// ActivityTimeout fails a session that saw no caller activity for this
	// long. The session core itself never times out; this is the
	// orchestrator-side policy.
	ActivityTimeout time.Duration `mapstructure:"recovery-activity-timeout"`
}

func DefaultConfig() Config {
	return Config{
		MonitorInterval: 10 * time.Second,
		ActivityTimeout: 15 * time.Minute,
	}
}

type CollectionOpt func(*Collection)

func CollectionLogger(logger *zap.Logger) CollectionOpt {
	return func(c *Collection) {
		c.logger = logger
	}
}

func collectionClock(clock clockwork.Clock) CollectionOpt {
	return func(c *Collection) {
		c.clock = clock
	}
}

// Collection tracks the recovery sessions in flight on this node, keyed by
// session id. It owns the inactivity monitoring of each session and is safe
// for concurrent use.
type Collection struct {
	logger *zap.Logger
	cfg    Config
	clock  clockwork.Clock

	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewCollection(cfg Config, opts ...CollectionOpt) *Collection {
	c := &Collection{
		logger:   zap.NewNop(),
		cfg:      cfg,
		clock:    clockwork.NewRealClock(),
		sessions: make(map[int64]*Session),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Begin starts and registers a recovery of shard from source and spawns its
// inactivity monitor. See Begin for the session semantics.
func (c *Collection) Begin(
	shard types.ShardID,
	source types.NodeID,
	state *State,
	listener Listener,
	fstore FileStore,
) *Session {
	s := Begin(shard, source, state, listener, fstore,
		WithLogger(c.logger), withClock(c.clock))
	c.mu.Lock()
	c.sessions[s.ID()] = s
	c.mu.Unlock()
	if c.cfg.MonitorInterval > 0 {
		go c.monitor(s)
	}
	return s
}

// Ref is a reference-held handle to a session. Close releases the
// reference; it is safe to call more than once.
type Ref struct {
	*Session
	once sync.Once
}

func (r *Ref) Close() {
	r.once.Do(r.Session.Release)
}

// Get returns a reference-held handle to the identified session, or nil if
// it is unknown or already finalizing. The handle keeps the session's
// resources alive until Close.
func (c *Collection) Get(id int64) *Ref {
	c.mu.Lock()
	s := c.sessions[id]
	c.mu.Unlock()
	if s == nil || !s.TryAcquire() {
		return nil
	}
	s.touch(c.clock.Now())
	return &Ref{Session: s}
}

// Len returns the number of registered sessions.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}

// Cancel cancels and deregisters the identified session. It reports whether
// a session was found.
func (c *Collection) Cancel(id int64, reason string) bool {
	s := c.take(id)
	if s == nil {
		return false
	}
	s.Cancel(reason)
	return true
}

// Fail fails and deregisters the identified session.
func (c *Collection) Fail(id int64, err error, sendShardFailure bool) {
	if s := c.take(id); s != nil {
		s.Fail(err, sendShardFailure)
	}
}

// MarkDone completes and deregisters the identified session.
func (c *Collection) MarkDone(id int64) {
	if s := c.take(id); s != nil {
		s.MarkAsDone()
	}
}

// CancelForShard cancels every session recovering the given shard. It
// reports whether any session was canceled.
func (c *Collection) CancelForShard(shard types.ShardID, reason string) bool {
	c.mu.Lock()
	var matched []*Session
	for id, s := range c.sessions {
		if s.ShardID() == shard {
			matched = append(matched, s)
			delete(c.sessions, id)
		}
	}
	c.mu.Unlock()
	for _, s := range matched {
		s.Cancel(reason)
	}
	return len(matched) > 0
}

// Close cancels every registered session. Sessions with outstanding
// references clean up once their holders release.
func (c *Collection) Close(reason string) {
	c.mu.Lock()
	sessions := c.sessions
	c.sessions = make(map[int64]*Session)
	c.mu.Unlock()
	for _, s := range sessions {
		s.Cancel(reason)
	}
}

func (c *Collection) take(id int64) *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.sessions[id]
	delete(c.sessions, id)
	return s
}

// monitor fails s if no caller touched it within the activity timeout. It
// exits once the session reaches a terminal state.
func (c *Collection) monitor(s *Session) {
	ticker := c.clock.NewTicker(c.cfg.MonitorInterval)
	defer ticker.Stop()
	for range ticker.Chan() {
		if s.Finished() {
			c.take(s.ID())
			return
		}
		if idle := c.clock.Since(s.LastActivity()); idle > c.cfg.ActivityTimeout {
			c.logger.Warn("recovery timed out",
				zap.Stringer("shard", s.ShardID()),
				zap.Int64("recovery", s.ID()),
				zap.Duration("idle", idle),
			)
			c.Fail(s.ID(), fmt.Errorf("no activity for %v", idle), true)
			return
		}
	}
}
