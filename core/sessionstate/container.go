package sessionstate

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/BBoDDoGood/smartoko-app/core/user"
)

// DefaultSubscriberBuffer is the default channel buffer per subscriber.
const DefaultSubscriberBuffer = 8

// Snapshot is an immutable view of the session state. The invariant
// Profile != nil <=> Phase == PhaseLoggedIn holds for every snapshot the
// container publishes.
type Snapshot struct {
	Phase     Phase
	Profile   *user.Profile
	LastError string
}

// LoggedIn reports whether the snapshot represents an authenticated session.
func (s Snapshot) LoggedIn() bool {
	return s.Phase == PhaseLoggedIn
}

// Container is the single-writer, multi-reader session state machine.
// Exactly one instance exists per process, constructed by the application
// root and passed by reference to consumers; it is mutated only by the auth
// client and the persistence bridge.
//
// Valid transitions:
//
//	LoggedOut  --BeginAuth-->      Authenticating
//	AuthFailed --BeginAuth-->      Authenticating (clears LastError immediately)
//	Authenticating --Succeed-->    LoggedIn
//	Authenticating --Fail-->       AuthFailed
//	LoggedOut  --ForceLoggedIn-->  LoggedIn (rehydration only)
//	any        --Logout-->         LoggedOut
type Container struct {
	mu   sync.RWMutex
	snap Snapshot

	// authAttempted blocks ForceLoggedIn once any login attempt has begun;
	// rehydration must run strictly before login is reachable.
	authAttempted bool

	subs    map[int]chan Snapshot
	nextSub int
	bufSize int
	logger  *slog.Logger
}

// Option configures the container.
type Option func(*Container)

// WithLogger configures structured logging for state transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSubscriberBuffer sets the channel buffer size per subscriber. When a
// subscriber's buffer is full, snapshots are dropped for that subscriber
// rather than blocking transitions.
func WithSubscriberBuffer(size int) Option {
	return func(c *Container) {
		if size > 0 {
			c.bufSize = size
		}
	}
}

// NewContainer creates a container in the logged-out phase.
func NewContainer(opts ...Option) *Container {
	c := &Container{
		snap:    Snapshot{Phase: PhaseLoggedOut},
		subs:    make(map[int]chan Snapshot),
		bufSize: DefaultSubscriberBuffer,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current returns the current snapshot.
func (c *Container) Current() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// BeginAuth transitions to Authenticating. A previous failure reason is
// cleared immediately, before the new attempt resolves. Returns
// ErrAuthInFlight when an attempt is already authenticating, and
// ErrInvalidTransition from LoggedIn.
func (c *Container) BeginAuth() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.snap.Phase {
	case PhaseAuthenticating:
		return ErrAuthInFlight
	case PhaseLoggedIn:
		return ErrInvalidTransition
	}

	c.authAttempted = true
	c.apply(Snapshot{Phase: PhaseAuthenticating})
	return nil
}

// Succeed transitions from Authenticating to LoggedIn with the given
// profile. Calling it from any other phase is a programming error.
func (c *Container) Succeed(profile *user.Profile) error {
	if profile == nil {
		return ErrInvalidTransition
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap.Phase != PhaseAuthenticating {
		return ErrInvalidTransition
	}
	c.apply(Snapshot{Phase: PhaseLoggedIn, Profile: profile})
	return nil
}

// Fail transitions from Authenticating to AuthFailed with the given reason
// code. Calling it from any other phase is a programming error.
func (c *Container) Fail(reason string) error {
	if reason == "" {
		reason = "UNKNOWN_ERROR"
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap.Phase != PhaseAuthenticating {
		return ErrInvalidTransition
	}
	c.apply(Snapshot{Phase: PhaseAuthFailed, LastError: reason})
	return nil
}

// ForceLoggedIn sets the state to LoggedIn without passing through
// Authenticating. This is the trust-on-read rehydration path and is only
// valid from LoggedOut before any login attempt has started.
func (c *Container) ForceLoggedIn(profile *user.Profile) error {
	if profile == nil {
		return ErrInvalidTransition
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap.Phase != PhaseLoggedOut || c.authAttempted {
		return ErrInvalidTransition
	}
	c.apply(Snapshot{Phase: PhaseLoggedIn, Profile: profile})
	return nil
}

// Logout transitions to LoggedOut from any phase. Idempotent: repeated
// calls are no-op successes and publish no duplicate snapshots.
func (c *Container) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap.Phase == PhaseLoggedOut {
		return
	}
	c.apply(Snapshot{Phase: PhaseLoggedOut})
}

// Subscribe returns a channel that receives every snapshot published after
// the call. Delivery is non-blocking: a full subscriber buffer drops the
// snapshot for that subscriber instead of blocking the transition. The
// subscription is removed and the channel closed when ctx is cancelled.
func (c *Container) Subscribe(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot, c.bufSize)

	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
		close(ch)
	}()

	return ch
}

// apply records and publishes a new snapshot. Caller must hold c.mu.
func (c *Container) apply(snap Snapshot) {
	c.logger.Debug("session state transition",
		slog.String("from", c.snap.Phase.String()),
		slog.String("to", snap.Phase.String()),
	)
	c.snap = snap

	for id, ch := range c.subs {
		select {
		case ch <- snap:
		default:
			c.logger.Debug("dropping snapshot for slow subscriber", slog.Int("subscriber", id))
		}
	}
}
