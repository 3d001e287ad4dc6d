package bridge

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/BBoDDoGood/smartoko-app/core/credstore"
	"github.com/BBoDDoGood/smartoko-app/core/logger"
	"github.com/BBoDDoGood/smartoko-app/core/sessionstate"
	"github.com/BBoDDoGood/smartoko-app/core/user"
)

// Bridge restores session state from durable storage at process start and
// mirrors a non-sensitive subset of it back out for UI continuity.
type Bridge struct {
	store      credstore.Store
	sessions   *sessionstate.Container
	continuity ContinuityStore
	logger     *slog.Logger

	mu         sync.Mutex
	rehydrated bool
}

// Option configures the bridge.
type Option func(*Bridge)

// WithContinuityStore enables mirroring of the profile and logged-in fact
// into a coarse persistence layer, and its use as a rehydration fallback.
func WithContinuityStore(cs ContinuityStore) Option {
	return func(b *Bridge) {
		if cs != nil {
			b.continuity = cs
		}
	}
}

// WithLogger configures structured logging.
func WithLogger(log *slog.Logger) Option {
	return func(b *Bridge) {
		if log != nil {
			b.logger = log
		}
	}
}

// New creates a persistence bridge over the credential store and the
// session container.
func New(store credstore.Store, sessions *sessionstate.Container, opts ...Option) *Bridge {
	b := &Bridge{
		store:    store,
		sessions: sessions,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Rehydrate reads the durable credential bundle and, when it is non-empty,
// publishes the logged-in state with the cached profile without any network
// call (trust-on-read). An empty bundle leaves the session logged out.
//
// Must run exactly once, before the container is handed to the UI and
// before any login call is reachable; a second call returns
// ErrAlreadyRehydrated. Any failure leaves the session logged out
// (fail-closed).
func (b *Bridge) Rehydrate(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.rehydrated {
		return ErrAlreadyRehydrated
	}
	b.rehydrated = true

	start := time.Now()

	bundle, err := credstore.ReadBundle(ctx, b.store)
	if err != nil {
		b.logger.Warn("rehydration failed, staying logged out", logger.Error(err))
		return err
	}
	if bundle.Empty() {
		b.logger.Debug("no persisted credentials, staying logged out")
		return nil
	}

	profile := b.cachedProfile(ctx, bundle.ProfileJSON)
	if profile == nil {
		// Tokens without any recoverable profile cannot satisfy the
		// logged-in invariant; fail closed.
		b.logger.Warn("credential bundle present but no cached profile, staying logged out")
		return nil
	}

	if err := b.sessions.ForceLoggedIn(profile); err != nil {
		return err
	}
	b.logger.Info("session rehydrated from durable storage",
		slog.Int("user_seq", profile.UserSeq),
		logger.Elapsed(start),
	)
	return nil
}

// cachedProfile decodes the stored profile, falling back to the continuity
// snapshot when user_data is missing or corrupt.
func (b *Bridge) cachedProfile(ctx context.Context, profileJSON string) *user.Profile {
	if profileJSON != "" {
		var p user.Profile
		if err := json.Unmarshal([]byte(profileJSON), &p); err == nil {
			return &p
		}
		b.logger.Warn("stored user_data is corrupt, trying continuity snapshot")
	}

	if b.continuity == nil {
		return nil
	}
	snap, err := b.continuity.Load(ctx)
	if err != nil {
		b.logger.Warn("continuity snapshot unavailable", logger.Error(err))
		return nil
	}
	if !snap.LoggedIn || snap.Profile == nil {
		return nil
	}
	return snap.Profile
}

// Mirror subscribes to session state changes and keeps the continuity
// snapshot current: saved on login, cleared on logout. Mirroring failures
// are logged, never surfaced; the snapshot is a convenience cache. The
// returned stop function ends the subscription.
func (b *Bridge) Mirror(ctx context.Context) func() {
	if b.continuity == nil {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	updates := b.sessions.Subscribe(ctx)

	go func() {
		for snap := range updates {
			switch snap.Phase {
			case sessionstate.PhaseLoggedIn:
				err := b.continuity.Save(ctx, ContinuitySnapshot{
					Profile:  snap.Profile,
					LoggedIn: true,
					SavedAt:  time.Now(),
				})
				if err != nil {
					b.logger.Warn("continuity mirror save failed", logger.Error(err))
				}
			case sessionstate.PhaseLoggedOut:
				if err := b.continuity.Clear(ctx); err != nil {
					b.logger.Warn("continuity mirror clear failed", logger.Error(err))
				}
			}
		}
	}()

	return cancel
}
