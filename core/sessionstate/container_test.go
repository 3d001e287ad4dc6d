package sessionstate_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BBoDDoGood/smartoko-app/core/sessionstate"
	"github.com/BBoDDoGood/smartoko-app/core/user"
)

func testProfile() *user.Profile {
	return &user.Profile{UserSeq: 7, Username: "a@b.com", Enabled: user.EnabledOn}
}

// assertInvariant checks that profile presence and the logged-in phase
// always agree, and that a failure reason exists exactly when auth failed.
func assertInvariant(t *testing.T, snap sessionstate.Snapshot) {
	t.Helper()
	assert.Equal(t, snap.Phase == sessionstate.PhaseLoggedIn, snap.Profile != nil)
	assert.Equal(t, snap.Phase == sessionstate.PhaseAuthFailed, snap.LastError != "")
}

func TestContainer_InitialState(t *testing.T) {
	t.Parallel()

	c := sessionstate.NewContainer()

	snap := c.Current()
	assert.Equal(t, sessionstate.PhaseLoggedOut, snap.Phase)
	assert.False(t, snap.LoggedIn())
	assertInvariant(t, snap)
}

func TestContainer_LoginFlow(t *testing.T) {
	t.Parallel()

	t.Run("begin then succeed reaches logged in", func(t *testing.T) {
		t.Parallel()

		c := sessionstate.NewContainer()
		require.NoError(t, c.BeginAuth())
		assert.Equal(t, sessionstate.PhaseAuthenticating, c.Current().Phase)

		require.NoError(t, c.Succeed(testProfile()))

		snap := c.Current()
		assert.Equal(t, sessionstate.PhaseLoggedIn, snap.Phase)
		assert.Equal(t, 7, snap.Profile.UserSeq)
		assertInvariant(t, snap)
	})

	t.Run("begin then fail carries reason", func(t *testing.T) {
		t.Parallel()

		c := sessionstate.NewContainer()
		require.NoError(t, c.BeginAuth())
		require.NoError(t, c.Fail("ACCOUNT_DISABLED"))

		snap := c.Current()
		assert.Equal(t, sessionstate.PhaseAuthFailed, snap.Phase)
		assert.Equal(t, "ACCOUNT_DISABLED", snap.LastError)
		assertInvariant(t, snap)
	})

	t.Run("retry after failure clears previous error immediately", func(t *testing.T) {
		t.Parallel()

		c := sessionstate.NewContainer()
		require.NoError(t, c.BeginAuth())
		require.NoError(t, c.Fail("WRONG_PASSWORD"))

		require.NoError(t, c.BeginAuth())

		snap := c.Current()
		assert.Equal(t, sessionstate.PhaseAuthenticating, snap.Phase)
		assert.Empty(t, snap.LastError)
	})
}

func TestContainer_BusyRejection(t *testing.T) {
	t.Parallel()

	c := sessionstate.NewContainer()
	require.NoError(t, c.BeginAuth())

	// A second attempt while authenticating is rejected, never queued.
	require.ErrorIs(t, c.BeginAuth(), sessionstate.ErrAuthInFlight)

	// The in-flight attempt still resolves normally.
	require.NoError(t, c.Succeed(testProfile()))
	assert.Equal(t, sessionstate.PhaseLoggedIn, c.Current().Phase)
}

func TestContainer_InvalidTransitions(t *testing.T) {
	t.Parallel()

	t.Run("succeed without begin", func(t *testing.T) {
		t.Parallel()

		c := sessionstate.NewContainer()
		require.ErrorIs(t, c.Succeed(testProfile()), sessionstate.ErrInvalidTransition)
	})

	t.Run("fail without begin", func(t *testing.T) {
		t.Parallel()

		c := sessionstate.NewContainer()
		require.ErrorIs(t, c.Fail("WRONG_PASSWORD"), sessionstate.ErrInvalidTransition)
	})

	t.Run("begin while logged in", func(t *testing.T) {
		t.Parallel()

		c := sessionstate.NewContainer()
		require.NoError(t, c.BeginAuth())
		require.NoError(t, c.Succeed(testProfile()))

		require.ErrorIs(t, c.BeginAuth(), sessionstate.ErrInvalidTransition)
	})

	t.Run("succeed with nil profile", func(t *testing.T) {
		t.Parallel()

		c := sessionstate.NewContainer()
		require.NoError(t, c.BeginAuth())
		require.ErrorIs(t, c.Succeed(nil), sessionstate.ErrInvalidTransition)
	})
}

func TestContainer_ForceLoggedIn(t *testing.T) {
	t.Parallel()

	t.Run("rehydrates from logged out without authenticating", func(t *testing.T) {
		t.Parallel()

		c := sessionstate.NewContainer()
		require.NoError(t, c.ForceLoggedIn(testProfile()))

		snap := c.Current()
		assert.Equal(t, sessionstate.PhaseLoggedIn, snap.Phase)
		assertInvariant(t, snap)
	})

	t.Run("rejected after an auth attempt has started", func(t *testing.T) {
		t.Parallel()

		c := sessionstate.NewContainer()
		require.NoError(t, c.BeginAuth())
		require.NoError(t, c.Fail("WRONG_PASSWORD"))

		require.ErrorIs(t, c.ForceLoggedIn(testProfile()), sessionstate.ErrInvalidTransition)
	})
}

func TestContainer_Logout(t *testing.T) {
	t.Parallel()

	c := sessionstate.NewContainer()
	require.NoError(t, c.BeginAuth())
	require.NoError(t, c.Succeed(testProfile()))

	c.Logout()
	snap := c.Current()
	assert.Equal(t, sessionstate.PhaseLoggedOut, snap.Phase)
	assert.Nil(t, snap.Profile)

	// Idempotent: a second logout is a no-op success.
	c.Logout()
	assert.Equal(t, sessionstate.PhaseLoggedOut, c.Current().Phase)
}

func TestContainer_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("receives transitions in order", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		c := sessionstate.NewContainer()
		updates := c.Subscribe(ctx)

		require.NoError(t, c.BeginAuth())
		require.NoError(t, c.Succeed(testProfile()))
		c.Logout()

		want := []sessionstate.Phase{
			sessionstate.PhaseAuthenticating,
			sessionstate.PhaseLoggedIn,
			sessionstate.PhaseLoggedOut,
		}
		for _, phase := range want {
			select {
			case snap := <-updates:
				assert.Equal(t, phase, snap.Phase)
				assertInvariant(t, snap)
			case <-time.After(time.Second):
				t.Fatalf("timed out waiting for %s", phase)
			}
		}
	})

	t.Run("channel closes on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		c := sessionstate.NewContainer()
		updates := c.Subscribe(ctx)

		cancel()

		select {
		case _, open := <-updates:
			assert.False(t, open)
		case <-time.After(time.Second):
			t.Fatal("channel not closed after cancellation")
		}
	})

	t.Run("full subscriber buffer never blocks transitions", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		c := sessionstate.NewContainer(sessionstate.WithSubscriberBuffer(1))
		_ = c.Subscribe(ctx) // never drained

		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 0; i < 10; i++ {
				_ = c.BeginAuth()
				_ = c.Fail("WRONG_PASSWORD")
			}
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("transitions blocked by a slow subscriber")
		}
	})
}

func TestContainer_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	c := sessionstate.NewContainer()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assertInvariant(t, c.Current())
			}
		}()
	}

	for i := 0; i < 50; i++ {
		if err := c.BeginAuth(); err != nil {
			continue
		}
		require.NoError(t, c.Succeed(testProfile()))
		c.Logout()
	}
	wg.Wait()
}
