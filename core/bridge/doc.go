// Package bridge connects durable credential storage to the in-memory
// session state container.
//
// At process start, Rehydrate reads the persisted credential bundle and, if
// it is non-empty, publishes the logged-in state with the cached profile —
// a trust-on-read restore with no network round trip, so the UI never
// flashes a logged-out screen for a user who is still signed in. An empty
// bundle, or any read failure, leaves the session logged out (fail-closed).
//
// Mirror keeps a coarse, token-free continuity snapshot (profile plus
// logged-in fact) in sync with the session state. The snapshot restores UI
// continuity after a crash and serves as a rehydration fallback when the
// encrypted user_data entry is missing or corrupt.
//
//	b := bridge.New(store, sessions,
//		bridge.WithContinuityStore(continuity),
//		bridge.WithLogger(log),
//	)
//	if err := b.Rehydrate(ctx); err != nil {
//		log.Warn("rehydration failed", "error", err)
//	}
//	stop := b.Mirror(ctx)
//	defer stop()
package bridge
