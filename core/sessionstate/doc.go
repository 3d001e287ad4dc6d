// Package sessionstate provides the in-memory, observable session state
// container: a single-writer, multi-reader state machine over the phases
// logged_out, authenticating, logged_in and auth_failed.
//
// The container is the single source of truth the UI consumes. It is a
// projection of the durable credential bundle for the current process and
// is kept consistent with it by the auth client and the persistence bridge
// alone; nothing else mutates it.
//
// # Usage
//
//	sessions := sessionstate.NewContainer(sessionstate.WithLogger(log))
//
//	// UI: read the current state, then watch for changes.
//	snap := sessions.Current()
//	for snap := range sessions.Subscribe(ctx) {
//		render(snap)
//	}
//
// Subscribe delivers snapshots published after the call; read Current first
// for the initial render. Slow subscribers never block transitions, their
// snapshots are dropped once the buffer fills.
package sessionstate
