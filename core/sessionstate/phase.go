package sessionstate

// Phase is the authentication phase of the running process.
type Phase int

const (
	// PhaseLoggedOut is the initial phase, and the phase after logout.
	// Until rehydration proves otherwise the process is logged out
	// (fail-closed).
	PhaseLoggedOut Phase = iota

	// PhaseAuthenticating means a login attempt is in flight. At most one
	// attempt may be in this phase at a time.
	PhaseAuthenticating

	// PhaseLoggedIn means the process holds a persisted credential bundle
	// and a cached profile.
	PhaseLoggedIn

	// PhaseAuthFailed means the last login attempt failed; the reason is
	// carried in Snapshot.LastError.
	PhaseAuthFailed
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseLoggedOut:
		return "logged_out"
	case PhaseAuthenticating:
		return "authenticating"
	case PhaseLoggedIn:
		return "logged_in"
	case PhaseAuthFailed:
		return "auth_failed"
	default:
		return "unknown"
	}
}
