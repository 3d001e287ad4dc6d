package sessionstate

import "errors"

var (
	// ErrAuthInFlight is returned by BeginAuth while another login attempt
	// is already authenticating. The new attempt must be rejected, never
	// queued or raced against the in-flight one.
	ErrAuthInFlight = errors.New("sessionstate: authentication already in flight")

	// ErrInvalidTransition indicates a state transition that the machine
	// does not permit, e.g. Succeed without a preceding BeginAuth. This is
	// a programming-error class failure, not a user-facing condition.
	ErrInvalidTransition = errors.New("sessionstate: invalid state transition")
)
