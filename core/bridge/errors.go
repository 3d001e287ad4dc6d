package bridge

import "errors"

var (
	// ErrAlreadyRehydrated is returned when Rehydrate is called more than
	// once. Rehydration runs strictly once, at startup, before any login
	// call is reachable.
	ErrAlreadyRehydrated = errors.New("bridge: rehydration already performed")

	// ErrMissingPath is returned when a file continuity store is created
	// without a path.
	ErrMissingPath = errors.New("bridge: continuity file path is required")
)
