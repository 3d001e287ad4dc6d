package authclient

import "errors"

var (
	// ErrStorage indicates the secure credential store failed during login
	// persistence. The session is not marked logged in without durable
	// persistence succeeding, otherwise a restart would silently lose it.
	ErrStorage = errors.New("authclient: credential storage failed")

	// ErrProtocol indicates a malformed or unexpected response shape from
	// the auth endpoints.
	ErrProtocol = errors.New("authclient: unexpected response from server")

	// ErrMissingBaseURL is returned by New when no API base URL is
	// configured.
	ErrMissingBaseURL = errors.New("authclient: base URL is required")
)
