package dashboard

import "errors"

var (
	// ErrSessionExpired indicates the server rejected the auth headers
	// (401). The session must be routed back to logged out.
	ErrSessionExpired = errors.New("dashboard: session expired or invalid")

	// ErrServerFault indicates a server-side failure (5xx).
	ErrServerFault = errors.New("dashboard: server fault")

	// ErrMalformedResponse indicates the response body could not be decoded.
	ErrMalformedResponse = errors.New("dashboard: malformed response")

	// ErrMissingBaseURL is returned by New when no base URL is provided.
	ErrMissingBaseURL = errors.New("dashboard: base URL is required")

	// ErrMissingHTTPClient is returned by New when no HTTP client is provided.
	ErrMissingHTTPClient = errors.New("dashboard: http client is required")
)
