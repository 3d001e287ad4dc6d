package authclient

import "github.com/BBoDDoGood/smartoko-app/core/user"

// LoginStatus classifies the outcome of a login attempt. Every status is an
// expected result returned as data; only storage and protocol faults travel
// as errors.
type LoginStatus int

const (
	// LoginSuccess means the server accepted the credentials and the
	// session is persisted and published as logged in.
	LoginSuccess LoginStatus = iota

	// LoginRejected means the server confirmed the attempt and refused it
	// (wrong password, disabled account, ...). ReasonCode carries the
	// server's machine-readable code.
	LoginRejected

	// LoginUnreachable means the request could not complete: DNS,
	// connection or TLS failure, or the attempt exceeded its timeout.
	LoginUnreachable

	// LoginBusy means another login attempt was already in flight. The new
	// attempt was rejected immediately and the in-flight one is untouched.
	LoginBusy
)

// String returns the status name for logging.
func (s LoginStatus) String() string {
	switch s {
	case LoginSuccess:
		return "success"
	case LoginRejected:
		return "rejected"
	case LoginUnreachable:
		return "unreachable"
	case LoginBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// Synthetic reason codes produced by the client itself. Server-side codes
// (WRONG_PASSWORD, ACCOUNT_DISABLED, ...) pass through verbatim.
const (
	ReasonNetworkUnreachable = "NETWORK_UNREACHABLE"
	ReasonNetworkTimeout     = "NETWORK_TIMEOUT"
	ReasonStorageError       = "STORAGE_ERROR"
	ReasonProtocolError      = "PROTOCOL_ERROR"
)

// LoginResult is the outcome of a login attempt.
type LoginResult struct {
	Status LoginStatus

	// Profile is set iff Status == LoginSuccess.
	Profile *user.Profile

	// ReasonCode is set for rejected and unreachable outcomes.
	ReasonCode string

	// ErrorData carries optional structured detail from the server, such
	// as a remaining-attempts counter on wrong passwords.
	ErrorData map[string]any
}

// SignUpStatus classifies the outcome of a signup attempt.
type SignUpStatus int

const (
	SignUpSuccess SignUpStatus = iota
	SignUpRejected
	SignUpUnreachable
)

// String returns the status name for logging.
func (s SignUpStatus) String() string {
	switch s {
	case SignUpSuccess:
		return "success"
	case SignUpRejected:
		return "rejected"
	case SignUpUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// SignUpResult is the outcome of a signup attempt. Signup never touches the
// credential store; there is no implicit login after registration.
type SignUpResult struct {
	Status SignUpStatus

	// UserSeq is the created account's sequence number on success.
	UserSeq int

	// ReasonCode is set for rejected and unreachable outcomes.
	ReasonCode string
}
