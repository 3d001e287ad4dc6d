package authclient

import "github.com/BBoDDoGood/smartoko-app/core/user"

// Wire types mirror the backend auth endpoints exactly. The backend reports
// expected failures (wrong password, disabled account) with HTTP 200 and
// success=false; the message field doubles as a machine-readable reason code.

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success      bool           `json:"success"`
	Message      string         `json:"message"`
	User         *user.Profile  `json:"user,omitempty"`
	AccessToken  string         `json:"access_token,omitempty"`
	SessionToken string         `json:"session_token,omitempty"`
	SessionID    string         `json:"session_id,omitempty"`
	TokenType    string         `json:"token_type,omitempty"`
	ExpiresIn    int            `json:"expires_in,omitempty"`
	ErrorData    map[string]any `json:"error_data,omitempty"`
}

type signUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type signUpResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserSeq int    `json:"user_seq,omitempty"`
}
