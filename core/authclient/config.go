package authclient

import "time"

// DefaultTimeout bounds every network attempt. Exceeding it is classified
// as an unreachable outcome; there is no retry policy.
const DefaultTimeout = 10 * time.Second

// DefaultUserInfoPath is the user-info endpoint used when none is
// configured.
const DefaultUserInfoPath = "/user/info"

// Config holds auth client configuration.
type Config struct {
	// BaseURL is the API root, e.g. https://beta.smartoko.com/api.
	BaseURL string `env:"SMARTOKO_API_BASE_URL,required"`

	// Timeout bounds each network attempt.
	Timeout time.Duration `env:"SMARTOKO_HTTP_TIMEOUT" envDefault:"10s"`

	// UserInfoPath is the endpoint used by FetchProfileSource when the
	// login response does not embed the user profile.
	UserInfoPath string `env:"SMARTOKO_USER_INFO_PATH" envDefault:"/user/info"`
}
