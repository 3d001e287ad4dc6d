package user

// Account enablement values for Profile.Enabled.
const (
	EnabledOff = "0"
	EnabledOn  = "1"
)

// Y/N flag values used by alarm and AI toggles.
const (
	FlagYes = "Y"
	FlagNo  = "N"
)

// Profile is the denormalized user record returned by the login endpoint.
// Field names mirror the backend wire contract exactly (snake_case JSON).
// The profile is written only by the auth client on successful login and
// is read-only everywhere else; it is a cached view, not authoritative.
type Profile struct {
	UserSeq  int    `json:"user_seq"`
	Username string `json:"username"`
	Fullname string `json:"fullname,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`

	// Account state. Enabled is "0"/"1"; Status is a single-letter code
	// (A/B/C/D/F) with an optional human-readable message.
	Enabled          string `json:"enabled"`
	Status           string `json:"status"`
	StatusMsg        string `json:"status_msg,omitempty"`
	PasswordWrongCnt int    `json:"password_wrong_cnt"`

	GroupLimit  int `json:"group_limit"`
	DeviceLimit int `json:"device_limit"`

	// Alarm channel toggles, Y/N.
	AlarmYN         string `json:"alarm_yn,omitempty"`
	AlarmLineYN     string `json:"alarm_line_yn,omitempty"`
	AlarmWhatsappYN string `json:"alarm_whatsapp_yn,omitempty"`

	AIStatus   string `json:"ai_status,omitempty"`
	AIToggleYN string `json:"ai_toggle_yn,omitempty"`

	LastAccessDt string `json:"last_access_dt,omitempty"`
	RegDt        string `json:"reg_dt,omitempty"`
}

// IsEnabled reports whether the account is active.
func (p Profile) IsEnabled() bool {
	return p.Enabled == EnabledOn
}

// AlarmEnabled reports whether the general alarm channel is switched on.
func (p Profile) AlarmEnabled() bool {
	return p.AlarmYN == FlagYes
}

// AIEnabled reports whether the AI feature toggle is switched on.
func (p Profile) AIEnabled() bool {
	return p.AIToggleYN == FlagYes
}

// DisplayName returns the full name when set, falling back to the username.
func (p Profile) DisplayName() string {
	if p.Fullname != "" {
		return p.Fullname
	}
	return p.Username
}
