package reason

import "golang.org/x/text/language"

// Reason codes understood by the UI. Server-issued codes pass through the
// auth client verbatim; the NETWORK_* and STORAGE_ERROR codes are
// synthesized client-side.
const (
	WrongPassword      = "WRONG_PASSWORD"
	AccountDisabled    = "ACCOUNT_DISABLED"
	AccountLocked      = "ACCOUNT_LOCKED"
	UserNotFound       = "USER_NOT_FOUND"
	SignUpDuplicate    = "SIGNUP_DUPLICATE"
	NetworkUnreachable = "NETWORK_UNREACHABLE"
	NetworkTimeout     = "NETWORK_TIMEOUT"
	StorageError       = "STORAGE_ERROR"
	ProtocolError      = "PROTOCOL_ERROR"
)

// supported lists the catalog languages in matcher priority order; the
// first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.Korean,
}

var matcher = language.NewMatcher(supported)

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		WrongPassword:      "The username or password is incorrect.",
		AccountDisabled:    "This account has been disabled.",
		AccountLocked:      "This account is locked. Please contact support.",
		UserNotFound:       "No account exists for this username.",
		SignUpDuplicate:    "An account with this username already exists.",
		NetworkUnreachable: "Cannot reach the server. Check your connection and try again.",
		NetworkTimeout:     "The server did not respond in time. Please try again.",
		StorageError:       "Could not save your session securely. Please try again.",
		ProtocolError:      "The server returned an unexpected response.",
	},
	language.Korean: {
		WrongPassword:      "아이디 또는 비밀번호가 틀렸습니다.",
		AccountDisabled:    "비활성화된 계정입니다.",
		AccountLocked:      "잠긴 계정입니다. 고객센터에 문의해 주세요.",
		UserNotFound:       "존재하지 않는 계정입니다.",
		SignUpDuplicate:    "이미 사용 중인 아이디입니다.",
		NetworkUnreachable: "서버에 연결할 수 없습니다. 네트워크를 확인해 주세요.",
		NetworkTimeout:     "서버 응답이 지연되고 있습니다. 다시 시도해 주세요.",
		StorageError:       "세션을 안전하게 저장하지 못했습니다. 다시 시도해 주세요.",
		ProtocolError:      "서버에서 예상하지 못한 응답을 받았습니다.",
	},
}

// Localize returns the human-readable message for a reason code in the
// best-matching supported language. Unknown languages fall back to English;
// unknown codes fall back to the code itself so new server codes degrade
// gracefully instead of rendering blank.
func Localize(lang, code string) string {
	_, index, _ := matcher.Match(language.Make(lang))
	catalog := catalogs[supported[index]]

	if msg, ok := catalog[code]; ok {
		return msg
	}
	// Unknown code in a non-English catalog may still exist in English.
	if msg, ok := catalogs[supported[0]][code]; ok {
		return msg
	}
	return code
}
