package reason_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BBoDDoGood/smartoko-app/pkg/reason"
)

func TestLocalize(t *testing.T) {
	t.Parallel()

	t.Run("english", func(t *testing.T) {
		t.Parallel()
		msg := reason.Localize("en", reason.WrongPassword)
		assert.Equal(t, "The username or password is incorrect.", msg)
	})

	t.Run("korean", func(t *testing.T) {
		t.Parallel()
		msg := reason.Localize("ko", reason.WrongPassword)
		assert.Equal(t, "아이디 또는 비밀번호가 틀렸습니다.", msg)
	})

	t.Run("region variants match their base language", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			reason.Localize("ko", reason.AccountDisabled),
			reason.Localize("ko-KR", reason.AccountDisabled),
		)
		assert.Equal(t,
			reason.Localize("en", reason.AccountDisabled),
			reason.Localize("en-US", reason.AccountDisabled),
		)
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		t.Parallel()
		msg := reason.Localize("xx", reason.NetworkTimeout)
		assert.Equal(t, reason.Localize("en", reason.NetworkTimeout), msg)
	})

	t.Run("unknown code falls back to the code itself", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "SOME_NEW_CODE", reason.Localize("en", "SOME_NEW_CODE"))
	})
}
