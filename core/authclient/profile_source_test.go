package authclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BBoDDoGood/smartoko-app/core/authclient"
	"github.com/BBoDDoGood/smartoko-app/core/credstore"
	"github.com/BBoDDoGood/smartoko-app/core/sessionstate"
	"github.com/BBoDDoGood/smartoko-app/core/user"
)

func TestEmbeddedProfileSource(t *testing.T) {
	t.Parallel()

	t.Run("returns embedded profile", func(t *testing.T) {
		t.Parallel()

		src := authclient.EmbeddedProfileSource{}
		profile, err := src.Resolve(context.Background(), authclient.LoginData{
			User: &user.Profile{UserSeq: 7},
		})
		require.NoError(t, err)
		assert.Equal(t, 7, profile.UserSeq)
	})

	t.Run("missing profile is a protocol error", func(t *testing.T) {
		t.Parallel()

		src := authclient.EmbeddedProfileSource{}
		_, err := src.Resolve(context.Background(), authclient.LoginData{AccessToken: "abc"})
		require.ErrorIs(t, err, authclient.ErrProtocol)
	})
}

func TestFetchProfileSource(t *testing.T) {
	t.Parallel()

	t.Run("fetches with fresh tokens", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer abc", r.Header.Get(authclient.HeaderAuthorization))
			assert.Equal(t, "sid-1", r.Header.Get(authclient.HeaderSessionID))
			w.Write([]byte(`{"success": true, "user": {"user_seq": 7, "username": "a@b.com"}}`))
		}))
		defer srv.Close()

		src := authclient.NewFetchProfileSource(nil, srv.URL+"/user/info")
		profile, err := src.Resolve(context.Background(), authclient.LoginData{
			AccessToken: "abc",
			SessionID:   "sid-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", profile.Username)
	})

	t.Run("non-200 is a protocol error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		src := authclient.NewFetchProfileSource(nil, srv.URL+"/user/info")
		_, err := src.Resolve(context.Background(), authclient.LoginData{AccessToken: "abc"})
		require.ErrorIs(t, err, authclient.ErrProtocol)
	})

	t.Run("wired into login", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": true, "message": "OK", "access_token": "abc"}`))
		})
		mux.HandleFunc("/user/info", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer abc", r.Header.Get(authclient.HeaderAuthorization))
			w.Write([]byte(`{"success": true, "user": {"user_seq": 9, "username": "a@b.com"}}`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		store := credstore.NewMemory()
		sessions := sessionstate.NewContainer()
		client := newClient(t, srv.URL, store, sessions, authclient.WithFetchedProfile())

		result, err := client.Login(context.Background(), "a@b.com", "secret123")
		require.NoError(t, err)
		require.Equal(t, authclient.LoginSuccess, result.Status)
		assert.Equal(t, 9, result.Profile.UserSeq)
		assert.Equal(t, sessionstate.PhaseLoggedIn, sessions.Current().Phase)
	})
}
