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
)

func TestTransport_InjectsAuthHeaders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := credstore.NewMemory()
	require.NoError(t, store.Put(ctx, credstore.KeyAccessToken, "abc"))
	require.NoError(t, store.Put(ctx, credstore.KeySessionID, "sid-1"))

	client := newClient(t, "http://localhost:0", store, sessionstate.NewContainer())

	var seen http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
	}))
	defer srv.Close()

	httpClient := &http.Client{Transport: authclient.NewTransport(client, nil)}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := httpClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer abc", seen.Get(authclient.HeaderAuthorization))
	assert.Equal(t, "sid-1", seen.Get(authclient.HeaderSessionID))
	assert.Empty(t, seen.Get(authclient.HeaderSessionToken))

	// The original request must not be mutated.
	assert.Empty(t, req.Header.Get(authclient.HeaderAuthorization))
}

func TestTransport_ReadsTokensFresh(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := credstore.NewMemory()
	client := newClient(t, "http://localhost:0", store, sessionstate.NewContainer())

	var seen http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
	}))
	defer srv.Close()

	httpClient := &http.Client{Transport: authclient.NewTransport(client, nil)}

	// First request: no credentials yet.
	resp, err := httpClient.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, seen.Get(authclient.HeaderAuthorization))

	// Tokens stored after the transport was built still apply.
	require.NoError(t, store.Put(ctx, credstore.KeyAccessToken, "late"))

	resp, err = httpClient.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "Bearer late", seen.Get(authclient.HeaderAuthorization))
}
