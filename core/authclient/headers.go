package authclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/BBoDDoGood/smartoko-app/core/credstore"
)

// Header names for authenticated requests.
const (
	HeaderAuthorization = "Authorization"
	HeaderSessionToken  = "X-Session-Token"
	HeaderSessionID     = "X-Session-ID"
)

// AuthHeaders composes request headers from the current credential store
// contents. Each header is emitted only when its token is present; absent
// fields are omitted entirely, never sent as empty strings.
func (c *Client) AuthHeaders(ctx context.Context) (http.Header, error) {
	headers := make(http.Header)

	accessToken, err := c.store.Get(ctx, credstore.KeyAccessToken)
	if err != nil {
		return nil, errors.Join(ErrStorage, err)
	}
	if accessToken != "" {
		headers.Set(HeaderAuthorization, "Bearer "+accessToken)
	}

	sessionToken, err := c.store.Get(ctx, credstore.KeySessionToken)
	if err != nil {
		return nil, errors.Join(ErrStorage, err)
	}
	if sessionToken != "" {
		headers.Set(HeaderSessionToken, sessionToken)
	}

	sessionID, err := c.store.Get(ctx, credstore.KeySessionID)
	if err != nil {
		return nil, errors.Join(ErrStorage, err)
	}
	if sessionID != "" {
		headers.Set(HeaderSessionID, sessionID)
	}

	return headers, nil
}
