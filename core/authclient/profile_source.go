package authclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/BBoDDoGood/smartoko-app/core/user"
)

// LoginData carries the fresh credentials of a successful login response,
// before anything has been persisted.
type LoginData struct {
	// User is the profile embedded in the login body, when the server
	// returned one.
	User *user.Profile

	AccessToken  string
	SessionToken string
	SessionID    string
}

// ProfileSource resolves the authoritative user profile after a successful
// login. Historical backend versions disagree on whether login embeds the
// profile or a separate user-info call is required; the strategy keeps both
// contracts supported without hardcoding either.
type ProfileSource interface {
	Resolve(ctx context.Context, data LoginData) (*user.Profile, error)
}

// EmbeddedProfileSource expects the profile in the login response body.
// This is the default strategy.
type EmbeddedProfileSource struct{}

// Resolve returns the embedded profile, or ErrProtocol when the server
// omitted it.
func (EmbeddedProfileSource) Resolve(_ context.Context, data LoginData) (*user.Profile, error) {
	if data.User == nil {
		return nil, fmt.Errorf("%w: login response has no user profile", ErrProtocol)
	}
	return data.User, nil
}

// FetchProfileSource retrieves the profile from a separate user-info
// endpoint using the fresh tokens, for backends whose login response does
// not embed profile data.
type FetchProfileSource struct {
	httpClient *http.Client
	url        string
}

// NewFetchProfileSource creates a fetch strategy for the given absolute
// user-info URL. A nil httpClient falls back to a client with the default
// auth timeout.
func NewFetchProfileSource(httpClient *http.Client, url string) *FetchProfileSource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &FetchProfileSource{httpClient: httpClient, url: url}
}

type userInfoResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	User    *user.Profile `json:"user"`
}

// Resolve fetches the profile with the not-yet-persisted tokens applied as
// request headers.
func (f *FetchProfileSource) Resolve(ctx context.Context, data LoginData) (*user.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if data.AccessToken != "" {
		req.Header.Set(HeaderAuthorization, "Bearer "+data.AccessToken)
	}
	if data.SessionToken != "" {
		req.Header.Set(HeaderSessionToken, data.SessionToken)
	}
	if data.SessionID != "" {
		req.Header.Set(HeaderSessionID, data.SessionID)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: user info returned status %d", ErrProtocol, resp.StatusCode)
	}

	var body userInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Join(ErrProtocol, err)
	}
	if !body.Success || body.User == nil {
		return nil, fmt.Errorf("%w: user info has no profile", ErrProtocol)
	}
	return body.User, nil
}
