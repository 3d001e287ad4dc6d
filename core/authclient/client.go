package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BBoDDoGood/smartoko-app/core/credstore"
	"github.com/BBoDDoGood/smartoko-app/core/logger"
	"github.com/BBoDDoGood/smartoko-app/core/sessionstate"
	"github.com/BBoDDoGood/smartoko-app/core/user"
)

// Client performs login and signup against the auth endpoints and
// orchestrates credential persistence and session state transitions. It is
// stateless between calls; all durable state lives in the credential store
// and all in-memory state in the session container.
type Client struct {
	baseURL      string
	userInfoPath string
	httpClient   *http.Client
	store        credstore.Store
	sessions     *sessionstate.Container
	profiles     ProfileSource
	fetchProfile bool
	logger       *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithLogger configures structured logging.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. The caller is
// responsible for setting a timeout on it; network attempts are otherwise
// unbounded.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithProfileSource replaces the profile resolution strategy. Default is
// EmbeddedProfileSource.
func WithProfileSource(src ProfileSource) Option {
	return func(c *Client) {
		if src != nil {
			c.profiles = src
		}
	}
}

// WithFetchedProfile resolves the profile from the configured user-info
// endpoint instead of the login response body, for backends whose login
// response carries tokens only.
func WithFetchedProfile() Option {
	return func(c *Client) {
		c.fetchProfile = true
	}
}

// New creates an auth client over the given credential store and session
// container. Both collaborators are owned by the application root and
// passed by reference; the client holds no singletons.
func New(cfg Config, store credstore.Store, sessions *sessionstate.Container, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	userInfoPath := cfg.UserInfoPath
	if userInfoPath == "" {
		userInfoPath = DefaultUserInfoPath
	}

	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		userInfoPath: userInfoPath,
		httpClient:   &http.Client{Timeout: timeout},
		store:        store,
		sessions:     sessions,
		profiles:     EmbeddedProfileSource{},
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fetchProfile {
		c.profiles = NewFetchProfileSource(c.httpClient, c.baseURL+c.userInfoPath)
	}
	return c, nil
}

// SignUpParams are the registration fields. Username and Password are
// required by the backend; the rest are optional.
type SignUpParams struct {
	Username string
	Password string
	Fullname string
	Email    string
	Phone    string
}

// Login authenticates against the backend. Expected outcomes (success,
// rejected, unreachable, busy) are returned in the result; only storage and
// protocol faults are returned as errors, and both also drive the session
// to auth_failed.
//
// On success the credential bundle and the profile are persisted before the
// logged-in state is published, so a process restart can never observe a
// logged-in UI without durable credentials behind it.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	if err := c.sessions.BeginAuth(); err != nil {
		if errors.Is(err, sessionstate.ErrAuthInFlight) {
			c.logger.Debug("login rejected, attempt already in flight", logger.Username(username))
			return LoginResult{Status: LoginBusy}, nil
		}
		return LoginResult{}, err
	}

	attemptID := uuid.New()
	start := time.Now()
	log := c.logger.With(logger.ID("attempt_id", attemptID.String()))

	resp, reason, err := c.postLogin(ctx, username, password)
	if err != nil {
		if failErr := c.sessions.Fail(reason); failErr != nil {
			return LoginResult{}, failErr
		}
		// Protocol faults propagate as errors; unreachable is ordinary data.
		if errors.Is(err, ErrProtocol) {
			log.Error("login response malformed", logger.Error(err), logger.Elapsed(start))
			return LoginResult{}, err
		}
		log.Warn("login attempt unreachable",
			logger.Username(username),
			slog.String("reason", reason),
			logger.Error(err),
			logger.Elapsed(start),
		)
		return LoginResult{Status: LoginUnreachable, ReasonCode: reason}, nil
	}

	if !resp.Success {
		if err := c.sessions.Fail(resp.Message); err != nil {
			return LoginResult{}, err
		}
		log.Info("login rejected by server",
			logger.Username(username),
			slog.String("reason", resp.Message),
			logger.Elapsed(start),
		)
		return LoginResult{
			Status:     LoginRejected,
			ReasonCode: resp.Message,
			ErrorData:  resp.ErrorData,
		}, nil
	}

	profile, err := c.profiles.Resolve(ctx, LoginData{
		User:         resp.User,
		AccessToken:  resp.AccessToken,
		SessionToken: resp.SessionToken,
		SessionID:    resp.SessionID,
	})
	if err != nil {
		if failErr := c.sessions.Fail(ReasonProtocolError); failErr != nil {
			return LoginResult{}, failErr
		}
		log.Error("login profile resolution failed", logger.Error(err))
		return LoginResult{}, err
	}

	if err := c.persistCredentials(ctx, resp, profile); err != nil {
		if failErr := c.sessions.Fail(ReasonStorageError); failErr != nil {
			return LoginResult{}, failErr
		}
		log.Error("login credential persistence failed", logger.Error(err))
		return LoginResult{}, errors.Join(ErrStorage, err)
	}

	if err := c.sessions.Succeed(profile); err != nil {
		return LoginResult{}, err
	}

	log.Info("login succeeded",
		logger.Username(username),
		slog.Int("user_seq", profile.UserSeq),
		logger.Elapsed(start),
	)
	return LoginResult{Status: LoginSuccess, Profile: profile}, nil
}

// SignUp registers a new account. It never touches the credential store or
// the session state; there is no implicit login after registration.
func (c *Client) SignUp(ctx context.Context, params SignUpParams) (SignUpResult, error) {
	body := signUpRequest{
		Username: params.Username,
		Password: params.Password,
		Fullname: params.Fullname,
		Email:    params.Email,
		Phone:    params.Phone,
	}

	var resp signUpResponse
	reason, err := c.postJSON(ctx, "/auth/signup", body, &resp)
	if err != nil {
		if errors.Is(err, ErrProtocol) {
			return SignUpResult{}, err
		}
		c.logger.Warn("signup attempt unreachable",
			logger.Username(params.Username),
			slog.String("reason", reason),
			logger.Error(err),
		)
		return SignUpResult{Status: SignUpUnreachable, ReasonCode: reason}, nil
	}

	if !resp.Success {
		return SignUpResult{Status: SignUpRejected, ReasonCode: resp.Message}, nil
	}
	return SignUpResult{Status: SignUpSuccess, UserSeq: resp.UserSeq}, nil
}

// Logout purges the credential store and publishes the logged-out state.
// The state transition is unconditional: a storage glitch must never leave
// the UI stuck visually logged in, so cleanup failures are logged and
// swallowed. Idempotent.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx, credstore.CredentialKeys()...); err != nil {
		c.logger.Error("logout storage cleanup failed", logger.Error(err))
	}
	c.sessions.Logout()
	return nil
}

// persistCredentials writes the token bundle and then the profile. Both
// must succeed before the logged-in transition is published.
func (c *Client) persistCredentials(ctx context.Context, resp *loginResponse, profile *user.Profile) error {
	bundle := credstore.Bundle{
		AccessToken:  resp.AccessToken,
		SessionToken: resp.SessionToken,
		SessionID:    resp.SessionID,
	}
	if err := credstore.WriteBundle(ctx, c.store, bundle); err != nil {
		return err
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.store.Put(ctx, credstore.KeyUserData, string(profileJSON))
}

// postLogin performs the login request and classifies transport failures.
// The returned reason is a synthetic code for unreachable outcomes.
func (c *Client) postLogin(ctx context.Context, username, password string) (*loginResponse, string, error) {
	var resp loginResponse
	reason, err := c.postJSON(ctx, "/auth/login", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, reason, err
	}
	return &resp, "", nil
}

// postJSON posts a JSON body and decodes a JSON response. Transport
// failures return a synthetic reason code alongside the error; protocol
// faults return ErrProtocol.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) (string, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return ReasonProtocolError, errors.Join(ErrProtocol, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return ReasonProtocolError, errors.Join(ErrProtocol, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeout vs connection failure matters for logs only; both are
		// unreachable for control flow.
		reason := ReasonNetworkUnreachable
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			reason = ReasonNetworkTimeout
		} else if errors.Is(err, context.DeadlineExceeded) {
			reason = ReasonNetworkTimeout
		}
		return reason, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ReasonProtocolError, fmt.Errorf("%w: %s returned status %d", ErrProtocol, path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return ReasonProtocolError, errors.Join(ErrProtocol, err)
	}
	return "", nil
}
