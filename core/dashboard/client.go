package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BBoDDoGood/smartoko-app/core/logger"
)

// Overview is the dashboard summary returned by the backend. Field names
// mirror the wire contract.
type Overview struct {
	TodayTotalDetections   int       `json:"today_total_detections"`
	DevicesDetectedToday   int       `json:"devices_detected_today"`
	TotalRegisteredDevices int       `json:"total_registered_devices"`
	RiskLevelCriticalCount int       `json:"risk_level_critical_count"`
	RiskLevelHighCount     int       `json:"risk_level_high_count"`
	RiskLevelMediumCount   int       `json:"risk_level_medium_count"`
	SecuritySafeCount      int       `json:"security_safe_count"`
	GeneralDetectionCount  int       `json:"general_detection_count"`
	LastUpdated            time.Time `json:"last_updated"`
}

// logoutFunc mirrors the auth client's Logout signature so the dashboard
// client does not depend on the authclient package directly.
type logoutFunc func(ctx context.Context) error

// Client fetches dashboard data over an authenticated HTTP client. Pass a
// client whose transport injects auth headers (authclient.NewTransport).
type Client struct {
	baseURL    string
	httpClient *http.Client
	onExpired  logoutFunc
	logger     *slog.Logger
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

// WithLogoutOnUnauthorized routes the session back to logged out whenever
// the server answers 401, so an expired session never leaves the UI in a
// stale logged-in state.
func WithLogoutOnUnauthorized(logout func(ctx context.Context) error) Option {
	return func(c *Client) {
		c.onExpired = logout
	}
}

// New creates a dashboard client. The httpClient is required and should
// carry the authenticated transport.
func New(baseURL string, httpClient *http.Client, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if httpClient == nil {
		return nil, ErrMissingHTTPClient
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Overview fetches the dashboard overview in the given UI language.
// A 401 yields ErrSessionExpired (and drives logout when configured);
// a 500 yields ErrServerFault.
func (c *Client) Overview(ctx context.Context, lang string) (*Overview, error) {
	endpoint := c.baseURL + "/dashboard/overview?user_ui_language=" + url.QueryEscape(lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.logger.Info("dashboard request unauthorized, session expired")
		if c.onExpired != nil {
			if err := c.onExpired(ctx); err != nil {
				c.logger.Error("logout after expired session failed", logger.Error(err))
			}
		}
		return nil, ErrSessionExpired
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, ErrServerFault
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("dashboard: unexpected status %d", resp.StatusCode)
	}

	var overview Overview
	if err := json.NewDecoder(resp.Body).Decode(&overview); err != nil {
		return nil, errors.Join(ErrMalformedResponse, err)
	}
	return &overview, nil
}
