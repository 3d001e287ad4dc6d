package credstore

import "context"

// Bundle is the durable credential unit persisted across restarts. Fields
// are independently optional; partial bundles (e.g. access token only) are
// valid.
type Bundle struct {
	AccessToken  string
	SessionToken string
	SessionID    string

	// ProfileJSON is the JSON-serialized user profile cached at login.
	ProfileJSON string
}

// Empty reports whether the bundle carries no usable credentials. A bundle
// with neither an access token nor a session token must be treated as
// logged out regardless of the other fields.
func (b Bundle) Empty() bool {
	return b.AccessToken == "" && b.SessionToken == ""
}

// ReadBundle loads the full credential bundle from the store. Each field is
// a fresh read; missing keys simply yield empty fields.
func ReadBundle(ctx context.Context, s Store) (Bundle, error) {
	var b Bundle
	var err error

	if b.AccessToken, err = s.Get(ctx, KeyAccessToken); err != nil {
		return Bundle{}, err
	}
	if b.SessionToken, err = s.Get(ctx, KeySessionToken); err != nil {
		return Bundle{}, err
	}
	if b.SessionID, err = s.Get(ctx, KeySessionID); err != nil {
		return Bundle{}, err
	}
	if b.ProfileJSON, err = s.Get(ctx, KeyUserData); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

// WriteBundle persists every present field of the bundle sequentially.
// Absent fields are skipped, not deleted; use Clear for teardown.
func WriteBundle(ctx context.Context, s Store, b Bundle) error {
	entries := []struct {
		key   string
		value string
	}{
		{KeyAccessToken, b.AccessToken},
		{KeySessionToken, b.SessionToken},
		{KeySessionID, b.SessionID},
		{KeyUserData, b.ProfileJSON},
	}
	for _, e := range entries {
		if e.value == "" {
			continue
		}
		if err := s.Put(ctx, e.key, e.value); err != nil {
			return err
		}
	}
	return nil
}
