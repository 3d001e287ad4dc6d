package credstore

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Logical storage keys for the durable credential bundle.
const (
	KeyAccessToken  = "access_token"
	KeySessionToken = "session_token"
	KeySessionID    = "session_id"
	KeyUserData     = "user_data"
)

// CredentialKeys returns all keys that make up a persisted credential bundle,
// in write order.
func CredentialKeys() []string {
	return []string{KeyAccessToken, KeySessionToken, KeySessionID, KeyUserData}
}

// Store is scoped key-value storage for credentials. Implementations must
// guarantee durability across process restarts (except Memory) and must not
// cache reads: every Get is a fresh read so the store never diverges from
// what the persistence bridge will see after a restart.
type Store interface {
	// Put writes a value, overwriting silently. Returns ErrStoreUnavailable
	// when the backing store cannot be reached.
	Put(ctx context.Context, key, value string) error

	// Get returns the stored value, or ("", nil) when the key was never set
	// or has been deleted. Absence is not an error.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes a key. Deleting an absent key is a no-op success.
	Delete(ctx context.Context, key string) error

	// Clear deletes a batch of keys. All deletes are attempted even when
	// some fail; the first error encountered is returned after every delete
	// has completed. Best-effort cleanup, not a transaction.
	Clear(ctx context.Context, keys ...string) error
}

// clearKeys implements the shared Clear contract: attempt every delete
// concurrently, await all, surface the first error.
func clearKeys(ctx context.Context, del func(context.Context, string) error, keys []string) error {
	var g errgroup.Group
	for _, key := range keys {
		key := key
		g.Go(func() error {
			return del(ctx, key)
		})
	}
	return g.Wait()
}
