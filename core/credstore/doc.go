// Package credstore provides the secure credential store: durable, scoped
// key-value persistence for tokens and the cached user profile.
//
// The store is the single durable source of truth for the session across
// process restarts. It deliberately has no read cache; every Get is a fresh
// read, so the persistence bridge and the auth client can never observe
// diverging values.
//
// # Backends
//
//   - File: AES-256-GCM encrypted file, key derived from a compound of
//     application and device keys via HKDF-SHA256. The default for client
//     installations.
//   - Redis: prefix-namespaced keys in redis, for headless deployments.
//   - Memory: mutex-guarded map for tests.
//
// # Usage
//
//	var cfg credstore.FileConfig
//	config.MustLoad(&cfg)
//
//	store, err := credstore.NewFile(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = store.Put(ctx, credstore.KeyAccessToken, token)
//	token, err = store.Get(ctx, credstore.KeyAccessToken) // "" when absent
//	err = store.Clear(ctx, credstore.CredentialKeys()...)
//
// Clear attempts every delete and surfaces the first error after all have
// completed; logout relies on this best-effort semantic.
package credstore
