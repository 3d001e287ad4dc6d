// Package user defines the user profile model shared across the
// authentication subsystem.
//
// Profile mirrors the backend's user record wire format. It is produced by
// the auth client on successful login, persisted as the user_data entry of
// the credential store, and rehydrated by the persistence bridge at process
// start. All other packages treat it as read-only.
package user
