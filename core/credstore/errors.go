package credstore

import "errors"

var (
	// ErrStoreUnavailable indicates the encrypted backing store cannot be
	// read or written, e.g. the credential file is inaccessible.
	ErrStoreUnavailable = errors.New("credstore: backing store unavailable")

	// ErrDecryptionFailed indicates the stored document could not be
	// decrypted, due to corruption, tampering, or a wrong key pair.
	ErrDecryptionFailed = errors.New("credstore: failed to decrypt stored data")

	// ErrEmptyKey is returned when an operation is given an empty key name.
	ErrEmptyKey = errors.New("credstore: empty key")

	// ErrKeyTooShort is returned when an encryption key is shorter than the
	// 32 bytes required for AES-256.
	ErrKeyTooShort = errors.New("credstore: encryption key must be at least 32 bytes")
)
