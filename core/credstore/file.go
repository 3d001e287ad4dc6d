package credstore

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/hkdf"
)

// hkdfInfo binds derived keys to this store so the same key material used
// elsewhere yields a different encryption key.
const hkdfInfo = "smartoko-credstore-v1"

// File is an encrypted file-backed credential store. The whole document is
// a JSON key-value map sealed with AES-256-GCM under a key derived from the
// compound of an application key and a per-device key via HKDF-SHA256.
//
// Writes rewrite the file atomically (temp file + rename) and every Get
// re-reads the file, so there is no in-process cache to diverge from the
// durable truth.
type File struct {
	path string
	aead cipher.AEAD
	mu   sync.Mutex
}

// NewFile creates a file-backed store at cfg.Path. Both keys must be at
// least 32 bytes; only the first 32 bytes of each participate in key
// derivation. The file is created lazily on first Put.
func NewFile(cfg FileConfig) (*File, error) {
	if len(cfg.AppKey) < minKeyLength || len(cfg.DeviceKey) < minKeyLength {
		return nil, ErrKeyTooShort
	}
	if cfg.Path == "" {
		return nil, fmt.Errorf("%w: empty file path", ErrStoreUnavailable)
	}

	key, err := deriveKey([]byte(cfg.AppKey[:minKeyLength]), []byte(cfg.DeviceKey[:minKeyLength]))
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &File{path: cfg.Path, aead: aead}, nil
}

// deriveKey combines the application and device keys into a single 32-byte
// AES-256 key using HKDF-SHA256 with the device key as salt.
func deriveKey(appKey, deviceKey []byte) ([]byte, error) {
	key := make([]byte, 32)
	r := hkdf.New(sha256.New, appKey, deviceKey, []byte(hkdfInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}

func (f *File) Put(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	doc[key] = value
	return f.save(doc)
}

func (f *File) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return "", err
	}
	return doc[key], nil
}

func (f *File) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := doc[key]; !ok {
		return nil
	}
	delete(doc, key)
	return f.save(doc)
}

func (f *File) Clear(ctx context.Context, keys ...string) error {
	return clearKeys(ctx, f.Delete, keys)
}

// load reads and decrypts the whole document. A missing file is an empty
// document, not an error.
func (f *File) load() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	if len(raw) == 0 {
		return make(map[string]string), nil
	}

	if len(raw) < f.aead.NonceSize() {
		return nil, ErrDecryptionFailed
	}
	nonce, sealed := raw[:f.aead.NonceSize()], raw[f.aead.NonceSize():]

	plain, err := f.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}

	doc := make(map[string]string)
	if err := json.Unmarshal(plain, &doc); err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	return doc, nil
}

// save encrypts and atomically replaces the document file.
func (f *File) save(doc map[string]string) error {
	plain, err := json.Marshal(doc)
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	nonce := make([]byte, f.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	sealed := f.aead.Seal(nonce, nonce, plain, nil)

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".credstore-*")
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(sealed); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Join(ErrStoreUnavailable, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Join(ErrStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrStoreUnavailable, err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
