package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BBoDDoGood/smartoko-app/core/user"
)

// ContinuitySnapshot is the coarse, non-sensitive state mirrored for UI
// continuity: the cached profile and the logged-in fact. It never carries
// tokens and is stored in plain form; losing or leaking it has no security
// impact.
type ContinuitySnapshot struct {
	Profile  *user.Profile `json:"profile,omitempty"`
	LoggedIn bool          `json:"logged_in"`
	SavedAt  time.Time     `json:"saved_at"`
}

// ContinuityStore persists the continuity snapshot so a crash or restart
// does not require re-fetching profile data before the first paint.
type ContinuityStore interface {
	Save(ctx context.Context, snap ContinuitySnapshot) error
	// Load returns the zero snapshot when nothing has been saved.
	Load(ctx context.Context) (ContinuitySnapshot, error)
	Clear(ctx context.Context) error
}

// FileContinuityStore keeps the snapshot as a plain JSON file.
type FileContinuityStore struct {
	path string
	mu   sync.Mutex
}

// NewFileContinuityStore creates a file-backed continuity store at path.
func NewFileContinuityStore(path string) (*FileContinuityStore, error) {
	if path == "" {
		return nil, ErrMissingPath
	}
	return &FileContinuityStore{path: path}, nil
}

func (f *FileContinuityStore) Save(ctx context.Context, snap ContinuitySnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".continuity-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func (f *FileContinuityStore) Load(ctx context.Context) (ContinuitySnapshot, error) {
	if err := ctx.Err(); err != nil {
		return ContinuitySnapshot{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return ContinuitySnapshot{}, nil
	}
	if err != nil {
		return ContinuitySnapshot{}, err
	}

	var snap ContinuitySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// A corrupt continuity file is not fatal; treat it as absent.
		return ContinuitySnapshot{}, nil
	}
	return snap, nil
}

func (f *FileContinuityStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryContinuityStore is an in-memory continuity store for tests.
type MemoryContinuityStore struct {
	mu   sync.Mutex
	snap ContinuitySnapshot
	set  bool
}

// NewMemoryContinuityStore creates an empty in-memory continuity store.
func NewMemoryContinuityStore() *MemoryContinuityStore {
	return &MemoryContinuityStore{}
}

func (m *MemoryContinuityStore) Save(_ context.Context, snap ContinuitySnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = snap
	m.set = true
	return nil
}

func (m *MemoryContinuityStore) Load(_ context.Context) (ContinuitySnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return ContinuitySnapshot{}, nil
	}
	return m.snap, nil
}

func (m *MemoryContinuityStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = ContinuitySnapshot{}
	m.set = false
	return nil
}
