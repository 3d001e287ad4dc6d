package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)

	// dotenvOnce guards the one-time .env bootstrap. Missing files are fine;
	// explicit environment variables always win over .env contents.
	dotenvOnce sync.Once
)

// Load parses environment variables into cfg. Each configuration type is
// loaded once per process; subsequent calls for the same type return the
// cached value, so independent callers observe identical configuration.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	mu.Lock()
	defer mu.Unlock()

	t := reflect.TypeOf(*cfg)
	if cached, ok := cache[t]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	cache[t] = *cfg
	return nil
}

// MustLoad is like Load but panics on failure. Intended for application
// startup where a missing required variable should halt the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Reset clears the configuration cache. Only for tests that need to reload
// the same type with different environment values.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cache = make(map[reflect.Type]any)
}
