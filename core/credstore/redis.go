package credstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis is a redis-backed credential store for headless deployments of the
// client core (kiosks, gateway agents) where no local encrypted file is
// available. All keys are namespaced with a prefix so multiple installations
// can share one database.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis creates a redis-backed store from an existing client.
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

// ConnectRedis dials redis using the configured URL and returns a store.
// Connectivity is verified with a ping so a misconfigured URL fails at
// startup instead of on the first login.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	return NewRedis(client, cfg.Prefix), nil
}

func (r *Redis) Put(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.Join(ErrStoreUnavailable, err)
	}
	return value, nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context, keys ...string) error {
	return clearKeys(ctx, r.Delete, keys)
}
