package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/leonardomurakami/murakams-home/internal/domain"
)

// Redis caches values in a Redis instance, letting multiple replicas share
// the last successful upstream response.
// Implements ports.Cache and ports.HealthChecker.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed cache.
func NewRedis(addr string, db int) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		}),
	}
}

// Get retrieves a value. Returns domain.ErrNotFound on a miss.
// Implements ports.Cache.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}

		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}

	return value, nil
}

// Set stores a value with a TTL. A zero TTL means no expiry.
// Implements ports.Cache.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}

	return nil
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Name returns the health check name for the cache.
// Implements ports.HealthChecker.
func (r *Redis) Name() string {
	return "redis"
}

// Check verifies connectivity with a PING.
// Implements ports.HealthChecker.
func (r *Redis) Check(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
