package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer. Keeping it an interface allows
// swapping the Redis implementation for an in-memory one in tests.
type Cache interface {
	// Get fetches data from the cache and unmarshals it into dest.
	// found = false means cache miss and dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
