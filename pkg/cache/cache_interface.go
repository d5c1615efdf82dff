package cache

import (
	"context"
	"time"
)

// Cache is the contract for the caching layer. Implementations marshal
// values to JSON; Get reports (found, err) so a miss is distinguishable
// from a transport failure.
type Cache interface {
	// Get reads key into dest. found=false leaves dest untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
