package repository

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// CacheRepository is the byte-level cache used for feed payloads and share
// tokens. Implementations: Redis when configured, an in-process LRU
// otherwise.
type CacheRepository interface {
	// Get returns the cached value for key, or a miss error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under key with a TTL. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)
}
