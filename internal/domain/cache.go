package domain

import (
	"context"
	"time"
)

// CacheError is a sentinel error raised by Cache implementations.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss means the key is absent or expired.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache is the ephemeral key/value store behind question sets and active sessions.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	// GetAndTouch reads key and resets its expiration to ttl.
	// Returns ErrCacheMiss when the key is gone.
	GetAndTouch(ctx context.Context, key string, ttl time.Duration) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error
	// DeleteMatching removes every key matching a glob pattern and reports how many went.
	DeleteMatching(ctx context.Context, pattern string) (int, error)
	Ping(ctx context.Context) error
}
