package repository

import (
	"context"
	"time"
)

// StateStore abstracts ephemeral key-value state, used for refresh token
// revocation. Implementations: Redis (production) or in-memory (local dev).
type StateStore interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get returns nil with no error when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
