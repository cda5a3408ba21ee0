package core

import (
	"context"
	"time"
)

// Cache is a read-through cache for derived reporting data.
// Implementations must treat a missing key as (false, nil), not an error.
type Cache interface {
	// Get unmarshals the cached value into dest, reporting whether the key was found
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set stores a value under key with a TTL
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Delete removes keys; missing keys are not an error
	Delete(ctx context.Context, keys ...string) error
}
