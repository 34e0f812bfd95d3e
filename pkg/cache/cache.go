// Package cache stores rendered artifacts so that re-rendering an unchanged
// tree with unchanged options is a lookup.
//
// Keys come from a [Keyer]: the artifact key combines the hash of the
// laid-out tree (labels, sizes and positions) with every option that
// changes the output bytes. Any edit, resize or layout setting therefore
// produces a new key, and stale entries simply age out.
//
// Two backends exist: [FileCache] for the CLI (under the XDG cache
// directory) and [NullCache] when caching is disabled.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay valid.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend.
	Close() error
}
