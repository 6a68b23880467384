// Package cache stores generated license reports between CLI runs.
//
// Running a build tool to produce a license report is slow, so the CLI can
// keep the resulting package list keyed by everything that influences it:
// the adapter, the project path, the requested options and the content of
// the project's manifest. Adapters never consult the cache themselves.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value stored under key. A missing or expired entry
	// is reported as a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
