// Package cache stores exported databases between runs.
//
// An export is a pure function of the bundle bytes, the parameter selection
// and the write options, so its encoded output can be reused verbatim. The
// [Keyer] turns those inputs into a stable key and a [Cache] maps keys to
// bytes.
//
// Two implementations are provided: [FileCache] for the CLI, which keeps
// snappy-compressed entries under the user's cache directory, and
// [NullCache], which disables caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// A missing or expired entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Default time-to-live values.
const (
	// TTLExport covers encoded databases. Entries are keyed by content, so
	// they only expire to bound disk usage.
	TTLExport = 7 * 24 * time.Hour

	// TTLRender covers rendered Morse graph images.
	TTLRender = 7 * 24 * time.Hour
)
