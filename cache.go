package scaladoc

import (
	"context"
	"io"
	"time"
)

// DefaultCacheTTL is the default freshness window for cache entries.
const DefaultCacheTTL = 15 * 24 * time.Hour

// CacheStore persists one flattened symbol index per Source.
type CacheStore interface {
	// Init creates the cache directory if it does not exist.
	Init() error

	// SweepStale removes every cache entry older than ttl, whether or not
	// it belongs to a configured source.
	SweepStale(ctx context.Context, ttl time.Duration) error

	// EnsureFreshFromNetwork rebuilds the entry for a remote source when it
	// is missing or older than ttl. Fetch errors are returned unchanged.
	EnsureFreshFromNetwork(ctx context.Context, src Source, ttl time.Duration) error

	// EnsureFreshFromDisk rebuilds the entry for a local source when the
	// source directory is newer than the entry. It reports false, after
	// removing any stale entry, when the source has no index file.
	EnsureFreshFromDisk(ctx context.Context, src Source) (bool, error)

	// Open returns a reader over the entry for src.
	// Returns ENOTFOUND if no entry exists.
	Open(src Source) (io.ReadCloser, error)
}
