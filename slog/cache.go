package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	scaladoc "github.com/alopatindev/vim-scaladoc"
)

// Ensure LoggingCacheStore implements scaladoc.CacheStore.
var _ scaladoc.CacheStore = (*LoggingCacheStore)(nil)

// LoggingCacheStore wraps a CacheStore with debug logging.
type LoggingCacheStore struct {
	next   scaladoc.CacheStore
	logger *slog.Logger
}

// NewLoggingCacheStore creates a new LoggingCacheStore.
func NewLoggingCacheStore(next scaladoc.CacheStore, logger *slog.Logger) *LoggingCacheStore {
	return &LoggingCacheStore{next: next, logger: logger}
}

// Init delegates to the wrapped store.
func (s *LoggingCacheStore) Init() error {
	return s.next.Init()
}

// SweepStale delegates to the wrapped store and logs the operation.
func (s *LoggingCacheStore) SweepStale(ctx context.Context, ttl time.Duration) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache sweep",
			"ttl", ttl,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SweepStale(ctx, ttl)
}

// EnsureFreshFromNetwork delegates to the wrapped store and logs the operation.
func (s *LoggingCacheStore) EnsureFreshFromNetwork(ctx context.Context, src scaladoc.Source, ttl time.Duration) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache refresh",
			"source", src.Identity,
			"kind", src.Kind,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.EnsureFreshFromNetwork(ctx, src, ttl)
}

// EnsureFreshFromDisk delegates to the wrapped store and logs the operation.
func (s *LoggingCacheStore) EnsureFreshFromDisk(ctx context.Context, src scaladoc.Source) (ok bool, err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache refresh",
			"source", src.Identity,
			"kind", src.Kind,
			"available", ok,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.EnsureFreshFromDisk(ctx, src)
}

// Open delegates to the wrapped store.
func (s *LoggingCacheStore) Open(src scaladoc.Source) (io.ReadCloser, error) {
	return s.next.Open(src)
}
