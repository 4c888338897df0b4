// Package fs provides file-based implementations of the scaladoc cache
// store and local documentation discovery.
package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	scaladoc "github.com/alopatindev/vim-scaladoc"
	"github.com/cespare/xxhash/v2"
)

// Ensure CacheStore implements scaladoc.CacheStore at compile time.
var _ scaladoc.CacheStore = (*CacheStore)(nil)

// CacheKey returns the cache entry file name for a source identity.
func CacheKey(identity string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(identity))
}

// CacheStore keeps one flattened index per source as a flat file named by
// CacheKey inside a single directory. Entries are replaced by rename so a
// reader never observes a partially written entry.
type CacheStore struct {
	dir     string
	fetcher scaladoc.Fetcher
	parser  scaladoc.IndexParser
	logger  *slog.Logger
	now     func() time.Time
}

// CacheOption configures a CacheStore.
type CacheOption func(*CacheStore)

// WithLogger sets the logger used to report malformed indexes.
func WithLogger(logger *slog.Logger) CacheOption {
	return func(s *CacheStore) {
		s.logger = logger
	}
}

// WithClock overrides the time source used for TTL checks.
func WithClock(now func() time.Time) CacheOption {
	return func(s *CacheStore) {
		s.now = now
	}
}

// NewCacheStore creates a CacheStore rooted at dir. The fetcher downloads
// remote indexes; the parser flattens raw indexes into entries.
func NewCacheStore(dir string, fetcher scaladoc.Fetcher, parser scaladoc.IndexParser, opts ...CacheOption) *CacheStore {
	s := &CacheStore{
		dir:     dir,
		fetcher: fetcher,
		parser:  parser,
		logger:  slog.New(slog.DiscardHandler),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EntryPath returns the file that holds the cache entry for src.
func (s *CacheStore) EntryPath(src scaladoc.Source) string {
	return filepath.Join(s.dir, CacheKey(src.Identity))
}

// Init creates the cache directory and any missing parents.
func (s *CacheStore) Init() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory %q: %w", s.dir, err)
	}
	return nil
}

// SweepStale removes all entries whose modification time is before now-ttl.
func (s *CacheStore) SweepStale(ctx context.Context, ttl time.Duration) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}

	cutoff := s.now().Add(-ttl)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if os.IsNotExist(err) {
			continue
		} else if err != nil {
			return err
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil && !os.IsNotExist(err) {
				return err
			}
		}
	}
	return nil
}

// EnsureFreshFromNetwork refreshes the entry for a remote source if it is
// missing or older than ttl.
func (s *CacheStore) EnsureFreshFromNetwork(ctx context.Context, src scaladoc.Source, ttl time.Duration) error {
	info, err := os.Stat(s.EntryPath(src))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if err == nil && !info.ModTime().Before(s.now().Add(-ttl)) {
		return nil
	}

	raw, err := s.fetcher.Fetch(ctx, src.IndexLocation())
	if err != nil {
		return fmt.Errorf("failed to fetch index for %s: %w", src.Identity, err)
	}
	return s.write(src, raw)
}

// EnsureFreshFromDisk refreshes the entry for a local source if the source
// directory was modified after the entry was written. It returns false and
// drops the entry when the source's index file cannot be stat'ed, whether
// it is missing or the root is unreadable or not a directory.
func (s *CacheStore) EnsureFreshFromDisk(ctx context.Context, src scaladoc.Source) (bool, error) {
	path := s.EntryPath(src)
	index := src.IndexLocation()

	if _, err := os.Stat(index); err != nil {
		s.logger.Debug("local docs unavailable", "source", src.Identity, "err", err)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return false, err
		}
		return false, nil
	}

	entry, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	if err == nil {
		root, err := os.Stat(src.Identity)
		if err != nil {
			return false, err
		}
		if !entry.ModTime().Before(root.ModTime()) {
			return true, nil
		}
	}

	raw, err := os.ReadFile(index)
	if err != nil {
		return false, err
	}
	if err := s.write(src, string(raw)); err != nil {
		return false, err
	}
	return true, nil
}

// Open returns a reader over the entry for src.
func (s *CacheStore) Open(src scaladoc.Source) (io.ReadCloser, error) {
	f, err := os.Open(s.EntryPath(src))
	if os.IsNotExist(err) {
		return nil, scaladoc.Errorf(scaladoc.ENOTFOUND, "no cache entry for %s", src.Identity)
	} else if err != nil {
		return nil, err
	}
	return f, nil
}

// write parses raw and replaces the entry for src. A malformed index is
// logged and stored as an empty entry.
func (s *CacheStore) write(src scaladoc.Source, raw string) error {
	result := s.parser.Parse(raw)
	if result.Malformed() {
		s.logger.Warn("malformed index",
			"source", src.Identity,
			"err", result.Err,
		)
	}

	path := s.EntryPath(src)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(result.Text()), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
