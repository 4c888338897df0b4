package mock

import (
	"context"
	"io"
	"time"

	scaladoc "github.com/alopatindev/vim-scaladoc"
)

var _ scaladoc.CacheStore = (*CacheStore)(nil)

// CacheStore is a mock implementation of scaladoc.CacheStore.
type CacheStore struct {
	InitFn                   func() error
	SweepStaleFn             func(ctx context.Context, ttl time.Duration) error
	EnsureFreshFromNetworkFn func(ctx context.Context, src scaladoc.Source, ttl time.Duration) error
	EnsureFreshFromDiskFn    func(ctx context.Context, src scaladoc.Source) (bool, error)
	OpenFn                   func(src scaladoc.Source) (io.ReadCloser, error)
}

func (s *CacheStore) Init() error {
	return s.InitFn()
}

func (s *CacheStore) SweepStale(ctx context.Context, ttl time.Duration) error {
	return s.SweepStaleFn(ctx, ttl)
}

func (s *CacheStore) EnsureFreshFromNetwork(ctx context.Context, src scaladoc.Source, ttl time.Duration) error {
	return s.EnsureFreshFromNetworkFn(ctx, src, ttl)
}

func (s *CacheStore) EnsureFreshFromDisk(ctx context.Context, src scaladoc.Source) (bool, error) {
	return s.EnsureFreshFromDiskFn(ctx, src)
}

func (s *CacheStore) Open(src scaladoc.Source) (io.ReadCloser, error) {
	return s.OpenFn(src)
}
