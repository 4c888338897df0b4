package slog_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	scaladoc "github.com/alopatindev/vim-scaladoc"
	"github.com/alopatindev/vim-scaladoc/mock"
	scaladocslog "github.com/alopatindev/vim-scaladoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCacheStore(t *testing.T) {
	t.Parallel()

	t.Run("logs network refresh with source", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CacheStore{
			EnsureFreshFromNetworkFn: func(context.Context, scaladoc.Source, time.Duration) error {
				return nil
			},
		}

		store := scaladocslog.NewLoggingCacheStore(inner, logger)
		err := store.EnsureFreshFromNetwork(context.Background(), scaladoc.NewRemoteSource("https://example.com/api"), time.Hour)

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "cache refresh")
		assert.Contains(t, output, "source=https://example.com/api")
		assert.Contains(t, output, "kind=remote")
	})

	t.Run("logs disk refresh availability and error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CacheStore{
			EnsureFreshFromDiskFn: func(context.Context, scaladoc.Source) (bool, error) {
				return false, errors.New("permission denied")
			},
		}

		store := scaladocslog.NewLoggingCacheStore(inner, logger)
		ok, err := store.EnsureFreshFromDisk(context.Background(), scaladoc.NewLocalSource("/docs/api"))

		require.Error(t, err)
		assert.False(t, ok)
		output := buf.String()
		assert.Contains(t, output, "kind=local")
		assert.Contains(t, output, "available=false")
		assert.Contains(t, output, "err=\"permission denied\"")
	})

	t.Run("logs sweep", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CacheStore{
			SweepStaleFn: func(context.Context, time.Duration) error { return nil },
		}

		store := scaladocslog.NewLoggingCacheStore(inner, logger)
		require.NoError(t, store.SweepStale(context.Background(), time.Hour))

		assert.Contains(t, buf.String(), "cache sweep")
		assert.Contains(t, buf.String(), "ttl=1h0m0s")
	})

	t.Run("delegates init and open", func(t *testing.T) {
		t.Parallel()

		inited := false
		inner := &mock.CacheStore{
			InitFn: func() error {
				inited = true
				return nil
			},
			OpenFn: func(scaladoc.Source) (io.ReadCloser, error) {
				return io.NopCloser(strings.NewReader("a/B.html\n")), nil
			},
		}

		store := scaladocslog.NewLoggingCacheStore(inner, slog.New(slog.DiscardHandler))
		require.NoError(t, store.Init())
		rc, err := store.Open(scaladoc.NewRemoteSource("https://example.com"))
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)

		assert.True(t, inited)
		assert.Equal(t, "a/B.html\n", string(data))
	})
}
