package slog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	scaladoc "github.com/alopatindev/vim-scaladoc"
)

// Ensure LoggingSearcher implements scaladoc.Searcher.
var _ scaladoc.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   scaladoc.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next scaladoc.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, req scaladoc.SearchRequest) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"keywords", strings.Join(req.Keywords, " "),
			"file", req.FileName,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, req)
}
