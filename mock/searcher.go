package mock

import (
	"context"

	scaladoc "github.com/alopatindev/vim-scaladoc"
)

var _ scaladoc.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of scaladoc.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, req scaladoc.SearchRequest) ([]string, error)
}

func (s *Searcher) Search(ctx context.Context, req scaladoc.SearchRequest) ([]string, error) {
	return s.SearchFn(ctx, req)
}
