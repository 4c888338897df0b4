package scaladoc

import (
	"context"
	"time"
)

// SearchRequest describes one keyword lookup.
type SearchRequest struct {
	// FileName is the file the lookup was invoked from. It is used to
	// discover project-local docs and need not exist.
	FileName string

	// Keywords are package fragments followed by the target name.
	Keywords []string

	// Paths are local API directories to search in addition to the
	// discovered one.
	Paths []string

	// URLs are remote Scaladoc roots to search.
	URLs []string

	// TTL is the freshness window for cache entries.
	// Defaults to DefaultCacheTTL when zero.
	TTL time.Duration
}

// Validate returns an error if the request cannot be searched.
func (r *SearchRequest) Validate() error {
	if len(r.Keywords) == 0 {
		return Errorf(EINVALID, "at least one keyword required")
	}
	return nil
}

// Searcher resolves keywords to documentation URLs.
type Searcher interface {
	// Search returns exact matches on the last keyword if there are any,
	// and matches that merely start with it otherwise.
	Search(ctx context.Context, req SearchRequest) ([]string, error)
}
