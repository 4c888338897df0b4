// Package search implements keyword lookup across cached Scaladoc indexes.
package search

import (
	"bufio"
	"context"
	"fmt"

	scaladoc "github.com/alopatindev/vim-scaladoc"
)

// Ensure Searcher implements scaladoc.Searcher at compile time.
var _ scaladoc.Searcher = (*Searcher)(nil)

// Searcher refreshes the cache entries of every applicable source and
// matches keywords against them.
type Searcher struct {
	Cache    scaladoc.CacheStore
	Resolver scaladoc.DocsResolver
}

// Search resolves req.Keywords to documentation URLs. Remote sources are
// refreshed first, then local ones, including docs discovered for
// req.FileName. A failed fetch aborts the whole search.
func (s *Searcher) Search(ctx context.Context, req scaladoc.SearchRequest) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	matcher, err := NewMatcher(req.Keywords)
	if err != nil {
		return nil, err
	}

	ttl := req.TTL
	if ttl <= 0 {
		ttl = scaladoc.DefaultCacheTTL
	}

	if err := s.Cache.Init(); err != nil {
		return nil, err
	}
	if err := s.Cache.SweepStale(ctx, ttl); err != nil {
		return nil, fmt.Errorf("failed to sweep cache: %w", err)
	}

	var active sourceSet
	for _, u := range req.URLs {
		src := scaladoc.NewRemoteSource(u)
		if err := src.Validate(); err != nil {
			return nil, err
		}
		if err := s.Cache.EnsureFreshFromNetwork(ctx, src, ttl); err != nil {
			return nil, err
		}
		active.add(src)
	}

	for _, p := range s.localPaths(req) {
		src := scaladoc.NewLocalSource(p)
		if err := src.Validate(); err != nil {
			return nil, err
		}
		ok, err := s.Cache.EnsureFreshFromDisk(ctx, src)
		if err != nil {
			return nil, err
		}
		if ok {
			active.add(src)
		}
	}

	var exact, prefix []string
	for _, src := range active.sources {
		if err := s.scan(src, matcher, &exact, &prefix); err != nil {
			return nil, err
		}
	}

	if len(exact) > 0 {
		return exact, nil
	}
	return prefix, nil
}

// localPaths returns the explicit paths plus the docs discovered for the
// request's file, without modifying req.
func (s *Searcher) localPaths(req scaladoc.SearchRequest) []string {
	paths := append([]string(nil), req.Paths...)
	if s.Resolver == nil {
		return paths
	}
	api, ok := s.Resolver.FindLocalDocs(req.FileName)
	if !ok {
		return paths
	}
	for _, p := range paths {
		if p == api {
			return paths
		}
	}
	return append(paths, api)
}

func (s *Searcher) scan(src scaladoc.Source, m *Matcher, exact, prefix *[]string) error {
	rc, err := s.Cache.Open(src)
	if err != nil {
		return err
	}
	defer rc.Close()

	base := src.URLPrefix()
	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		switch m.Classify(line) {
		case ExactMatch:
			*exact = append(*exact, base+"/"+line)
		case PrefixMatch:
			*prefix = append(*prefix, base+"/"+line)
		}
	}
	return scanner.Err()
}

// sourceSet keeps sources in registration order. Registering an identity
// again replaces the earlier source in place.
type sourceSet struct {
	sources []scaladoc.Source
	index   map[string]int
}

func (s *sourceSet) add(src scaladoc.Source) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[src.Identity]; ok {
		s.sources[i] = src
		return
	}
	s.index[src.Identity] = len(s.sources)
	s.sources = append(s.sources, src)
}
