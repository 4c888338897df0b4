package main

import (
	"fmt"
	"time"

	scaladoc "github.com/alopatindev/vim-scaladoc"
)

// SearchCmd looks up keywords and prints the matching URLs.
type SearchCmd struct {
	File     string
	Keywords []string
	URLs     []string
	Paths    []string
	TTL      time.Duration
	Open     bool
	Preview  bool
}

// Run executes the search and reports results on deps.Stdout.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if len(c.Keywords) == 0 {
		return scaladoc.Errorf(scaladoc.EINVALID, "no keywords provided")
	}

	urls, err := deps.Searcher.Search(deps.Ctx, scaladoc.SearchRequest{
		FileName: c.File,
		Keywords: c.Keywords,
		Paths:    c.Paths,
		URLs:     c.URLs,
		TTL:      c.TTL,
	})
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return scaladoc.Errorf(scaladoc.ENOTFOUND, "no documentation found")
	}

	if c.Open && deps.Opener != nil {
		if err := deps.Opener.Open(urls[0]); err != nil && deps.Logger != nil {
			deps.Logger.Warn("open failed", "url", urls[0], "err", err)
		}
	}

	if c.Preview {
		if deps.Previewer == nil {
			return scaladoc.Errorf(scaladoc.EINTERNAL, "preview not configured")
		}
		md, err := deps.Previewer.Preview(deps.Ctx, urls[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}
