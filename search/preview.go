package search

import (
	"context"
	"fmt"

	scaladoc "github.com/alopatindev/vim-scaladoc"
)

// Ensure Previewer implements scaladoc.Previewer at compile time.
var _ scaladoc.Previewer = (*Previewer)(nil)

// Previewer renders a documentation page as Markdown.
type Previewer struct {
	Fetcher   scaladoc.Fetcher
	Extractor scaladoc.Extractor
	Converter scaladoc.Converter
}

// Preview fetches the page at url and returns its documentation body as
// Markdown, headed by the entity title when one is found.
func (p *Previewer) Preview(ctx context.Context, url string) (string, error) {
	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	extracted, err := p.Extractor.Extract(html, url)
	if err != nil {
		return "", err
	}

	md, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return "", err
	}

	if extracted.Title == "" {
		return md, nil
	}
	return "# " + extracted.Title + "\n\n" + md, nil
}
