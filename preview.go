package scaladoc

import "context"

// Previewer renders a documentation page for reading in a terminal.
type Previewer interface {
	// Preview returns the page at url as Markdown.
	Preview(ctx context.Context, url string) (string, error)
}
