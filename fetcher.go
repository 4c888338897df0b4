package scaladoc

import "context"

// Fetcher retrieves raw documents (index.js files and doc pages) by URL.
type Fetcher interface {
	// Fetch returns the body of the document at url.
	// The context controls cancellation.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
