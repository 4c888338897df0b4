package scaladoc

// ExtractResult holds the extracted content from a documentation page.
type ExtractResult struct {
	// Title is the entity name shown in the page header.
	Title string

	// ContentHTML is the documentation body as HTML, without the
	// navigation frame.
	ContentHTML string
}

// Extractor extracts the documentation body from a Scaladoc page.
type Extractor interface {
	// Extract returns the title and body of the page fetched from pageURL.
	// Relative links in the body are resolved against pageURL.
	Extract(html, pageURL string) (*ExtractResult, error)
}
