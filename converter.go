package scaladoc

// Converter converts documentation HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be the documentation body from an Extractor.
	Convert(html string) (string, error)
}
