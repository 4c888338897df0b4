package mock

import scaladoc "github.com/alopatindev/vim-scaladoc"

var _ scaladoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of scaladoc.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*scaladoc.ExtractResult, error)
}

func (e *Extractor) Extract(html, pageURL string) (*scaladoc.ExtractResult, error) {
	return e.ExtractFn(html, pageURL)
}
