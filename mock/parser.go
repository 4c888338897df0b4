package mock

import scaladoc "github.com/alopatindev/vim-scaladoc"

var _ scaladoc.IndexParser = (*IndexParser)(nil)

// IndexParser is a mock implementation of scaladoc.IndexParser.
type IndexParser struct {
	ParseFn func(text string) scaladoc.ParseResult
}

func (p *IndexParser) Parse(text string) scaladoc.ParseResult {
	return p.ParseFn(text)
}
