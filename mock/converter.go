package mock

import scaladoc "github.com/alopatindev/vim-scaladoc"

var _ scaladoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of scaladoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
