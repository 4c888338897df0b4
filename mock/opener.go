package mock

import scaladoc "github.com/alopatindev/vim-scaladoc"

var _ scaladoc.Opener = (*Opener)(nil)

// Opener is a mock implementation of scaladoc.Opener.
type Opener struct {
	OpenFn func(url string) error
}

func (o *Opener) Open(url string) error {
	return o.OpenFn(url)
}
