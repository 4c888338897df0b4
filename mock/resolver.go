package mock

import scaladoc "github.com/alopatindev/vim-scaladoc"

var _ scaladoc.DocsResolver = (*DocsResolver)(nil)

// DocsResolver is a mock implementation of scaladoc.DocsResolver.
type DocsResolver struct {
	FindLocalDocsFn func(path string) (string, bool)
}

func (r *DocsResolver) FindLocalDocs(path string) (string, bool) {
	return r.FindLocalDocsFn(path)
}
