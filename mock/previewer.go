package mock

import (
	"context"

	scaladoc "github.com/alopatindev/vim-scaladoc"
)

var _ scaladoc.Previewer = (*Previewer)(nil)

// Previewer is a mock implementation of scaladoc.Previewer.
type Previewer struct {
	PreviewFn func(ctx context.Context, url string) (string, error)
}

func (p *Previewer) Preview(ctx context.Context, url string) (string, error) {
	return p.PreviewFn(ctx, url)
}
