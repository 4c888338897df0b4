// Package htmltomarkdown renders Scaladoc HTML as Markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	scaladoc "github.com/alopatindev/vim-scaladoc"
)

// Ensure Converter implements scaladoc.Converter at compile time.
var _ scaladoc.Converter = (*Converter)(nil)

// Member lists leave long runs of empty lines behind.
var blankRuns = regexp.MustCompile(`\n{3,}`)

// Converter wraps html-to-markdown to convert Scaladoc HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms documentation HTML into Markdown with at most one
// blank line between blocks.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", scaladoc.Errorf(scaladoc.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(blankRuns.ReplaceAllString(result, "\n\n")), nil
}
