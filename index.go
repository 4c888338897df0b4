package scaladoc

import "strings"

// ParseResult is the outcome of parsing a raw index.js document.
// Exactly one of Symbols or Err is meaningful: a nil Err means the
// document was well formed and Symbols holds its sorted, deduplicated
// symbol paths.
type ParseResult struct {
	Symbols []string

	// Err describes why the document was malformed.
	Err error
}

// Malformed reports whether the document could not be parsed.
func (r ParseResult) Malformed() bool {
	return r.Err != nil
}

// Text renders the symbols as cache entry content: one symbol path per
// line, each terminated by a newline. A malformed result renders as an
// empty index.
func (r ParseResult) Text() string {
	if r.Malformed() || len(r.Symbols) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range r.Symbols {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return b.String()
}

// IndexParser flattens a raw Scaladoc index.js document into symbol paths.
type IndexParser interface {
	// Parse never fails past its boundary; malformed input is reported
	// through ParseResult.Err.
	Parse(text string) ParseResult
}
