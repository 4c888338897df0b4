package search

import (
	"regexp"
	"strings"

	scaladoc "github.com/alopatindev/vim-scaladoc"
)

// Match classifies how a symbol path matched a query.
type Match int

// Match constants.
const (
	NoMatch Match = iota
	// PrefixMatch means the last path segment starts with the target.
	PrefixMatch
	// ExactMatch means the last path segment is the target, optionally
	// followed by the "$" that marks a companion object page.
	ExactMatch
)

// Matcher holds the compiled patterns for one keyword query.
type Matcher struct {
	exact  *regexp.Regexp
	prefix *regexp.Regexp
}

// NewMatcher compiles the patterns for keywords. Every keyword but the
// last must appear, in order, at the start of some path segment before the
// target segment; keywords are literal and case-insensitive, surrounding
// double quotes are ignored.
func NewMatcher(keywords []string) (*Matcher, error) {
	if len(keywords) == 0 {
		return nil, scaladoc.Errorf(scaladoc.EINVALID, "at least one keyword required")
	}

	// Leading ".*" skips the root package (scala, etc).
	var b strings.Builder
	b.WriteString(`(?i)^.*`)
	for _, kw := range keywords[:len(keywords)-1] {
		b.WriteString("/")
		b.WriteString(normalizeKeyword(kw))
		b.WriteString(".*")
	}
	b.WriteString("/")
	b.WriteString(normalizeKeyword(keywords[len(keywords)-1]))
	head := b.String()

	exact, err := regexp.Compile(head + `[$]?\.html$`)
	if err != nil {
		return nil, err
	}
	prefix, err := regexp.Compile(head + `.*\.html$`)
	if err != nil {
		return nil, err
	}
	return &Matcher{exact: exact, prefix: prefix}, nil
}

// Classify reports how line, a single symbol path, matches the query.
// Exact matches take precedence over prefix matches.
func (m *Matcher) Classify(line string) Match {
	if m.exact.MatchString(line) {
		return ExactMatch
	}
	if m.prefix.MatchString(line) {
		return PrefixMatch
	}
	return NoMatch
}

func normalizeKeyword(kw string) string {
	return regexp.QuoteMeta(strings.ToLower(strings.Trim(kw, `"`)))
}
