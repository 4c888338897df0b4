// Package json implements scaladoc.IndexParser for the Scaladoc index.js
// format, which wraps a JSON object literal in a JavaScript assignment.
package json

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"

	scaladoc "github.com/alopatindev/vim-scaladoc"
)

// Ensure Parser implements scaladoc.IndexParser at compile time.
var _ scaladoc.IndexParser = (*Parser)(nil)

var indexPattern = regexp.MustCompile(`(?s)^Index\.PACKAGES\s*=\s*(\{.*\});\s*$`)

// entityKinds are the keys whose string values are symbol paths.
var entityKinds = map[string]bool{
	"object":     true,
	"trait":      true,
	"class":      true,
	"case class": true,
}

// Parser flattens index.js documents into sorted symbol paths.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts the Index.PACKAGES object and collects every entity path
// in it. Malformed documents yield a result with Err set.
func (p *Parser) Parse(text string) scaladoc.ParseResult {
	m := indexPattern.FindStringSubmatch(text)
	if m == nil {
		return scaladoc.ParseResult{Err: scaladoc.Errorf(scaladoc.EINVALID, "index does not match Index.PACKAGES = {...};")}
	}

	var tree any
	if err := json.Unmarshal([]byte(m[1]), &tree); err != nil {
		return scaladoc.ParseResult{Err: fmt.Errorf("failed to decode index: %w", err)}
	}

	set := make(map[string]struct{})
	collect(tree, set)

	symbols := make([]string, 0, len(set))
	for s := range set {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	return scaladoc.ParseResult{Symbols: symbols}
}

// collect walks a decoded JSON value. Objects contribute the values of
// entity-kind keys; arrays anywhere in an object are descended into.
func collect(node any, out map[string]struct{}) {
	switch n := node.(type) {
	case map[string]any:
		for key, value := range n {
			if entityKinds[key] {
				if s, ok := value.(string); ok {
					out[s] = struct{}{}
				}
				continue
			}
			if children, ok := value.([]any); ok {
				for _, child := range children {
					collect(child, out)
				}
			}
		}
	case []any:
		for _, child := range n {
			collect(child, out)
		}
	}
}
