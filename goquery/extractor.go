package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	scaladoc "github.com/alopatindev/vim-scaladoc"
)

// Ensure Extractor implements scaladoc.Extractor at compile time.
var _ scaladoc.Extractor = (*Extractor)(nil)

// pageSelectors lists, in priority order, where to find the entity title
// and documentation body for each generator.
type pageSelectors struct {
	title   []string
	content []string
}

var selectorsByGenerator = map[Generator]pageSelectors{
	GeneratorScaladoc2: {
		title:   []string{"#definition h1", "h1"},
		content: []string{"#content-container", "#template", "#comment", "body"},
	},
	GeneratorScaladoc3: {
		title:   []string{".cover-header h1", "h1.h200", "h1"},
		content: []string{"#content .main-content", "#content", "main", "body"},
	},
	GeneratorUnknown: {
		title:   []string{"h1", "title"},
		content: []string{"main", "article", "body"},
	},
}

// noise is removed from the body before it is returned.
const noise = "script, style, noscript, nav, #leftColumn, #search, .fullcomment .toggle"

// Extractor pulls the documentation body out of a Scaladoc page, dropping
// scripts and the navigation frame.
type Extractor struct {
	detector *Detector
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{detector: NewDetector()}
}

// Extract returns the page title and documentation body. Relative href and
// src attributes are rewritten to absolute URLs based on pageURL.
func (e *Extractor) Extract(html, pageURL string) (*scaladoc.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, scaladoc.Errorf(scaladoc.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scaladoc.Errorf(scaladoc.EINVALID, "failed to parse HTML: %v", err)
	}

	sel := selectorsByGenerator[e.detector.detect(doc)]
	doc.Find(noise).Remove()

	if pageURL != "" {
		base, err := url.Parse(pageURL)
		if err != nil {
			return nil, scaladoc.Errorf(scaladoc.EINVALID, "invalid page URL: %v", err)
		}
		resolveLinks(doc, base)
	}

	result := &scaladoc.ExtractResult{
		Title: firstText(doc, sel.title),
	}
	for _, s := range sel.content {
		node := doc.Find(s).First()
		if node.Length() == 0 {
			continue
		}
		content, err := node.Html()
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(content) != "" {
			result.ContentHTML = content
			break
		}
	}

	if result.ContentHTML == "" {
		return nil, scaladoc.Errorf(scaladoc.ENOTFOUND, "no documentation content found")
	}
	return result, nil
}

func firstText(doc *goquery.Document, selectors []string) string {
	for _, s := range selectors {
		if text := strings.TrimSpace(doc.Find(s).First().Text()); text != "" {
			return strings.Join(strings.Fields(text), " ")
		}
	}
	return ""
}

// resolveLinks makes every relative link and image source absolute.
// Fragment-only and non-HTTP links are left alone.
func resolveLinks(doc *goquery.Document, base *url.URL) {
	for _, attr := range []string{"href", "src"} {
		doc.Find("[" + attr + "]").Each(func(_ int, s *goquery.Selection) {
			v, _ := s.Attr(attr)
			if v == "" || strings.HasPrefix(v, "#") || isNonHTTPLink(v) {
				return
			}
			ref, err := url.Parse(v)
			if err != nil || ref.IsAbs() {
				return
			}
			s.SetAttr(attr, base.ResolveReference(ref).String())
		})
	}
}

func isNonHTTPLink(href string) bool {
	lower := strings.ToLower(href)
	return strings.HasPrefix(lower, "javascript:") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "tel:") ||
		strings.HasPrefix(lower, "data:")
}
