// Package goquery extracts documentation content from Scaladoc HTML pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Generator identifies which Scaladoc tool produced a page.
type Generator string

// Generator constants.
const (
	GeneratorUnknown   Generator = ""
	GeneratorScaladoc2 Generator = "scaladoc2"
	GeneratorScaladoc3 Generator = "scaladoc3"
)

// Detector identifies the Scaladoc generator from page markup.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the generator that produced it.
// Returns GeneratorUnknown if the generator cannot be determined.
func (d *Detector) Detect(html string) Generator {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return GeneratorUnknown
	}
	return d.detect(doc)
}

func (d *Detector) detect(doc *goquery.Document) Generator {
	// Scala 3 pages carry a content wrapper with documentableName headings
	// and a #leftColumn navigation tree.
	if hasSelector(doc, "#leftColumn") ||
		hasSelector(doc, ".cover-header") ||
		hasSelector(doc, ".documentableName") {
		return GeneratorScaladoc3
	}

	// Scaladoc 2 pages have #definition and #template blocks.
	if hasSelector(doc, "#definition") ||
		hasSelector(doc, "#template") ||
		hasSelector(doc, "#content-container") {
		return GeneratorScaladoc2
	}

	return GeneratorUnknown
}

func hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
