// Package goquery locates and sanitizes documentation blocks in generated
// HTML reference pages using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/refgen"
	"golang.org/x/net/html"
)

// Locate returns every element matching entry in document order.
// A page without matches yields an empty selection.
func Locate(doc *goquery.Document, entry goquery.Matcher) *goquery.Selection {
	return doc.FindMatcher(entry)
}

// Sanitize extracts the title from a block's signature and strips
// presentation-only markup from the signature in place: the first permalink
// anchor is removed and every remaining link loses its href while keeping
// its text.
// Returns EINVALID if the block has no signature or the signature has no
// non-empty title.
func Sanitize(block *goquery.Selection, m *Matchers) (string, error) {
	sig := block.FindMatcher(m.Signature).First()
	if sig.Length() == 0 {
		return "", refgen.Errorf(refgen.EINVALID, "signature element not found")
	}

	titleSel := sig.FindMatcher(m.Title).First()
	if titleSel.Length() == 0 {
		return "", refgen.Errorf(refgen.EINVALID, "title element not found in signature")
	}
	title := strings.TrimSpace(titleSel.Text())
	if title == "" {
		return "", refgen.Errorf(refgen.EINVALID, "title element is empty")
	}

	if m.Permalink != nil {
		sig.FindMatcher(m.Permalink).First().Remove()
	}
	sig.Find("a").RemoveAttr("href")

	return title, nil
}

var _ refgen.Extractor = (*Extractor)(nil)

// Extractor implements refgen.Extractor. It detects the page dialect to pick
// selectors unless Selectors is set.
type Extractor struct {
	registry *Registry

	// Selectors, when non-nil, is used for every page instead of the
	// detected dialect's selectors.
	Selectors *Selectors
}

// NewExtractor creates a new Extractor using registry for dialect detection.
func NewExtractor(registry *Registry) *Extractor {
	return &Extractor{registry: registry}
}

// Extract parses html and returns the sanitized documentation blocks in
// document order.
func (e *Extractor) Extract(src string) ([]*refgen.Block, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, refgen.Errorf(refgen.EINVALID, "failed to parse HTML: %v", err)
	}

	m, err := e.matchers(doc)
	if err != nil {
		return nil, err
	}

	entries := Locate(doc, m.Entry)
	blocks := make([]*refgen.Block, 0, entries.Length())
	for i := range entries.Nodes {
		entry := entries.Eq(i)

		title, err := Sanitize(entry, m)
		if err != nil {
			return nil, refgen.Errorf(refgen.ErrorCode(err), "block %d: %s", i, refgen.ErrorMessage(err))
		}

		outer, err := renderNode(entry.Nodes[0])
		if err != nil {
			return nil, err
		}

		blocks = append(blocks, &refgen.Block{
			Index: i,
			Title: title,
			HTML:  outer,
		})
	}

	return blocks, nil
}

func (e *Extractor) matchers(doc *goquery.Document) (*Matchers, error) {
	if e.Selectors != nil {
		return e.Selectors.Compile()
	}
	_, s := e.registry.ForDocument(doc)
	return s.Compile()
}

// renderNode returns the outer HTML of n.
func renderNode(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}
