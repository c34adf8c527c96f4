package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/refgen"
)

var _ refgen.DialectDetector = (*Detector)(nil)

// Detector identifies which documentation tool generated a reference page.
// It checks the meta generator tag first and then structural markers that
// are unique to each tool's output.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified dialect.
// Returns DialectUnknown if the dialect cannot be determined.
func (d *Detector) Detect(html string) refgen.Dialect {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return refgen.DialectUnknown
	}
	return d.DetectDocument(doc)
}

// DetectDocument is like Detect for an already parsed document.
func (d *Detector) DetectDocument(doc *goquery.Document) refgen.Dialect {
	// Check meta generator tags first - most reliable when present
	if dialect := d.detectFromMetaGenerator(doc); dialect != refgen.DialectUnknown {
		return dialect
	}

	// Crystal docs: permalinks inside entry details, and the types sidebar
	if d.hasSelector(doc, ".entry-detail .method-permalink") ||
		d.hasSelector(doc, ".sidebar .types-list") {
		return refgen.DialectCrystal
	}

	// Sphinx autodoc: domain-specific description lists
	if d.hasSelector(doc, "dl.py") ||
		d.hasSelector(doc, "dt.sig-object") ||
		d.hasSelector(doc, ".sphinxsidebar") {
		return refgen.DialectSphinx
	}

	return refgen.DialectUnknown
}

// detectFromMetaGenerator checks the meta generator tag for dialect identification.
func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) refgen.Dialect {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})

	switch {
	case generator == "":
		return refgen.DialectUnknown
	case strings.Contains(generator, "crystal"):
		return refgen.DialectCrystal
	case strings.Contains(generator, "sphinx"):
		return refgen.DialectSphinx
	}

	return refgen.DialectUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
