package goquery

import (
	"slices"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/refgen"
)

// Registry manages dialect-specific selectors and auto-detects the dialect
// of a page. It falls back to a default profile when the dialect is unknown
// or no profile is registered for the detected dialect.
type Registry struct {
	detector *Detector
	fallback Selectors
	profiles map[refgen.Dialect]Selectors
}

// NewRegistry creates a new Registry with the given detector and fallback selectors.
func NewRegistry(detector *Detector, fallback Selectors) *Registry {
	return &Registry{
		detector: detector,
		fallback: fallback,
		profiles: make(map[refgen.Dialect]Selectors),
	}
}

// NewDefaultRegistry returns a registry with every built-in dialect
// registered and Crystal as the fallback.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewDetector(), CrystalSelectors)
	r.Register(refgen.DialectCrystal, CrystalSelectors)
	r.Register(refgen.DialectSphinx, SphinxSelectors)
	return r
}

// Get returns the selectors for a dialect and whether they are registered.
func (r *Registry) Get(dialect refgen.Dialect) (Selectors, bool) {
	s, ok := r.profiles[dialect]
	return s, ok
}

// ForDocument detects the dialect of doc and returns it with its selectors.
func (r *Registry) ForDocument(doc *goquery.Document) (refgen.Dialect, Selectors) {
	dialect := r.detector.DetectDocument(doc)
	if s, ok := r.profiles[dialect]; ok {
		return dialect, s
	}
	return dialect, r.fallback
}

// Register adds selectors for a dialect.
// If selectors are already registered for the dialect, they are replaced.
func (r *Registry) Register(dialect refgen.Dialect, s Selectors) {
	r.profiles[dialect] = s
}

// List returns all registered dialects in sorted order.
func (r *Registry) List() []refgen.Dialect {
	dialects := make([]refgen.Dialect, 0, len(r.profiles))
	for d := range r.profiles {
		dialects = append(dialects, d)
	}
	slices.Sort(dialects)
	return dialects
}
