package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/refgen"
)

// Selectors describes where a dialect puts the parts of a documentation block.
type Selectors struct {
	// Entry matches one documentation block.
	Entry string `yaml:"entry"`

	// Signature matches the signature element inside a block.
	// Only the first match is used.
	Signature string `yaml:"signature"`

	// Title matches the element inside the signature holding the name.
	// Only the first match is used.
	Title string `yaml:"title"`

	// Permalink matches the navigation anchor inside the signature.
	// Empty disables permalink removal.
	Permalink string `yaml:"permalink"`
}

// CrystalSelectors matches API pages generated by `crystal docs`.
var CrystalSelectors = Selectors{
	Entry:     "div.entry-detail",
	Signature: "div.signature",
	Title:     "strong",
	Permalink: "a.method-permalink",
}

// SphinxSelectors matches Python API pages generated by Sphinx autodoc.
var SphinxSelectors = Selectors{
	Entry:     "dl.py.method, dl.py.function, dl.py.classmethod, dl.py.staticmethod",
	Signature: "dt.sig",
	Title:     "span.sig-name",
	Permalink: "a.headerlink",
}

// Override returns a copy of s with every non-empty field of o applied.
func (s Selectors) Override(o Selectors) Selectors {
	if o.Entry != "" {
		s.Entry = o.Entry
	}
	if o.Signature != "" {
		s.Signature = o.Signature
	}
	if o.Title != "" {
		s.Title = o.Title
	}
	if o.Permalink != "" {
		s.Permalink = o.Permalink
	}
	return s
}

// Matchers holds compiled Selectors.
type Matchers struct {
	Entry     goquery.Matcher
	Signature goquery.Matcher
	Title     goquery.Matcher

	// Permalink is nil when permalink removal is disabled.
	Permalink goquery.Matcher
}

// Compile compiles every selector.
// Returns EINVALID if a required selector is empty or any selector is malformed.
func (s Selectors) Compile() (*Matchers, error) {
	var m Matchers
	var err error

	if m.Entry, err = compile("entry", s.Entry); err != nil {
		return nil, err
	}
	if m.Signature, err = compile("signature", s.Signature); err != nil {
		return nil, err
	}
	if m.Title, err = compile("title", s.Title); err != nil {
		return nil, err
	}
	if s.Permalink != "" {
		if m.Permalink, err = compile("permalink", s.Permalink); err != nil {
			return nil, err
		}
	}

	return &m, nil
}

func compile(name, selector string) (goquery.Matcher, error) {
	if selector == "" {
		return nil, refgen.Errorf(refgen.EINVALID, "%s selector required", name)
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, refgen.Errorf(refgen.EINVALID, "invalid %s selector %q: %v", name, selector, err)
	}
	return sel, nil
}
