package mock

import "github.com/fwojciec/refgen"

var _ refgen.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of refgen.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]*refgen.Block, error)
}

func (e *Extractor) Extract(html string) ([]*refgen.Block, error) {
	return e.ExtractFn(html)
}
