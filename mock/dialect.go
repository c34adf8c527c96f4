package mock

import "github.com/fwojciec/refgen"

var _ refgen.DialectDetector = (*DialectDetector)(nil)

// DialectDetector is a mock implementation of refgen.DialectDetector.
type DialectDetector struct {
	DetectFn func(html string) refgen.Dialect
}

func (d *DialectDetector) Detect(html string) refgen.Dialect {
	return d.DetectFn(html)
}
