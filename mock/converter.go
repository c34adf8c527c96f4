package mock

import "github.com/fwojciec/refgen"

var _ refgen.Converter = (*Converter)(nil)

// Converter is a mock implementation of refgen.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
	FormatFn  func() refgen.Format
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

func (c *Converter) Format() refgen.Format {
	return c.FormatFn()
}
