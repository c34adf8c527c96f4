package mock

import (
	"context"

	"github.com/fwojciec/refgen"
)

var _ refgen.PageReader = (*PageReader)(nil)

// PageReader is a mock implementation of refgen.PageReader.
type PageReader struct {
	ReadPageFn func(ctx context.Context, location string) (string, error)
}

func (r *PageReader) ReadPage(ctx context.Context, location string) (string, error) {
	return r.ReadPageFn(ctx, location)
}
