package fs

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/refgen"
)

// Ensure PageReader implements refgen.PageReader.
var _ refgen.PageReader = (*PageReader)(nil)

// PageReader reads reference pages from local files.
type PageReader struct{}

// NewPageReader returns a new PageReader.
func NewPageReader() *PageReader {
	return &PageReader{}
}

// ReadPage reads the whole file at path. The file is closed before the
// content is returned.
func (r *PageReader) ReadPage(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", refgen.Errorf(refgen.ENOTFOUND, "input file %s not found", path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
