// Package http provides an HTTP-based implementation of refgen.PageReader
// for reference pages served by a static documentation site.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/refgen"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure PageReader implements refgen.PageReader at compile time.
var _ refgen.PageReader = (*PageReader)(nil)

// PageReader retrieves reference pages over HTTP. It does not execute
// JavaScript, which generated API references do not need.
type PageReader struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a PageReader.
type Option func(*PageReader)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(r *PageReader) {
		r.timeout = d
	}
}

// NewPageReader creates a new HTTP-based PageReader.
func NewPageReader(opts ...Option) *PageReader {
	r := &PageReader{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.client = &http.Client{
		Timeout: r.timeout,
	}

	return r
}

// ReadPage retrieves the HTML at url.
func (r *PageReader) ReadPage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", refgen.Errorf(refgen.EINVALID, "invalid page URL %q", url)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", refgen.Errorf(refgen.ENOTFOUND, "page %s not found", url)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
