package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/refgen"
)

// Ensure LoggingPageReader implements refgen.PageReader.
var _ refgen.PageReader = (*LoggingPageReader)(nil)

// LoggingPageReader wraps a PageReader with logging.
type LoggingPageReader struct {
	next   refgen.PageReader
	logger *slog.Logger
}

// NewLoggingPageReader creates a new LoggingPageReader.
func NewLoggingPageReader(next refgen.PageReader, logger *slog.Logger) *LoggingPageReader {
	return &LoggingPageReader{next: next, logger: logger}
}

// ReadPage delegates to the wrapped reader and logs the operation.
func (r *LoggingPageReader) ReadPage(ctx context.Context, location string) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.InfoContext(ctx, "read page",
			"location", location,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadPage(ctx, location)
}
