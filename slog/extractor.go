// Package slog provides logging decorators for refgen services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/refgen"
)

// Ensure LoggingExtractor implements refgen.Extractor.
var _ refgen.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of dialect detection and block counts.
// The detector is optional.
type LoggingExtractor struct {
	next     refgen.Extractor
	detector refgen.DialectDetector
	logger   *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next refgen.Extractor, detector refgen.DialectDetector, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, detector: detector, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (blocks []*refgen.Block, err error) {
	attrs := []any{"bytes", len(html)}
	if e.detector != nil {
		dialect := string(e.detector.Detect(html))
		if dialect == "" {
			dialect = "(unknown)"
		}
		attrs = append(attrs, "dialect", dialect)
	}
	defer func(begin time.Time) {
		e.logger.Info("extract",
			append(attrs,
				"blocks", len(blocks),
				"duration", time.Since(begin),
				"err", err,
			)...,
		)
	}(time.Now())
	return e.next.Extract(html)
}
