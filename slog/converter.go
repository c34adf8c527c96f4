package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/refgen"
)

// Ensure LoggingConverter implements refgen.Converter.
var _ refgen.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging.
// Successful conversions log at debug level since there is one per block.
type LoggingConverter struct {
	next   refgen.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next refgen.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) Convert(html string) (text string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		c.logger.Log(context.Background(), level, "convert",
			"format", string(c.next.Format()),
			"bytes_in", len(html),
			"bytes_out", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(html)
}

// Format delegates to the wrapped converter.
func (c *LoggingConverter) Format() refgen.Format {
	return c.next.Format()
}
