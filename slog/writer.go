package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/refgen"
)

// Compile-time interface verification.
var (
	_ refgen.GroupWriter = (*LoggingWriter)(nil)
	_ refgen.StubWriter  = (*LoggingStubWriter)(nil)
)

// LoggingWriter wraps a GroupWriter with logging.
type LoggingWriter struct {
	next   refgen.GroupWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next refgen.GroupWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteFile delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteFile(ctx context.Context, f *refgen.OutputFile) (res *refgen.FileResult, err error) {
	defer func(begin time.Time) {
		w.log(ctx, "write file", f, res, time.Since(begin), err)
	}(time.Now())
	return w.next.WriteFile(ctx, f)
}

// CheckFile delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) CheckFile(ctx context.Context, f *refgen.OutputFile) (res *refgen.FileResult, err error) {
	defer func(begin time.Time) {
		w.log(ctx, "check file", f, res, time.Since(begin), err)
	}(time.Now())
	return w.next.CheckFile(ctx, f)
}

// RemoveFile delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) RemoveFile(ctx context.Context, name string) (err error) {
	defer func(begin time.Time) {
		w.logger.InfoContext(ctx, "remove file",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.RemoveFile(ctx, name)
}

func (w *LoggingWriter) log(ctx context.Context, msg string, f *refgen.OutputFile, res *refgen.FileResult, d time.Duration, err error) {
	var name, status string
	if res != nil {
		name, status = res.Name, string(res.Status)
	}
	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelError
	}
	w.logger.Log(ctx, level, msg,
		"title", f.Title,
		"records", len(f.Records),
		"name", name,
		"status", status,
		"duration", d,
		"err", err,
	)
}

// LoggingStubWriter wraps a StubWriter with logging.
type LoggingStubWriter struct {
	next   refgen.StubWriter
	logger *slog.Logger
}

// NewLoggingStubWriter creates a new LoggingStubWriter.
func NewLoggingStubWriter(next refgen.StubWriter, logger *slog.Logger) *LoggingStubWriter {
	return &LoggingStubWriter{next: next, logger: logger}
}

// WriteStubs delegates to the wrapped writer and logs the operation.
func (w *LoggingStubWriter) WriteStubs(ctx context.Context, stubs []*refgen.Stub) (err error) {
	defer func(begin time.Time) {
		w.logger.InfoContext(ctx, "write stubs",
			"count", len(stubs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteStubs(ctx, stubs)
}
