package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/refgen"
)

// Ensure LoggingRunService implements refgen.RunService.
var _ refgen.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with logging.
type LoggingRunService struct {
	next   refgen.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next refgen.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *refgen.Run) (err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "create run",
			"id", run.ID,
			"output", run.OutputDir,
			"files", len(run.Files),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run)
}

// FindLatestRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) FindLatestRun(ctx context.Context, outputDir string) (run *refgen.Run, err error) {
	defer func(begin time.Time) {
		var id string
		if run != nil {
			id = run.ID
		}
		s.logger.DebugContext(ctx, "find latest run",
			"output", outputDir,
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindLatestRun(ctx, outputDir)
}

// FindRuns delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) FindRuns(ctx context.Context, filter refgen.RunFilter) (runs []*refgen.Run, err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "find runs",
			"count", len(runs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRuns(ctx, filter)
}

// DeleteRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) DeleteRun(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "delete run",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRun(ctx, id)
}
