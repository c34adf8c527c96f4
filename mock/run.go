package mock

import (
	"context"

	"github.com/fwojciec/refgen"
)

var _ refgen.RunService = (*RunService)(nil)

// RunService is a mock implementation of refgen.RunService.
type RunService struct {
	CreateRunFn     func(ctx context.Context, run *refgen.Run) error
	FindLatestRunFn func(ctx context.Context, outputDir string) (*refgen.Run, error)
	FindRunsFn      func(ctx context.Context, filter refgen.RunFilter) ([]*refgen.Run, error)
	DeleteRunFn     func(ctx context.Context, id string) error
}

func (s *RunService) CreateRun(ctx context.Context, run *refgen.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindLatestRun(ctx context.Context, outputDir string) (*refgen.Run, error) {
	return s.FindLatestRunFn(ctx, outputDir)
}

func (s *RunService) FindRuns(ctx context.Context, filter refgen.RunFilter) ([]*refgen.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
