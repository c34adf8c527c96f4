package refgen

import (
	"context"
	"time"
)

// Run records one generation run and the files it produced.
type Run struct {
	ID        string    `json:"id"`
	InputPath string    `json:"inputPath"`
	OutputDir string    `json:"outputDir"`
	Format    Format    `json:"format"`
	Files     []RunFile `json:"files"`
	CreatedAt time.Time `json:"createdAt"`
}

// RunFile is a file produced by a run.
type RunFile struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Hash  string `json:"hash"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.InputPath == "" {
		return Errorf(EINVALID, "run input path required")
	}
	if r.OutputDir == "" {
		return Errorf(EINVALID, "run output directory required")
	}
	if r.Format == "" {
		return Errorf(EINVALID, "run format required")
	}
	seen := make(map[string]bool, len(r.Files))
	for _, f := range r.Files {
		if f.Name == "" {
			return Errorf(EINVALID, "run file name required")
		}
		if seen[f.Name] {
			return Errorf(EINVALID, "duplicate run file %q", f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

// FileNames returns the names of the run's files.
func (r *Run) FileNames() []string {
	names := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		names = append(names, f.Name)
	}
	return names
}

// RunService represents a service for recording generation runs.
type RunService interface {
	// CreateRun records a run and its files.
	CreateRun(ctx context.Context, run *Run) error

	// FindLatestRun returns the most recent run for an output directory.
	// Returns ENOTFOUND if no run has been recorded for it.
	FindLatestRun(ctx context.Context, outputDir string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRun removes a run and its file records.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID        *string `json:"id"`
	OutputDir *string `json:"outputDir"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
