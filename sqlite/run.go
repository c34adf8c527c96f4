package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/refgen"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ refgen.RunService = (*RunService)(nil)

// RunService implements refgen.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a run and its files in a single transaction.
func (s *RunService) CreateRun(ctx context.Context, run *refgen.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, input_path, output_dir, format, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.InputPath, run.OutputDir, string(run.Format), formatTime(run.CreatedAt)); err != nil {
		return err
	}

	for i, f := range run.Files {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_files (run_id, name, title, hash, position)
			VALUES (?, ?, ?, ?, ?)
		`, run.ID, f.Name, f.Title, f.Hash, i); err != nil {
			return fmt.Errorf("failed to insert run file %s: %w", f.Name, err)
		}
	}

	return tx.Commit()
}

// FindLatestRun returns the most recent run recorded for outputDir.
func (s *RunService) FindLatestRun(ctx context.Context, outputDir string) (*refgen.Run, error) {
	runs, err := s.FindRuns(ctx, refgen.RunFilter{OutputDir: &outputDir, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, refgen.Errorf(refgen.ENOTFOUND, "no run recorded for %s", outputDir)
	}
	return runs[0], nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter refgen.RunFilter) ([]*refgen.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, input_path, output_dir, format, created_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.OutputDir != nil {
		query.WriteString(" AND output_dir = ?")
		args = append(args, *filter.OutputDir)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	var runs []*refgen.Run
	for rows.Next() {
		var run refgen.Run
		var format, createdAt string

		if err := rows.Scan(&run.ID, &run.InputPath, &run.OutputDir, &format, &createdAt); err != nil {
			rows.Close()
			return nil, err
		}
		run.Format = refgen.Format(format)

		if run.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			rows.Close()
			return nil, err
		}

		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// The connection pool holds a single connection, so the run rows must
	// be released before the file queries below.
	rows.Close()

	for _, run := range runs {
		if run.Files, err = s.findRunFiles(ctx, run.ID); err != nil {
			return nil, err
		}
	}

	return runs, nil
}

func (s *RunService) findRunFiles(ctx context.Context, runID string) ([]refgen.RunFile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, title, hash
		FROM run_files
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := []refgen.RunFile{}
	for rows.Next() {
		var f refgen.RunFile
		if err := rows.Scan(&f.Name, &f.Title, &f.Hash); err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, rows.Err()
}

// DeleteRun permanently removes a run and its file records.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return refgen.Errorf(refgen.ENOTFOUND, "run not found")
	}

	return nil
}
