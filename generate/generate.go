// Package generate orchestrates a reference build: it reads an HTML page,
// extracts and converts its entry blocks, and writes one file per title.
package generate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fwojciec/refgen"
	"golang.org/x/sync/errgroup"
)

// Generator runs the extract, convert, group, and write pipeline.
type Generator struct {
	Pages     refgen.PageReader
	Extractor refgen.Extractor
	Converter refgen.Converter
	Writer    refgen.GroupWriter

	// Runs records each build. Optional unless Prune is requested.
	Runs refgen.RunService

	// Concurrency bounds parallel conversions. Values below 1 mean 1.
	Concurrency int
}

// Options configures a single run.
type Options struct {
	// OutputDir identifies the output location in the run history.
	OutputDir string

	// Check compares outputs with what is on disk without writing.
	Check bool

	// Prune removes files written by the previous run for OutputDir
	// that this run no longer produces.
	Prune bool

	Progress refgen.ProgressFunc
}

// Result holds the outcome of a run.
type Result struct {
	RunID  string
	Blocks int
	Files  []*refgen.FileResult
	Pruned []string
}

// Stale returns the files that differ from disk in check mode.
func (r *Result) Stale() []*refgen.FileResult {
	var stale []*refgen.FileResult
	for _, f := range r.Files {
		if f.Status == refgen.FileStale {
			stale = append(stale, f)
		}
	}
	return stale
}

// Count returns the number of files with the given status.
func (r *Result) Count(status refgen.FileStatus) int {
	var n int
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// Run builds the reference for the page at input.
// In check mode it returns the result together with an ECONFLICT error when
// any output is stale.
func (g *Generator) Run(ctx context.Context, input string, opts Options) (*Result, error) {
	if opts.Prune && g.Runs == nil {
		return nil, refgen.Errorf(refgen.EINVALID, "pruning requires a run store")
	}

	page, err := g.Pages.ReadPage(ctx, input)
	if err != nil {
		return nil, err
	}

	blocks, err := g.Extractor.Extract(page)
	if err != nil {
		return nil, err
	}

	records, err := g.convert(ctx, blocks, opts.Progress)
	if err != nil {
		return nil, err
	}

	result := &Result{Blocks: len(blocks)}
	groups := refgen.GroupRecords(records)
	format := g.Converter.Format()

	if err := checkCaseCollisions(groups.Titles()); err != nil {
		return nil, err
	}

	for _, title := range groups.Titles() {
		f := &refgen.OutputFile{
			Title:   title,
			Format:  format,
			Records: groups.Records(title),
		}

		var res *refgen.FileResult
		if opts.Check {
			res, err = g.Writer.CheckFile(ctx, f)
		} else {
			res, err = g.Writer.WriteFile(ctx, f)
		}
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", title, err)
		}
		result.Files = append(result.Files, res)
	}

	if opts.Check {
		if stale := result.Stale(); len(stale) > 0 {
			return result, refgen.Errorf(refgen.ECONFLICT, "%d of %d files are out of date", len(stale), len(result.Files))
		}
		return result, nil
	}

	if opts.Prune {
		if result.Pruned, err = g.prune(ctx, opts.OutputDir, result.Files); err != nil {
			return nil, err
		}
	}

	if g.Runs != nil {
		run := &refgen.Run{
			InputPath: input,
			OutputDir: opts.OutputDir,
			Format:    format,
		}
		for _, f := range result.Files {
			run.Files = append(run.Files, refgen.RunFile{Name: f.Name, Title: f.Title, Hash: f.Hash})
		}
		if err := g.Runs.CreateRun(ctx, run); err != nil {
			return nil, fmt.Errorf("record run: %w", err)
		}
		result.RunID = run.ID
	}

	return result, nil
}

// convert converts blocks concurrently. The returned records are in block
// order regardless of completion order.
func (g *Generator) convert(ctx context.Context, blocks []*refgen.Block, progress refgen.ProgressFunc) ([]*refgen.Record, error) {
	concurrency := g.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	records := make([]*refgen.Record, len(blocks))
	var mu sync.Mutex
	var completed int

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	for i, b := range blocks {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			rec, err := refgen.ConvertBlock(g.Converter, b)
			if err != nil {
				return err
			}
			records[i] = rec

			if progress != nil {
				mu.Lock()
				completed++
				progress(refgen.Progress{Title: b.Title, Completed: completed, Total: len(blocks)})
				mu.Unlock()
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// checkCaseCollisions returns ECONFLICT when two titles differ only in case.
// Their files would overwrite each other on case-insensitive filesystems.
func checkCaseCollisions(titles []string) error {
	seen := make(map[string]string, len(titles))
	for _, title := range titles {
		key := strings.ToLower(title)
		if prev, ok := seen[key]; ok {
			return refgen.Errorf(refgen.ECONFLICT, "titles %q and %q differ only in case and would share a file on case-insensitive filesystems", prev, title)
		}
		seen[key] = title
	}
	return nil
}

// prune removes files recorded by any previous run for outputDir that are
// not in current.
func (g *Generator) prune(ctx context.Context, outputDir string, current []*refgen.FileResult) ([]string, error) {
	prev, err := g.Runs.FindRuns(ctx, refgen.RunFilter{OutputDir: &outputDir})
	if err != nil {
		return nil, fmt.Errorf("find previous runs: %w", err)
	}

	keep := make(map[string]bool, len(current))
	for _, f := range current {
		keep[f.Name] = true
	}

	var pruned []string
	for _, run := range prev {
		for _, name := range run.FileNames() {
			if keep[name] {
				continue
			}
			keep[name] = true
			if err := g.Writer.RemoveFile(ctx, name); err != nil {
				return pruned, fmt.Errorf("prune %s: %w", name, err)
			}
			pruned = append(pruned, name)
		}
	}
	return pruned, nil
}
