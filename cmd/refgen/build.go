package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/refgen"
	"github.com/fwojciec/refgen/fs"
	"github.com/fwojciec/refgen/generate"
	"github.com/fwojciec/refgen/goquery"
	refhttp "github.com/fwojciec/refgen/http"
	refslog "github.com/fwojciec/refgen/slog"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	result, err := c.run(deps)
	if err != nil {
		if refgen.ErrorCode(err) == refgen.ECONFLICT && result != nil {
			for _, f := range result.Stale() {
				fmt.Fprintf(deps.Stderr, "stale: %s\n", f.Name)
			}
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	if c.Check {
		fmt.Fprintf(deps.Stdout, "%d files in %s are up to date\n", len(result.Files), c.Output)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d files from %d blocks to %s (%d created, %d updated, %d unchanged",
		len(result.Files), result.Blocks, c.Output,
		result.Count(refgen.FileCreated), result.Count(refgen.FileUpdated), result.Count(refgen.FileUnchanged))
	if c.Prune {
		fmt.Fprintf(deps.Stdout, ", %d pruned", len(result.Pruned))
	}
	fmt.Fprintln(deps.Stdout, ")")

	return nil
}

func (c *BuildCmd) run(deps *Dependencies) (*generate.Result, error) {
	format, err := refgen.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}

	extractor, err := c.extractor()
	if err != nil {
		return nil, err
	}

	converter, err := deps.NewConverter(format)
	if err != nil {
		return nil, err
	}

	input, pages, err := c.pageReader()
	if err != nil {
		return nil, err
	}

	g := &generate.Generator{
		Pages:       refslog.NewLoggingPageReader(pages, deps.Logger),
		Extractor:   refslog.NewLoggingExtractor(extractor, goquery.NewDetector(), deps.Logger),
		Converter:   refslog.NewLoggingConverter(converter, deps.Logger),
		Writer:      refslog.NewLoggingWriter(fs.NewWriter(c.Output), deps.Logger),
		Runs:        deps.Runs,
		Concurrency: c.Concurrency,
	}

	opts := generate.Options{
		OutputDir: c.Output,
		Check:     c.Check,
		Prune:     c.Prune,
	}

	var width int
	if !c.Quiet {
		opts.Progress = func(p refgen.Progress) {
			line := fmt.Sprintf("\r[%d/%d] %s", p.Completed, p.Total, p.Title)
			// Clear what is left of a longer previous line.
			pad := width - len(line)
			width = len(line)
			if pad > 0 {
				line += strings.Repeat(" ", pad)
			}
			fmt.Fprint(deps.Stdout, line)
		}
	}

	result, err := g.Run(deps.Ctx, input, opts)
	if width > 0 {
		fmt.Fprintln(deps.Stdout)
	}
	return result, err
}

// pageReader returns the input location and the reader that loads it.
// File paths are made absolute so the run history identifies them.
func (c *BuildCmd) pageReader() (string, refgen.PageReader, error) {
	if refgen.IsURL(c.Input) {
		return c.Input, refhttp.NewPageReader(), nil
	}
	path, err := filepath.Abs(c.Input)
	if err != nil {
		return "", nil, err
	}
	return path, fs.NewPageReader(), nil
}

// extractor returns an extractor for the selected dialect with any selector
// overrides applied. Selectors are compiled here so a malformed one fails
// before the input is read.
func (c *BuildCmd) extractor() (*goquery.Extractor, error) {
	registry := goquery.NewDefaultRegistry()
	extractor := goquery.NewExtractor(registry)

	overrides := goquery.Selectors{
		Entry:     c.EntrySelector,
		Signature: c.SignatureSelector,
		Title:     c.TitleSelector,
		Permalink: c.PermalinkSelector,
	}
	if c.Dialect == "auto" && overrides == (goquery.Selectors{}) {
		return extractor, nil
	}

	base := goquery.CrystalSelectors
	if c.Dialect != "auto" {
		s, ok := registry.Get(refgen.Dialect(c.Dialect))
		if !ok {
			return nil, refgen.Errorf(refgen.EINVALID, "unknown dialect %q", c.Dialect)
		}
		base = s
	}

	selectors := base.Override(overrides)
	if _, err := selectors.Compile(); err != nil {
		return nil, err
	}
	extractor.Selectors = &selectors
	return extractor, nil
}
