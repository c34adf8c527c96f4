package main

import (
	"fmt"

	"github.com/fwojciec/refgen"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := refgen.RunFilter{Limit: c.Limit}
	if c.Output != "" {
		filter.OutputDir = &c.Output
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'refgen build' to create one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d files  %s -> %s\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Format, len(r.Files), r.InputPath, r.OutputDir)
	}

	return nil
}
