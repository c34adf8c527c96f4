package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/refgen"
	"github.com/fwojciec/refgen/crystal"
	"github.com/fwojciec/refgen/fs"
	refslog "github.com/fwojciec/refgen/slog"
)

// Run executes the stubs command.
func (c *StubsCmd) Run(deps *Dependencies) error {
	n, err := c.run(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d stubs to %s\n", n, c.Output)
	return nil
}

func (c *StubsCmd) run(deps *Dependencies) (int, error) {
	f, err := os.Open(c.Index)
	if err != nil {
		return 0, fmt.Errorf("open index: %w", err)
	}
	root, err := crystal.Load(f)
	f.Close()
	if err != nil {
		return 0, err
	}

	stubs, err := refgen.BuildStubs(root)
	if err != nil {
		return 0, err
	}

	out := filepath.Clean(c.Output)
	store := refslog.NewLoggingStubWriter(fs.NewStubStore(filepath.Dir(out), filepath.Base(out)), deps.Logger)
	if err := store.WriteStubs(deps.Ctx, stubs); err != nil {
		return 0, err
	}
	return len(stubs), nil
}
