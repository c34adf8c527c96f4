package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/refgen"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Runs   refgen.RunService

	NewConverter func(format refgen.Format) (refgen.Converter, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool            `short:"v" env:"REFGEN_VERBOSE" help:"Enable debug logging on stderr"`
	Config  kong.ConfigFlag `placeholder:"PATH" help:"YAML config file whose keys mirror flag names"`

	Build BuildCmd `cmd:"" help:"Generate one file per method from an HTML reference page"`
	Stubs StubsCmd `cmd:"" help:"Generate documentation stub pages from a crystal docs index"`
	Runs  RunsCmd  `cmd:"" help:"List recorded build runs"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Input       string `arg:"" optional:"" default:"../docs/Num.html" help:"HTML reference page, a file path or an http(s) URL"`
	Output      string `short:"o" type:"path" default:"reference/generated" env:"REFGEN_OUTPUT" help:"Output directory"`
	Format      string `short:"f" enum:"rst,md" default:"rst" env:"REFGEN_FORMAT" help:"Output markup (rst needs pandoc)"`
	Concurrency int    `short:"c" default:"1" env:"REFGEN_CONCURRENCY" help:"Concurrent conversions"`
	Check       bool   `help:"Report out-of-date files without writing"`
	Prune       bool   `help:"Remove files the previous run wrote that are no longer produced"`
	Quiet       bool   `short:"q" help:"Suppress progress and logs"`

	Dialect           string `enum:"auto,crystal,sphinx" default:"auto" help:"Page dialect for selector defaults"`
	EntrySelector     string `placeholder:"SEL" help:"Selector for entry blocks"`
	SignatureSelector string `placeholder:"SEL" help:"Selector for the signature inside an entry"`
	TitleSelector     string `placeholder:"SEL" help:"Selector for the title inside a signature"`
	PermalinkSelector string `placeholder:"SEL" help:"Selector for the permalink anchor inside a signature"`
}

// StubsCmd is the "stubs" subcommand.
type StubsCmd struct {
	Index  string `arg:"" type:"existingfile" help:"index.json written by crystal docs"`
	Output string `short:"o" type:"path" default:"docs/reference" help:"Stub directory, replaced on every run"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Output string `short:"o" type:"path" help:"Only show runs for this output directory"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of runs to show"`
}

// errorMessage returns the message to show a user for err. Domain errors
// show their message; anything else shows the full error chain.
func errorMessage(err error) string {
	if refgen.ErrorCode(err) == refgen.EINTERNAL {
		return err.Error()
	}
	return refgen.ErrorMessage(err)
}
