package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/refgen"
	"github.com/fwojciec/refgen/htmltomarkdown"
	"github.com/fwojciec/refgen/pandoc"
	refslog "github.com/fwojciec/refgen/slog"
	"github.com/fwojciec/refgen/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	// Commands report their own errors on stderr.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// NewConverter builds the converter for a format.
	// Replaced in tests so they do not depend on a pandoc install.
	NewConverter func(format refgen.Format) (refgen.Converter, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:       defaultDBPath(),
		NewConverter: newConverter,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:          ctx,
		Stdout:       stdout,
		Stderr:       stderr,
		NewConverter: m.NewConverter,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("refgen"),
		kong.Description("Split a generated API reference page into one file per method"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(YAMLConfigLoader, DefaultConfigFile),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := errors.New("no command specified. Run 'refgen --help' to see available commands")
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", errorMessage(err))
		return err
	}

	// Global flags may precede the command, so take it from the parse.
	cmd = strings.Fields(kongCtx.Command())[0]
	deps.Logger = newLogger(stderr, cli.Verbose, cmd == "build" && cli.Build.Quiet)

	if cmd == "build" || cmd == "runs" {
		err := m.openDB()
		switch {
		case err == nil:
			defer m.Close()
			deps.Runs = refslog.NewLoggingRunService(sqlite.NewRunService(m.DB), deps.Logger)
		case cmd == "build" && !cli.Build.Prune:
			// Only pruning and the runs command need the history.
			deps.Logger.Warn("run history disabled", "path", m.DBPath, "err", err)
		default:
			fmt.Fprintf(stderr, "Hint: Set REFGEN_DB to use a different database path\n")
			fmt.Fprintf(stderr, "error: %s\n", err)
			return err
		}
	}

	return kongCtx.Run(deps)
}

// openDB opens the run database at DBPath.
func (m *Main) openDB() error {
	db := sqlite.NewDB(m.DBPath)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	m.DB = db
	return nil
}

// newLogger returns a text logger on w. Verbose enables debug output and
// quiet discards everything.
func newLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	if quiet {
		return slog.New(slog.DiscardHandler)
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newConverter returns the converter for format. The rst converter needs
// a pandoc binary on PATH.
func newConverter(format refgen.Format) (refgen.Converter, error) {
	switch format {
	case refgen.FormatMarkdown:
		return htmltomarkdown.NewConverter(), nil
	case refgen.FormatRST:
		c := pandoc.NewConverter(pandoc.WithFormat(format))
		if err := c.Available(); err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, refgen.Errorf(refgen.EINVALID, "unsupported format %q", format)
}

func defaultDBPath() string {
	if path := os.Getenv("REFGEN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "refgen.db"
	}
	return filepath.Join(home, ".refgen", "refgen.db")
}
