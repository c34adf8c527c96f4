// Package pandoc converts documentation blocks by piping them through the
// pandoc binary.
package pandoc

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/fwojciec/refgen"
)

// DefaultBinary is the pandoc executable looked up on PATH.
const DefaultBinary = "pandoc"

// Runner abstracts command execution for testing.
type Runner interface {
	LookPath(file string) (string, error)
	Run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

// execRunner is the production Runner backed by os/exec.
type execRunner struct{}

func (execRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (execRunner) Run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// writers maps refgen formats to pandoc output formats.
var writers = map[refgen.Format]string{
	refgen.FormatRST:      "rst",
	refgen.FormatMarkdown: "gfm",
}

// Ensure Converter implements refgen.Converter at compile time.
var _ refgen.Converter = (*Converter)(nil)

// Converter converts HTML by running pandoc once per call.
type Converter struct {
	binary string
	format refgen.Format
	args   []string
	runner Runner
}

// Option configures a Converter.
type Option func(*Converter)

// WithBinary sets the pandoc executable name or path.
func WithBinary(binary string) Option {
	return func(c *Converter) {
		c.binary = binary
	}
}

// WithFormat sets the output format. Defaults to refgen.FormatRST.
func WithFormat(f refgen.Format) Option {
	return func(c *Converter) {
		c.format = f
	}
}

// WithArgs appends extra command-line arguments, e.g. "--wrap=none".
func WithArgs(args ...string) Option {
	return func(c *Converter) {
		c.args = append(c.args, args...)
	}
}

// WithRunner sets the command runner.
func WithRunner(r Runner) Option {
	return func(c *Converter) {
		c.runner = r
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		binary: DefaultBinary,
		format: refgen.FormatRST,
		runner: execRunner{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available returns an error if the pandoc binary cannot be found or the
// configured format has no pandoc writer.
func (c *Converter) Available() error {
	if _, ok := writers[c.format]; !ok {
		return refgen.Errorf(refgen.EINVALID, "pandoc cannot write format %q", c.format)
	}
	if _, err := c.runner.LookPath(c.binary); err != nil {
		return fmt.Errorf("pandoc binary %q not found: %w", c.binary, err)
	}
	return nil
}

// Convert pipes html through pandoc and returns its output.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", refgen.Errorf(refgen.EINVALID, "empty HTML input")
	}

	writer, ok := writers[c.format]
	if !ok {
		return "", refgen.Errorf(refgen.EINVALID, "pandoc cannot write format %q", c.format)
	}

	args := make([]string, 0, len(c.args)+2)
	args = append(args, "--from=html", "--to="+writer)
	args = append(args, c.args...)

	var stdout, stderr bytes.Buffer
	if err := c.runner.Run(c.binary, args, strings.NewReader(html), &stdout, &stderr); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("running %s: %w: %s", c.binary, err, msg)
		}
		return "", fmt.Errorf("running %s: %w", c.binary, err)
	}

	return stdout.String(), nil
}

// Format returns the configured output format.
func (c *Converter) Format() refgen.Format {
	return c.format
}
