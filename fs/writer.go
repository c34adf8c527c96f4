// Package fs provides file-based storage for generated reference documentation.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/refgen"
)

// FileName converts a title to a file name stem that is safe on every
// common filesystem. ASCII letters and digits, non-ASCII letters and digits,
// and the characters "-_.+=!~[]@," are kept; every other byte is
// percent-encoded, including "%" itself, so distinct titles map to distinct
// names. Letter case is kept: titles that differ only in case, such as "Sum"
// and "sum", share a file on case-insensitive filesystems.
// A title made only of dots is encoded in full so it cannot name "." or "..".
// Example: "<=>" → "%3C=%3E", "empty?" → "empty%3F"
func FileName(title string) (string, error) {
	if title == "" {
		return "", refgen.Errorf(refgen.EINVALID, "title required for file name")
	}

	onlyDots := strings.Trim(title, ".") == ""

	var b strings.Builder
	for i := 0; i < len(title); {
		r, size := utf8.DecodeRuneInString(title[i:])
		if r != utf8.RuneError && safeRune(r) && !(onlyDots && r == '.') {
			b.WriteString(title[i : i+size])
		} else {
			for _, c := range []byte(title[i : i+size]) {
				fmt.Fprintf(&b, "%%%02X", c)
			}
		}
		i += size
	}
	return b.String(), nil
}

func safeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case strings.ContainsRune("-_.+=!~[]@,", r):
		return true
	case r > unicode.MaxASCII:
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}

// ContentHash computes a hash of the content using xxhash.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// Ensure Writer implements refgen.GroupWriter at compile time.
var _ refgen.GroupWriter = (*Writer)(nil)

// Writer writes title groups as files in a single directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Dir returns the directory the writer writes to.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteFile writes f to disk, replacing any existing file of the same name.
// Files whose content is already up to date are not rewritten.
func (w *Writer) WriteFile(ctx context.Context, f *refgen.OutputFile) (*refgen.FileResult, error) {
	res, content, err := w.compare(f)
	if err != nil {
		return nil, err
	}
	if res.Status == refgen.FileUnchanged {
		return res, nil
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(w.baseDir, res.Name), []byte(content), 0644); err != nil {
		return nil, err
	}
	return res, nil
}

// CheckFile reports whether the file on disk matches f.
// Missing and outdated files are reported as stale.
func (w *Writer) CheckFile(ctx context.Context, f *refgen.OutputFile) (*refgen.FileResult, error) {
	res, _, err := w.compare(f)
	if err != nil {
		return nil, err
	}
	if res.Status != refgen.FileUnchanged {
		res.Status = refgen.FileStale
	}
	return res, nil
}

// RemoveFile deletes a file from the base directory.
// Names that would reach outside the directory are rejected.
func (w *Writer) RemoveFile(ctx context.Context, name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return refgen.Errorf(refgen.EINVALID, "invalid file name %q", name)
	}
	err := os.Remove(filepath.Join(w.baseDir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// compare renders f and compares it with the file on disk.
func (w *Writer) compare(f *refgen.OutputFile) (*refgen.FileResult, string, error) {
	stem, err := FileName(f.Title)
	if err != nil {
		return nil, "", err
	}

	content := f.Content()
	res := &refgen.FileResult{
		Title:   f.Title,
		Name:    stem + f.Format.Ext(),
		Records: len(f.Records),
		Hash:    ContentHash(content),
		Status:  refgen.FileCreated,
	}

	existing, err := os.ReadFile(filepath.Join(w.baseDir, res.Name))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, "", err
	case string(existing) == content:
		res.Status = refgen.FileUnchanged
	default:
		res.Status = refgen.FileUpdated
	}

	return res, content, nil
}
