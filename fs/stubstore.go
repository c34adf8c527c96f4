package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/refgen"
	"go.yaml.in/yaml/v3"
)

// EditPathsFile is written next to the stubs and maps each stub path to the
// URL of the type's source.
const EditPathsFile = "edit_paths.yml"

// StubMarker is written into every stub directory. A non-empty directory
// without it was not created by StubStore and is never replaced.
const StubMarker = ".refgen-stubs"

// Ensure StubStore implements refgen.StubWriter at compile time.
var _ refgen.StubWriter = (*StubStore)(nil)

// StubStore writes stub pages with atomic update semantics.
// Stubs are saved to a temporary directory, then moved into place on Commit,
// replacing the previous set entirely. Only directories that are missing,
// empty, or carry StubMarker are replaced.
type StubStore struct {
	baseDir string
	name    string
}

// NewStubStore creates a new StubStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewStubStore(baseDir, name string) *StubStore {
	return &StubStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *StubStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *StubStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// WriteStubs replaces the stub directory with stubs and their edit paths.
func (s *StubStore) WriteStubs(ctx context.Context, stubs []*refgen.Stub) error {
	if err := s.checkTarget(); err != nil {
		return err
	}

	// Discard leftovers from an interrupted run.
	if err := s.Abort(); err != nil {
		return err
	}

	if err := s.write(ctx, stubs); err != nil {
		_ = s.Abort()
		return err
	}
	return s.Commit()
}

func (s *StubStore) write(ctx context.Context, stubs []*refgen.Stub) error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(s.tempDir(), StubMarker), nil, 0644); err != nil {
		return err
	}

	editPaths := make(map[string]string)
	for _, stub := range stubs {
		if err := s.Save(ctx, stub); err != nil {
			return err
		}
		if stub.EditURL != "" {
			editPaths[stub.Path] = stub.EditURL
		}
	}

	if len(editPaths) == 0 {
		return nil
	}
	data, err := yaml.Marshal(editPaths)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.tempDir(), EditPathsFile), data, 0644)
}

// Save writes a single stub into the temporary directory.
func (s *StubStore) Save(ctx context.Context, stub *refgen.Stub) error {
	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(stub.Path))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(stub.Content), 0644)
}

// Commit replaces the output directory with the temporary directory.
func (s *StubStore) Commit() error {
	if err := s.checkTarget(); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the temporary directory.
func (s *StubStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// checkTarget returns an error unless the output directory is safe to replace.
func (s *StubStore) checkTarget() error {
	dir, err := filepath.Abs(s.finalDir())
	if err != nil {
		return err
	}
	if protectedDir(dir) {
		return refgen.Errorf(refgen.EINVALID, "refusing to replace %s: choose a dedicated stub directory", dir)
	}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	if !info.IsDir() {
		return refgen.Errorf(refgen.ECONFLICT, "stub output %s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	if _, err := os.Stat(filepath.Join(dir, StubMarker)); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return refgen.Errorf(refgen.ECONFLICT, "refusing to replace %s: it holds files refgen did not write", dir)
}

// protectedDir reports whether dir is the filesystem root or contains the
// working directory or the home directory.
func protectedDir(dir string) bool {
	if filepath.Dir(dir) == dir {
		return true
	}
	for _, get := range []func() (string, error){os.Getwd, os.UserHomeDir} {
		p, err := get()
		if err != nil || p == "" {
			continue
		}
		if p, err = filepath.Abs(p); err == nil && within(dir, p) {
			return true
		}
	}
	return false
}

// within reports whether path is dir or lies below it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
