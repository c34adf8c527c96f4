package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/refgen"
	"github.com/fwojciec/refgen/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

// Story: Atomic Stub Storage
// The store stages stubs in a temp directory and swaps it into place.

func TestStubStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewStubStore(base, "api")

	// When I save a stub
	err := store.Save(context.Background(), &refgen.Stub{
		Path:    "Num/Grad/index.md",
		Content: "# ::: Num::Grad\n",
	})

	// Then the file exists in the temp directory only
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "api.tmp", "Num", "Grad", "index.md"))
	require.NoError(t, err, "file should exist in temp directory")
	_, err = os.Stat(filepath.Join(base, "api"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestStubStore_WriteStubs(t *testing.T) {
	t.Parallel()

	t.Run("writes stubs and edit paths", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewStubStore(base, "api")

		err := store.WriteStubs(context.Background(), []*refgen.Stub{
			{Path: "Num/index.md", Content: "# ::: Num\n", EditURL: "https://example.com/src/num.cr#L1"},
			{Path: "Num/Grad/index.md", Content: "# ::: Num::Grad\n"},
		})

		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(base, "api", "Num", "index.md"))
		require.NoError(t, err)
		assert.Equal(t, "# ::: Num\n", string(content))

		content, err = os.ReadFile(filepath.Join(base, "api", "Num", "Grad", "index.md"))
		require.NoError(t, err)
		assert.Equal(t, "# ::: Num::Grad\n", string(content))

		data, err := os.ReadFile(filepath.Join(base, "api", fs.EditPathsFile))
		require.NoError(t, err)
		var editPaths map[string]string
		require.NoError(t, yaml.Unmarshal(data, &editPaths))
		assert.Equal(t, map[string]string{"Num/index.md": "https://example.com/src/num.cr#L1"}, editPaths)

		_, err = os.Stat(filepath.Join(base, "api.tmp"))
		assert.True(t, os.IsNotExist(err), "temp directory should be gone after commit")
		_, err = os.Stat(filepath.Join(base, "api", fs.StubMarker))
		assert.NoError(t, err, "published directory should carry the marker")
	})

	t.Run("omits edit paths file when no stub has a URL", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewStubStore(base, "api")

		err := store.WriteStubs(context.Background(), []*refgen.Stub{
			{Path: "Num/index.md", Content: "# ::: Num\n"},
		})

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(base, "api", fs.EditPathsFile))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("replaces previous stubs entirely", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewStubStore(base, "api")
		require.NoError(t, store.WriteStubs(context.Background(), []*refgen.Stub{
			{Path: "Old/index.md", Content: "# ::: Old\n"},
		}))

		err := store.WriteStubs(context.Background(), []*refgen.Stub{
			{Path: "New/index.md", Content: "# ::: New\n"},
		})

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(base, "api", "Old", "index.md"))
		assert.True(t, os.IsNotExist(err), "old stub should be removed")
		_, err = os.Stat(filepath.Join(base, "api", "New", "index.md"))
		require.NoError(t, err)
	})

	t.Run("discards leftovers from an interrupted run", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		leftover := filepath.Join(base, "api.tmp", "Stale", "index.md")
		require.NoError(t, os.MkdirAll(filepath.Dir(leftover), 0755))
		require.NoError(t, os.WriteFile(leftover, []byte("stale"), 0644))
		store := fs.NewStubStore(base, "api")

		err := store.WriteStubs(context.Background(), []*refgen.Stub{
			{Path: "Num/index.md", Content: "# ::: Num\n"},
		})

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(base, "api", "Stale", "index.md"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestStubStore_WriteStubs_OutputOwnership(t *testing.T) {
	t.Parallel()

	t.Run("leaves a directory of foreign files untouched", func(t *testing.T) {
		t.Parallel()

		// Given a docs directory with hand-written pages
		base := t.TempDir()
		docs := filepath.Join(base, "docs")
		require.NoError(t, os.MkdirAll(docs, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(docs, "index.md"), []byte("# Home\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(docs, "extra.css"), []byte("body {}\n"), 0644))
		store := fs.NewStubStore(base, "docs")

		// When I write stubs into it
		err := store.WriteStubs(context.Background(), []*refgen.Stub{
			{Path: "Num/index.md", Content: "# ::: Num\n"},
		})

		// Then the write is refused and nothing is lost
		assert.Equal(t, refgen.ECONFLICT, refgen.ErrorCode(err))
		content, err := os.ReadFile(filepath.Join(docs, "index.md"))
		require.NoError(t, err)
		assert.Equal(t, "# Home\n", string(content))
		_, err = os.Stat(filepath.Join(docs, "extra.css"))
		assert.NoError(t, err)
		_, err = os.Stat(filepath.Join(docs, "Num"))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(base, "docs.tmp"))
		assert.True(t, os.IsNotExist(err), "nothing should be staged")
	})

	t.Run("fills an existing empty directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(base, "api"), 0755))
		store := fs.NewStubStore(base, "api")

		err := store.WriteStubs(context.Background(), []*refgen.Stub{
			{Path: "Num/index.md", Content: "# ::: Num\n"},
		})

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(base, "api", "Num", "index.md"))
		assert.NoError(t, err)
	})

	t.Run("rejects a file in place of the directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(base, "api"), []byte("x"), 0644))
		store := fs.NewStubStore(base, "api")

		err := store.WriteStubs(context.Background(), []*refgen.Stub{
			{Path: "Num/index.md", Content: "# ::: Num\n"},
		})

		assert.Equal(t, refgen.ECONFLICT, refgen.ErrorCode(err))
	})

	t.Run("rejects the working directory", func(t *testing.T) {
		t.Parallel()

		wd, err := os.Getwd()
		require.NoError(t, err)
		store := fs.NewStubStore(filepath.Dir(wd), filepath.Base(wd))

		err = store.WriteStubs(context.Background(), []*refgen.Stub{
			{Path: "Num/index.md", Content: "# ::: Num\n"},
		})

		assert.Equal(t, refgen.EINVALID, refgen.ErrorCode(err))
		_, err = os.Stat(filepath.Join(wd, "stubstore_test.go"))
		assert.NoError(t, err)
	})

	t.Run("rejects a parent of the working directory", func(t *testing.T) {
		t.Parallel()

		wd, err := os.Getwd()
		require.NoError(t, err)
		parent := filepath.Dir(wd)
		store := fs.NewStubStore(filepath.Dir(parent), filepath.Base(parent))

		err = store.WriteStubs(context.Background(), []*refgen.Stub{
			{Path: "Num/index.md", Content: "# ::: Num\n"},
		})

		assert.Equal(t, refgen.EINVALID, refgen.ErrorCode(err))
	})

	t.Run("rejects the filesystem root", func(t *testing.T) {
		t.Parallel()

		root := string(filepath.Separator)
		store := fs.NewStubStore(root, "")

		err := store.WriteStubs(context.Background(), []*refgen.Stub{
			{Path: "Num/index.md", Content: "# ::: Num\n"},
		})

		assert.Equal(t, refgen.EINVALID, refgen.ErrorCode(err))
	})
}

func TestStubStore_Abort(t *testing.T) {
	t.Parallel()

	// Given a store with a saved stub
	base := t.TempDir()
	store := fs.NewStubStore(base, "api")
	require.NoError(t, store.Save(context.Background(), &refgen.Stub{Path: "A/index.md", Content: "# ::: A\n"}))

	// When I abort
	err := store.Abort()

	// Then the temp directory is gone and nothing was published
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "api.tmp"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "api"))
	assert.True(t, os.IsNotExist(err))
}
