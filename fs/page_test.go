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
)

func TestPageReader_ReadPage(t *testing.T) {
	t.Parallel()

	t.Run("returns file content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "Num.html")
		require.NoError(t, os.WriteFile(path, []byte("<html>Num</html>"), 0644))

		html, err := fs.NewPageReader().ReadPage(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "<html>Num</html>", html)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewPageReader().ReadPage(context.Background(), filepath.Join(t.TempDir(), "missing.html"))

		assert.Equal(t, refgen.ENOTFOUND, refgen.ErrorCode(err))
	})

	t.Run("returns error for directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewPageReader().ReadPage(context.Background(), t.TempDir())

		require.Error(t, err)
	})
}
