package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/emitgrid/internal/fsutil"
	"github.com/vk/emitgrid/internal/testutil"
)

func TestExpandPaths(t *testing.T) {
	t.Parallel()
	dir := testutil.WriteFiles(t, map[string]string{
		"b.hcl":         "",
		"a.hcl":         "",
		"nested/c.hcl":  "",
		"notes.txt":     "",
		"single.config": "",
	})
	j := func(name string) string { return filepath.Join(dir, name) }

	files, err := fsutil.ExpandPaths([]string{j("single.config"), dir, j("a.hcl")}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{j("single.config"), j("a.hcl"), j("b.hcl"), j("nested/c.hcl")}, files)
}

func TestExpandPaths_Missing(t *testing.T) {
	t.Parallel()

	_, err := fsutil.ExpandPaths([]string{filepath.Join(t.TempDir(), "nope")}, ".hcl")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
