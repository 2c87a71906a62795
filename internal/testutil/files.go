package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFiles writes each entry of files, keyed by relative path, under a fresh
// temporary directory and returns that directory. Intermediate directories
// are created as needed.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
	return dir
}

// WriteFile writes a single file named name and returns its full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	return filepath.Join(WriteFiles(t, map[string]string{name: content}), name)
}
