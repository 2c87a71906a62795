package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL file with a syntax error fails while the app loads it.
	invalidHCL := `
		emitter "page" {
			converter "join" {
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, errOut, []string{"validate", "--config", filePath})

	// --- Assert ---
	require.Error(t, runErr, "run() should fail on a configuration that does not parse")
	require.Contains(t, runErr.Error(), "failed to load configuration")
	require.Empty(t, out.String())
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"--help"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when help is requested")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
	require.Contains(t, out.String(), "render")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag makes cobra return an error.
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"validate", "--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}
