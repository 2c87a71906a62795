package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/emitgrid/internal/app"
	"github.com/vk/emitgrid/internal/handlers"
)

// HarnessResult holds the outcomes of an app test run.
type HarnessResult struct {
	LogOutput func() string
	Err       error
	App       *app.App
}

// HarnessOptions tweaks the app built by RunAppTest.
type HarnessOptions struct {
	// Debug pins the debug context. When nil it is pinned to live so tests
	// never depend on the environment.
	Debug *bool

	// Modules replace the built-in modules when set.
	Modules []handlers.Module
}

// RunAppTest writes files into a temporary directory, points an app at every
// written file in name order, and builds it. The loader for each file is
// chosen by extension, so HCL, YAML and TOML fixtures can be mixed.
func RunAppTest(t *testing.T, files map[string]string, opts HarnessOptions) *HarnessResult {
	t.Helper()
	return RunAppTestWithContext(context.Background(), t, files, opts)
}

// RunAppTestWithContext is RunAppTest with a caller-provided context.
func RunAppTestWithContext(ctx context.Context, t *testing.T, files map[string]string, opts HarnessOptions) *HarnessResult {
	t.Helper()

	dir := WriteFiles(t, files)
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}

	debug := opts.Debug
	if debug == nil {
		live := false
		debug = &live
	}
	cfg, err := app.NewConfig(app.Config{
		ConfigPaths: paths,
		LogLevel:    "debug",
		LogFormat:   "text",
		Debug:       debug,
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	if os.Getenv("EMITGRID_TEST_LOGS") == "true" {
		t.Cleanup(func() {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		})
	}

	var (
		testApp  *app.App
		panicErr any
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp, err = app.New(ctx, logBuffer, cfg, app.NewMultiLoader(), opts.Modules...)
	}()

	if panicErr != nil {
		err = fmt.Errorf("application startup panicked | %v", panicErr)
	}
	if err == nil {
		// Build eagerly so configuration errors surface here.
		_, err = testApp.Catalog()
	}

	return &HarnessResult{
		LogOutput: logBuffer.String,
		Err:       err,
		App:       testApp,
	}
}
