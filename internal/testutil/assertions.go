package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLogged checks that the app logged a line containing every fragment,
// e.g. a message together with its key=value attributes.
func AssertLogged(t *testing.T, result *HarnessResult, fragments ...string) {
	t.Helper()

	for _, line := range strings.Split(result.LogOutput(), "\n") {
		if containsAll(line, fragments) {
			return
		}
	}
	require.Failf(t, "log line not found", "no log line contains all of %q", fragments)
}

func containsAll(s string, fragments []string) bool {
	for _, f := range fragments {
		if !strings.Contains(s, f) {
			return false
		}
	}
	return true
}
