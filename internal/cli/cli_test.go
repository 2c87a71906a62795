package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/emitgrid/internal/cli"
	"github.com/vk/emitgrid/internal/testutil"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

const pageHCL = `
emitter "page" {
  default = true

  converter "join" {}

  post_modifier "comment_banner" {
    emit_mode = "debug_only"
    text      = "page"
  }

  writer "script_tag" {}
}
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := cli.Execute(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "expected *cli.ExitError, got %v", err)
	return exitErr.Code
}

func TestValidate(t *testing.T) {
	t.Parallel()
	cfg := testutil.WriteFile(t, "page.hcl", pageHCL)

	out, _, err := run(t, "validate", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "✔ live: 1 emitters, 0 bundles, default page")
	assert.Contains(t, out, "✔ debug: 1 emitters, 0 bundles, default page")
}

func TestValidate_FailsInOneContext(t *testing.T) {
	t.Parallel()
	cfg := testutil.WriteFile(t, "page.hcl", `
emitter "page" {
  converter "join" {}
  converter "join" {
    emit_mode = "debug_only"
  }
  writer "raw" {}
}
`)

	out, _, err := run(t, "validate", "-c", cfg)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, out, "✔ live:")
	assert.Contains(t, out, "✘ debug:")
	assert.Contains(t, out, "at most one is allowed")
}

func TestRender(t *testing.T) {
	t.Parallel()
	dir := testutil.WriteFiles(t, map[string]string{
		"page.hcl": pageHCL,
		"a.yaml": `
declarations:
  - kind: variable
    name: x
    value: 1
`,
		"b.toml": `
[[declarations]]
kind = "call"
function = "init"
args = ["a", 2]
`,
	})
	cfg := dir + "/page.hcl"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "all in argument order",
			args: []string{"render", "-c", cfg, dir + "/a.yaml", dir + "/b.toml"},
			want: "<script>var x = 1;init(\"a\", 2);</script>\n",
		},
		{
			name: "for key",
			args: []string{"render", "-c", cfg, "--for", "page", dir + "/b.toml", dir + "/a.yaml"},
			want: "<script>init(\"a\", 2);var x = 1;</script>",
		},
		{
			name: "names",
			args: []string{"render", "-c", cfg, "--names", "x", dir + "/a.yaml", dir + "/b.toml"},
			want: "<script>var x = 1;</script>",
		},
		{
			name: "debug context",
			args: []string{"render", "-c", cfg, "--debug", "--for", "page", dir + "/a.yaml"},
			want: "<script>/* page */\nvar x = 1;</script>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()
	cfg := testutil.WriteFile(t, "page.hcl", pageHCL)

	_, _, err := run(t, "render", "-c", cfg, "missing.yaml")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(t, err))

	_, _, err = run(t, "render", "-c", cfg)
	require.Error(t, err, "at least one file is required")

	_, _, err = run(t, "render", "-c", cfg, "--for", "page", "--names", "x", "a.yaml")
	require.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "validate")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(t, err))
	assert.Contains(t, err.Error(), "at least one configuration path")

	_, _, err = run(t, "validate", "-c", "x.hcl", "--log-format", "xml")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(t, err))
}

func TestStages(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "stages")
	require.NoError(t, err)
	for _, want := range []string{
		"pre_modifiers\n",
		"  order_by_kind (order)\n",
		"  strip_comments\n",
		"  strip_script_wrapper\n",
		"  join (separator, terminator)\n",
		"  comment_banner (text, style, bottom)\n",
		"  script_tag (type, nonce, attributes, skip_empty)\n",
		"custom_objects\n",
		"  script_context (nonce, type)\n",
	} {
		assert.Contains(t, out, want)
	}
}
