package hcl_adapter_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/emitgrid/internal/hcl_adapter"
	"github.com/vk/emitgrid/internal/testutil"
	"github.com/zclconf/go-cty/cty"
)

func TestLoader_EmittersAndBundles(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, "emitters.hcl", `
emitter "js" {
  default = true

  custom_object "script_context" {
    nonce = "abc"
  }

  pre_modifier "order_by_kind" {
    order = ["comment", "variable"]
  }

  converter "join" {
    terminator = ";"
  }

  post_modifier "comment_banner" {
    emit_mode        = "debug_only"
    use_when_bundled = false
    ignore_missing   = ["legacy"]
    text             = "page scripts"
  }

  writer "script_tag" {}
}

bundle "footer" {
  emitters = ["a", "b"]

  post_modifier "iife" {
    strict = true
  }

  writer "script_tag" {}
}
`)
	ctx, logs := testutil.NewContext(t)

	model, err := hcl_adapter.NewLoader().Load(ctx, path)
	require.NoError(t, err)
	require.Contains(t, logs.String(), "HCL loading complete.")

	require.Len(t, model.Emitters, 1)
	js := model.Emitters[0]
	require.Equal(t, "js", js.Key)
	require.True(t, js.Default)
	require.Equal(t, path, js.Source)

	require.NotNil(t, js.CustomObject)
	require.Equal(t, "script_context", js.CustomObject.Type)
	require.True(t, js.CustomObject.Properties["nonce"].RawEquals(cty.StringVal("abc")))

	require.Len(t, js.PreModifiers, 1)
	require.Equal(t, "order_by_kind", js.PreModifiers[0].Type)
	require.True(t, js.PreModifiers[0].Properties["order"].Type().IsTupleType())

	require.Len(t, js.Converters, 1)
	require.Equal(t, "join", js.Converters[0].Type)
	require.True(t, js.Converters[0].UseWhenBundled)

	banner := js.PostModifiers[0]
	require.Equal(t, "debug_only", banner.EmitMode)
	require.False(t, banner.UseWhenBundled)
	require.Equal(t, []string{"legacy"}, banner.IgnoreMissing)
	require.Len(t, banner.Properties, 1)

	require.Len(t, js.Writers, 1)
	require.Empty(t, js.Writers[0].Properties)

	require.Len(t, model.Bundles, 1)
	footer := model.Bundles[0]
	require.Equal(t, "footer", footer.Key)
	require.Equal(t, []string{"a", "b"}, footer.Emitters)
	require.Nil(t, footer.CustomObject)
	require.Len(t, footer.PostModifiers, 1)
	require.True(t, footer.PostModifiers[0].Properties["strict"].RawEquals(cty.True))
	require.Len(t, footer.Writers, 1)
}

func TestLoader_WalksDirectories(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{
		"a/one.hcl":   `emitter "one" {}`,
		"b/two.hcl":   `emitter "two" {}`,
		"b/notes.txt": `emitter "ignored" {}`,
	})
	ctx, _ := testutil.NewContext(t)

	model, err := hcl_adapter.NewLoader().Load(ctx, dir, filepath.Join(dir, "a", "one.hcl"))
	require.NoError(t, err)

	var keys []string
	for _, e := range model.Emitters {
		keys = append(keys, e.Key)
	}
	require.ElementsMatch(t, []string{"one", "two"}, keys, "files are loaded once even when listed twice")
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		want    string
	}{
		{name: "syntax error", content: `emitter "x" {`, want: "failed to parse HCL file"},
		{name: "unsupported block", content: `emitter "x" {
  bogus {}
}`, want: "failed to decode HCL file"},
		{name: "bad reserved attribute", content: `emitter "x" {
  converter "join" {
    use_when_bundled = "maybe"
  }
}`, want: "use_when_bundled"},
		{name: "variable reference", content: `emitter "x" {
  converter "join" {
    terminator = var.t
  }
}`, want: "in emitter 'x'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := testutil.WriteFile(t, "bad.hcl", tc.content)
			ctx, _ := testutil.NewContext(t)

			_, err := hcl_adapter.NewLoader().Load(ctx, path)
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestLoader_MissingPath(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewContext(t)
	_, err := hcl_adapter.NewLoader().Load(ctx, filepath.Join(t.TempDir(), "missing.hcl"))
	require.ErrorContains(t, err, "error accessing path")
}
