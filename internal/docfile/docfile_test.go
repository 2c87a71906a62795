package docfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/emitgrid/internal/config"
	"github.com/vk/emitgrid/internal/declaration"
	"github.com/vk/emitgrid/internal/docfile"
	"github.com/vk/emitgrid/internal/testutil"
	"github.com/zclconf/go-cty/cty"
)

const yamlConfig = `
emitters:
  - key: js
    default: true
    custom_object:
      type: script_context
      properties:
        nonce: abc
    converters:
      - type: join
        properties:
          terminator: ";"
    post_modifiers:
      - type: comment_banner
        emit_mode: debug_only
        use_when_bundled: false
        properties:
          text: page scripts
    writers:
      - type: script_tag
  - key: a
    converters:
      - type: join
bundles:
  - key: footer
    emitters: [a]
    writers:
      - type: raw
`

const tomlConfig = `
[[emitters]]
key = "js"
default = true

[emitters.custom_object]
type = "script_context"

[emitters.custom_object.properties]
nonce = "abc"

[[emitters.converters]]
type = "join"

[emitters.converters.properties]
terminator = ";"

[[emitters.post_modifiers]]
type = "comment_banner"
emit_mode = "debug_only"
use_when_bundled = false

[emitters.post_modifiers.properties]
text = "page scripts"

[[emitters.writers]]
type = "script_tag"

[[emitters]]
key = "a"

[[emitters.converters]]
type = "join"

[[bundles]]
key = "footer"
emitters = ["a"]

[[bundles.writers]]
type = "raw"
`

func TestLoaders_ProduceSameModel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		file   string
		body   string
		loader config.Loader
	}{
		{name: "yaml", file: "emitters.yaml", body: yamlConfig, loader: docfile.NewYAMLLoader()},
		{name: "toml", file: "emitters.toml", body: tomlConfig, loader: docfile.NewTOMLLoader()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := testutil.WriteFile(t, tc.file, tc.body)
			ctx, _ := testutil.NewContext(t)

			model, err := tc.loader.Load(ctx, path)
			require.NoError(t, err)

			require.Len(t, model.Emitters, 2)
			js := model.Emitters[0]
			require.Equal(t, "js", js.Key)
			require.True(t, js.Default)
			require.Equal(t, path, js.Source)
			require.Equal(t, "script_context", js.CustomObject.Type)
			require.True(t, js.CustomObject.Properties["nonce"].RawEquals(cty.StringVal("abc")))

			require.Len(t, js.Converters, 1)
			require.True(t, js.Converters[0].UseWhenBundled, "use_when_bundled defaults to true")
			require.True(t, js.Converters[0].Properties["terminator"].RawEquals(cty.StringVal(";")))

			banner := js.PostModifiers[0]
			require.Equal(t, "debug_only", banner.EmitMode)
			require.False(t, banner.UseWhenBundled)
			require.True(t, banner.Properties["text"].RawEquals(cty.StringVal("page scripts")))

			require.Len(t, js.Writers, 1)
			require.False(t, model.Emitters[1].Default)
			require.Empty(t, model.Emitters[1].Writers)

			require.Len(t, model.Bundles, 1)
			require.Equal(t, []string{"a"}, model.Bundles[0].Emitters)
			require.Equal(t, "raw", model.Bundles[0].Writers[0].Type)
		})
	}
}

func TestLoaders_RejectUnknownKeys(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewContext(t)

	yamlPath := testutil.WriteFile(t, "bad.yaml", "emitters:\n  - key: js\n    colour: red\n")
	_, err := docfile.NewYAMLLoader().Load(ctx, yamlPath)
	require.ErrorContains(t, err, "failed to parse YAML")

	tomlPath := testutil.WriteFile(t, "bad.toml", "[[emitters]]\nkey = \"js\"\ncolour = \"red\"\n")
	_, err = docfile.NewTOMLLoader().Load(ctx, tomlPath)
	require.ErrorContains(t, err, "unknown keys: emitters.colour")
}

func TestLoaders_StageWithoutType(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewContext(t)
	path := testutil.WriteFile(t, "bad.yaml", "emitters:\n  - key: js\n    converters:\n      - properties: {a: 1}\n")
	_, err := docfile.NewYAMLLoader().Load(ctx, path)
	require.ErrorContains(t, err, "stage without a type")
}

func TestReadDeclarations(t *testing.T) {
	t.Parallel()

	yamlDecls := `
declarations:
  - kind: variable
    name: x
    value: 1
  - kind: call
    function: init
    args: [1, "a"]
    target: footer
  - kind: comment
    text: note
  - kind: raw
    name: r
    text: console.log(1)
`
	tomlDecls := `
[[declarations]]
kind = "variable"
name = "x"
value = 1

[[declarations]]
kind = "call"
function = "init"
args = [1, "a"]
target = "footer"

[[declarations]]
kind = "comment"
text = "note"

[[declarations]]
kind = "raw"
name = "r"
text = "console.log(1)"
`

	for name, file := range map[string]string{
		"decls.yaml": yamlDecls,
		"decls.toml": tomlDecls,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			decls, err := docfile.ReadDeclarations(testutil.WriteFile(t, name, file))
			require.NoError(t, err)
			require.Len(t, decls, 4)

			var rendered []string
			for _, d := range decls {
				rendered = append(rendered, d.Render())
			}
			require.Equal(t, []string{
				"var x = 1",
				`init(1, "a")`,
				"/* note */",
				"console.log(1)",
			}, rendered)
			require.Equal(t, "footer", decls[1].TargetKey())
			require.Equal(t, declaration.KindCall, decls[1].Kind())
			require.Equal(t, "init", decls[1].Name())
		})
	}
}

func TestReadDeclarations_Errors(t *testing.T) {
	t.Parallel()

	_, err := docfile.ReadDeclarations(testutil.WriteFile(t, "decls.json", "[]"))
	require.ErrorContains(t, err, "unsupported declarations file extension")

	_, err = docfile.ReadDeclarations(testutil.WriteFile(t, "decls.yaml", "declarations:\n  - kind: macro\n"))
	require.ErrorContains(t, err, `unknown declaration kind "macro"`)

	_, err = docfile.ReadDeclarations(testutil.WriteFile(t, "decls.yaml", "declarations:\n  - kind: variable\n"))
	require.ErrorContains(t, err, "a variable needs a name")
}

func TestDecodeDeclarations(t *testing.T) {
	t.Parallel()

	decls, err := docfile.DecodeDeclarations(strings.NewReader("declarations:\n  - kind: raw\n    text: hi\n"))
	require.NoError(t, err)
	require.Len(t, decls, 1)
	require.Equal(t, "hi", decls[0].Render())

	decls, err = docfile.DecodeDeclarations(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, decls)

	_, err = docfile.DecodeDeclarations(strings.NewReader("declarations: 3"))
	require.ErrorContains(t, err, "failed to parse YAML")
}
