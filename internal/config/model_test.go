package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestNewStageDefinition(t *testing.T) {
	t.Parallel()

	def, err := NewStageDefinition("comment_banner", "a.hcl", map[string]cty.Value{
		AttrEmitMode:       cty.StringVal("debug_only"),
		AttrUseWhenBundled: cty.False,
		AttrIgnoreMissing:  cty.TupleVal([]cty.Value{cty.StringVal("legacy")}),
		"text":             cty.StringVal("hello"),
	})
	require.NoError(t, err)
	require.Equal(t, "comment_banner", def.Type)
	require.Equal(t, "debug_only", def.EmitMode)
	require.False(t, def.UseWhenBundled)
	require.Equal(t, []string{"legacy"}, def.IgnoreMissing)
	require.Len(t, def.Properties, 1)
	require.True(t, def.Properties["text"].RawEquals(cty.StringVal("hello")))
}

func TestNewStageDefinition_Defaults(t *testing.T) {
	t.Parallel()

	def, err := NewStageDefinition("join", "a.hcl", nil)
	require.NoError(t, err)
	require.True(t, def.UseWhenBundled)
	require.Empty(t, def.EmitMode)
	require.Empty(t, def.Properties)
}

func TestNewStageDefinition_BadReservedAttribute(t *testing.T) {
	t.Parallel()

	_, err := NewStageDefinition("join", "a.hcl", map[string]cty.Value{
		AttrUseWhenBundled: cty.StringVal("perhaps"),
	})
	require.ErrorContains(t, err, "use_when_bundled")
}

func TestFromNative(t *testing.T) {
	t.Parallel()

	got, err := FromNative(map[string]any{
		"s":    "x",
		"n":    3,
		"f":    1.5,
		"b":    true,
		"list": []any{"a", int64(2)},
		"nil":  nil,
	})
	require.NoError(t, err)
	require.True(t, got.Type().IsObjectType())

	attrs := got.AsValueMap()
	require.True(t, attrs["s"].RawEquals(cty.StringVal("x")))
	require.True(t, attrs["n"].RawEquals(cty.NumberIntVal(3)))
	require.True(t, attrs["b"].RawEquals(cty.True))
	require.True(t, attrs["list"].Type().IsTupleType())
	require.True(t, attrs["nil"].IsNull())

	_, err = FromNative(struct{}{})
	require.Error(t, err)
}

func TestModel_Merge(t *testing.T) {
	t.Parallel()

	m := &Model{Emitters: []*EmitterDefinition{{Key: "a"}}}
	m.Merge(&Model{Emitters: []*EmitterDefinition{{Key: "b"}}, Bundles: []*BundleDefinition{{Key: "ab"}}})
	m.Merge(nil)

	require.Len(t, m.Emitters, 2)
	require.Equal(t, "b", m.Emitters[1].Key)
	require.Len(t, m.Bundles, 1)
}
