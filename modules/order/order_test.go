package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/emitgrid/internal/declaration"
	"github.com/vk/emitgrid/internal/stage"
)

func renders(decls []declaration.Declaration) []string {
	out := make([]string, len(decls))
	for i, d := range decls {
		out[i] = d.Render()
	}
	return out
}

func input() []declaration.Declaration {
	return []declaration.Declaration{
		declaration.NewFunctionCall("init", nil),
		declaration.NewVariable("a", 1),
		declaration.NewComment("c1"),
		declaration.NewRaw("", "raw();"),
		declaration.NewVariable("b", 2),
		declaration.NewComment("c2"),
	}
}

func TestOrderByKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		order []string
		want  []string
	}{
		{
			name: "default order",
			want: []string{"/* c1 */", "/* c2 */", "var a = 1", "var b = 2", "init()", "raw();"},
		},
		{
			name:  "partial order keeps the rest stable",
			order: []string{"variable"},
			want:  []string{"var a = 1", "var b = 2", "init()", "/* c1 */", "raw();", "/* c2 */"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := NewOrderByKind(&OrderByKindOptions{Order: tt.order})
			require.NoError(t, err)

			in := input()
			out, err := m.ModifyPre(stage.PreArgs{Declarations: in})
			require.NoError(t, err)
			assert.Equal(t, tt.want, renders(out.Declarations))
			assert.Equal(t, "init()", in[0].Render(), "input slice must not be reordered")
		})
	}
}

func TestOrderByKindInvalid(t *testing.T) {
	t.Parallel()

	_, err := NewOrderByKind(&OrderByKindOptions{Order: []string{"macro"}})
	assert.ErrorContains(t, err, `unknown kind "macro"`)

	_, err = NewOrderByKind(&OrderByKindOptions{Order: []string{"raw", "raw"}})
	assert.ErrorContains(t, err, "listed twice")
}

func TestStripComments(t *testing.T) {
	t.Parallel()
	m, err := NewStripComments(&struct{}{})
	require.NoError(t, err)

	out, err := m.ModifyPre(stage.PreArgs{Declarations: input(), IsDebug: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"init()", "var a = 1", "raw();", "var b = 2"}, renders(out.Declarations))
	assert.True(t, out.IsDebug)
}
