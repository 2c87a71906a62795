package banner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/emitgrid/internal/stage"
)

func TestCommentBanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		in   string
		want string
	}{
		{
			name: "block",
			opts: Options{Text: "generated"},
			in:   "x();",
			want: "/* generated */\nx();",
		},
		{
			name: "block escapes terminator",
			opts: Options{Text: "a */ b"},
			in:   "x();",
			want: "/* a * / b */\nx();",
		},
		{
			name: "line multi",
			opts: Options{Text: "one\ntwo", Style: StyleLine},
			in:   "x();",
			want: "// one\n// two\nx();",
		},
		{
			name: "bottom",
			opts: Options{Text: "end", Bottom: true},
			in:   "x();",
			want: "x();\n/* end */",
		},
		{
			name: "empty input untouched",
			opts: Options{Text: "generated"},
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := tt.opts
			m, err := NewCommentBanner(&opts)
			require.NoError(t, err)

			out, err := m.ModifyPost(stage.PostArgs{Emitted: tt.in})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Emitted)
		})
	}
}

func TestCommentBannerInvalid(t *testing.T) {
	t.Parallel()

	_, err := NewCommentBanner(&Options{})
	assert.ErrorContains(t, err, "text is required")

	_, err = NewCommentBanner(&Options{Text: "x", Style: "html"})
	assert.ErrorContains(t, err, `unknown style "html"`)
}
