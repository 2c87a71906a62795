package handlers_test

import (
	"context"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/emitgrid/internal/bind"
	"github.com/vk/emitgrid/internal/config"
	"github.com/vk/emitgrid/internal/ctxlog"
	"github.com/vk/emitgrid/internal/handlers"
	"github.com/vk/emitgrid/internal/stage"
	"github.com/zclconf/go-cty/cty"
)

type suffixOptions struct {
	Suffix string `emit:"suffix"`
}

type contextObject struct {
	Nonce string `emit:"nonce"`
}

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newHandlers() *handlers.Handlers {
	h := handlers.New()
	handlers.RegisterPostModifier(h, "suffix", func(o *suffixOptions) (stage.PostModifier, error) {
		if o.Suffix == "" {
			return nil, errors.New("suffix must not be empty")
		}
		return stage.PostModifierFunc(func(a stage.PostArgs) (stage.PostArgs, error) {
			a.Emitted += o.Suffix
			return a, nil
		}), nil
	})
	handlers.RegisterWriter(h, "echo", func(*struct{}) (stage.Writer, error) {
		return stage.WriterFunc(func(a stage.PostArgs) (template.HTML, error) {
			return template.HTML(a.Emitted), nil
		}), nil
	})
	handlers.RegisterObject[contextObject](h, "ctx")
	return h
}

func TestRegisterHandler_DuplicatePanics(t *testing.T) {
	t.Parallel()

	h := newHandlers()
	require.Panics(t, func() {
		handlers.RegisterObject[contextObject](h, "suffix")
	})
}

func TestNames(t *testing.T) {
	t.Parallel()

	h := newHandlers()
	require.Equal(t, []string{"suffix"}, h.Names(handlers.KindPostModifier))
	require.Equal(t, []string{"ctx"}, h.Names(handlers.KindObject))
	require.Empty(t, h.Names(handlers.KindConverter))
	require.Equal(t, 3, h.Len())
}

func TestBind(t *testing.T) {
	t.Parallel()

	h := newHandlers()
	def := &config.StageDefinition{
		Type:           "suffix",
		EmitMode:       "debug-only",
		UseWhenBundled: false,
		Properties:     map[string]cty.Value{"suffix": cty.StringVal("!")},
	}

	b, err := handlers.Bind[stage.PostModifier](testContext(), h, handlers.KindPostModifier, def)
	require.NoError(t, err)
	require.Equal(t, "suffix", b.Type)
	require.Equal(t, stage.DebugOnly, b.Mode)
	require.False(t, b.UseWhenBundled)

	out, err := b.Stage.ModifyPost(stage.PostArgs{Emitted: "hi"})
	require.NoError(t, err)
	require.Equal(t, "hi!", out.Emitted)
}

func TestNewStage_Errors(t *testing.T) {
	t.Parallel()

	h := newHandlers()
	ctx := testContext()

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()
		_, err := handlers.NewStage[stage.Converter](ctx, h, handlers.KindConverter, &config.StageDefinition{Type: "nope"})
		require.ErrorIs(t, err, handlers.ErrUnknownType)
	})

	t.Run("kind mismatch", func(t *testing.T) {
		t.Parallel()
		_, err := handlers.NewStage[stage.Converter](ctx, h, handlers.KindConverter, &config.StageDefinition{Type: "echo"})
		var mismatch *handlers.KindMismatchError
		require.ErrorAs(t, err, &mismatch)
		require.Equal(t, handlers.KindWriter, mismatch.Got)
	})

	t.Run("unknown property", func(t *testing.T) {
		t.Parallel()
		_, err := handlers.NewStage[stage.Writer](ctx, h, handlers.KindWriter, &config.StageDefinition{
			Type:       "echo",
			Properties: map[string]cty.Value{"colour": cty.StringVal("red")},
		})
		var notFound *bind.PropertyNotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("factory error", func(t *testing.T) {
		t.Parallel()
		_, err := handlers.NewStage[stage.PostModifier](ctx, h, handlers.KindPostModifier, &config.StageDefinition{Type: "suffix"})
		require.ErrorContains(t, err, "suffix must not be empty")
	})

	t.Run("bad emit mode", func(t *testing.T) {
		t.Parallel()
		_, err := handlers.Bind[stage.Writer](ctx, h, handlers.KindWriter, &config.StageDefinition{Type: "echo", EmitMode: "sometimes"})
		require.ErrorContains(t, err, "sometimes")
	})
}

func TestNewObject(t *testing.T) {
	t.Parallel()

	h := newHandlers()
	ctx := testContext()

	obj, err := h.NewObject(ctx, &config.ObjectDefinition{
		Type:       "ctx",
		Properties: map[string]cty.Value{"nonce": cty.StringVal("abc")},
	})
	require.NoError(t, err)
	require.Equal(t, &contextObject{Nonce: "abc"}, obj)

	for _, name := range []string{"missing", "suffix"} {
		_, err := h.NewObject(ctx, &config.ObjectDefinition{Type: name})
		var invalid *handlers.InvalidCustomObjectTypeError
		require.ErrorAs(t, err, &invalid, name)
		require.Equal(t, name, invalid.Name)
	}
}
