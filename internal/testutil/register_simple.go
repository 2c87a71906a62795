package testutil

import (
	"html/template"
	"strings"

	"github.com/vk/emitgrid/internal/declaration"
	"github.com/vk/emitgrid/internal/handlers"
	"github.com/vk/emitgrid/internal/stage"
)

// JoinOptions configures the "test_join" converter.
type JoinOptions struct {
	Separator string `emit:"separator"`
}

// WrapOptions configures the "test_wrap" writer.
type WrapOptions struct {
	Open  string `emit:"open"`
	Close string `emit:"close"`
}

// SuffixOptions configures the "test_suffix" modifiers.
type SuffixOptions struct {
	Suffix string `emit:"suffix"`
}

// Object is the "test_object" custom object.
type Object struct {
	Label string `emit:"label"`
}

// SimpleModule registers small, predictable stages for tests:
//
//   - test_join converter: renders declarations joined by separator.
//   - test_wrap writer: wraps the text in open and close.
//   - test_delimited writer: joins non-empty lines with separator.
//   - test_suffix post-modifier: appends suffix.
//   - test_prefix pre-modifier: prepends a raw declaration holding suffix.
//   - test_label writer: prefixes the text with the *Object label.
//   - test_object custom object.
type SimpleModule struct{}

// Register implements the handlers.Module interface.
func (m *SimpleModule) Register(h *handlers.Handlers) {
	handlers.RegisterConverter(h, "test_join", func(o *JoinOptions) (stage.Converter, error) {
		return JoinConverter(nil, "", o.Separator), nil
	})
	handlers.RegisterWriter(h, "test_wrap", func(o *WrapOptions) (stage.Writer, error) {
		return WrapWriter(o.Open, o.Close), nil
	})
	handlers.RegisterWriter(h, "test_delimited", func(o *JoinOptions) (stage.Writer, error) {
		return DelimitedWriter(o.Separator), nil
	})
	handlers.RegisterPostModifier(h, "test_suffix", func(o *SuffixOptions) (stage.PostModifier, error) {
		return SuffixPost(o.Suffix), nil
	})
	handlers.RegisterPreModifier(h, "test_prefix", func(o *SuffixOptions) (stage.PreModifier, error) {
		return stage.PreModifierFunc(func(a stage.PreArgs) (stage.PreArgs, error) {
			a.Declarations = append([]declaration.Declaration{declaration.NewRaw("", o.Suffix)}, a.Declarations...)
			return a, nil
		}), nil
	})
	handlers.RegisterWriter(h, "test_label", func(*struct{}) (stage.Writer, error) {
		return stage.WriterFunc(func(a stage.PostArgs) (template.HTML, error) {
			label := ""
			if obj, ok := a.CustomObject.(*Object); ok {
				label = obj.Label
			}
			return template.HTML(strings.TrimSpace(label + " " + a.Emitted)), nil
		}), nil
	})
	handlers.RegisterObject[Object](h, "test_object")
}

// NewHandlers returns a catalogue with SimpleModule registered.
func NewHandlers() *handlers.Handlers {
	h := handlers.New()
	(&SimpleModule{}).Register(h)
	return h
}
