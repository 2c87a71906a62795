package testutil

import (
	"html/template"
	"strings"

	"github.com/vk/emitgrid/internal/stage"
)

// TagPre returns a pre-modifier that appends tag to a shared trace. It is used
// to assert the order in which a pipeline runs its stages.
func TagPre(trace *[]string, tag string) stage.PreModifier {
	return stage.PreModifierFunc(func(a stage.PreArgs) (stage.PreArgs, error) {
		*trace = append(*trace, tag)
		return a, nil
	})
}

// JoinConverter renders every declaration and joins them with sep, recording
// tag in the trace when non-nil.
func JoinConverter(trace *[]string, tag, sep string) stage.Converter {
	return stage.ConverterFunc(func(a stage.PreArgs) (stage.PostArgs, error) {
		if trace != nil {
			*trace = append(*trace, tag)
		}
		parts := make([]string, 0, len(a.Declarations))
		for _, d := range a.Declarations {
			parts = append(parts, d.Render())
		}
		return stage.PostArgs{Emitted: strings.Join(parts, sep)}, nil
	})
}

// SuffixPost returns a post-modifier appending suffix to the emitted text.
func SuffixPost(suffix string) stage.PostModifier {
	return stage.PostModifierFunc(func(a stage.PostArgs) (stage.PostArgs, error) {
		a.Emitted += suffix
		return a, nil
	})
}

// WrapWriter returns a writer that wraps the emitted text in open and close.
func WrapWriter(open, close string) stage.Writer {
	return stage.WriterFunc(func(a stage.PostArgs) (template.HTML, error) {
		return template.HTML(open + a.Emitted + close), nil
	})
}

// DelimitedWriter joins the non-empty lines of the emitted text with delim.
func DelimitedWriter(delim string) stage.Writer {
	return stage.WriterFunc(func(a stage.PostArgs) (template.HTML, error) {
		var lines []string
		for _, line := range strings.Split(a.Emitted, "\n") {
			if line != "" {
				lines = append(lines, line)
			}
		}
		return template.HTML(strings.Join(lines, delim)), nil
	})
}
