// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package stage

import "html/template"

// PreModifier transforms the declaration set before conversion.
type PreModifier interface {
	ModifyPre(args PreArgs) (PreArgs, error)
}

// Converter turns the declaration set into text. Every emitter has exactly one.
type Converter interface {
	Convert(args PreArgs) (PostArgs, error)
}

// PostModifier transforms the converted text.
type PostModifier interface {
	ModifyPost(args PostArgs) (PostArgs, error)
}

// Writer produces the final markup. Its output is inserted into the page
// without further escaping.
type Writer interface {
	Write(args PostArgs) (template.HTML, error)
}

// PreModifierFunc adapts a function to PreModifier.
type PreModifierFunc func(PreArgs) (PreArgs, error)

func (f PreModifierFunc) ModifyPre(args PreArgs) (PreArgs, error) { return f(args) }

// ConverterFunc adapts a function to Converter.
type ConverterFunc func(PreArgs) (PostArgs, error)

func (f ConverterFunc) Convert(args PreArgs) (PostArgs, error) { return f(args) }

// PostModifierFunc adapts a function to PostModifier.
type PostModifierFunc func(PostArgs) (PostArgs, error)

func (f PostModifierFunc) ModifyPost(args PostArgs) (PostArgs, error) { return f(args) }

// WriterFunc adapts a function to Writer.
type WriterFunc func(PostArgs) (template.HTML, error)

func (f WriterFunc) Write(args PostArgs) (template.HTML, error) { return f(args) }
