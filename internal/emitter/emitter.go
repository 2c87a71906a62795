// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package emitter

import (
	"fmt"
	"html/template"
	"slices"

	"github.com/vk/emitgrid/internal/declaration"
	"github.com/vk/emitgrid/internal/stage"
)

// Emitter is a named pipeline rendering the declarations that target Key.
type Emitter struct {
	Key       string
	IsDefault bool

	// CustomObject is handed to every stage through the envelopes.
	CustomObject any

	PreModifiers  []stage.Bound[stage.PreModifier]
	Converter     *stage.Bound[stage.Converter]
	PostModifiers []stage.Bound[stage.PostModifier]

	// Writer may be nil only for emitters that are rendered exclusively as
	// bundle members.
	Writer *stage.Bound[stage.Writer]

	// Debug is the debug context the pipeline was built for.
	Debug bool
}

// Process renders declarations through the full pipeline.
func (e *Emitter) Process(decls []declaration.Declaration) (template.HTML, error) {
	if e.Converter == nil {
		return "", fmt.Errorf("emitter '%s': %w", e.Key, ErrConverterNotConfigured)
	}
	if e.Writer == nil {
		return "", fmt.Errorf("emitter '%s': %w", e.Key, ErrWriterNotConfigured)
	}

	post, err := e.run(decls, e.CustomObject, false)
	if err != nil {
		return "", err
	}

	out, err := e.Writer.Stage.Write(post)
	if err != nil {
		return "", fmt.Errorf("emitter '%s': %w", e.Key, &stage.Error{Type: e.Writer.Type, Err: err})
	}
	return out, nil
}

// ProcessBundled renders declarations the way a bundle does for its members:
// only stages flagged use-when-bundled run, and the writer is skipped. The
// stages see customObject, which is the enclosing bundle's, in place of the
// emitter's own.
func (e *Emitter) ProcessBundled(decls []declaration.Declaration, customObject any) (string, error) {
	if e.Converter == nil {
		return "", fmt.Errorf("emitter '%s': %w", e.Key, ErrConverterNotConfigured)
	}
	post, err := e.run(decls, customObject, true)
	if err != nil {
		return "", err
	}
	return post.Emitted, nil
}

func (e *Emitter) run(decls []declaration.Declaration, customObject any, bundled bool) (stage.PostArgs, error) {
	pre := stage.PreArgs{
		// Stages get their own copy; reordering it must not touch the caller's slice.
		Declarations: slices.Clone(decls),
		CustomObject: customObject,
		IsDebug:      e.Debug,
	}

	pre, err := stage.FoldPre(pre, e.PreModifiers, bundled)
	if err != nil {
		return stage.PostArgs{}, fmt.Errorf("emitter '%s': %w", e.Key, err)
	}

	post, err := e.Converter.Stage.Convert(pre)
	if err != nil {
		return stage.PostArgs{}, fmt.Errorf("emitter '%s': %w", e.Key, &stage.Error{Type: e.Converter.Type, Err: err})
	}
	post.IsDebug = e.Debug
	if post.CustomObject == nil {
		post.CustomObject = pre.CustomObject
	}

	post, err = stage.FoldPost(post, e.PostModifiers, bundled)
	if err != nil {
		return stage.PostArgs{}, fmt.Errorf("emitter '%s': %w", e.Key, err)
	}
	return post, nil
}
