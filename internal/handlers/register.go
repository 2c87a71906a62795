// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package handlers

import (
	"reflect"

	"github.com/vk/emitgrid/internal/stage"
)

func register[O, T any](h *Handlers, kind Kind, name string, build func(*O) (T, error)) {
	h.RegisterHandler(name, &RegisteredHandler{
		Kind:        kind,
		NewOptions:  func() any { return new(O) },
		OptionsType: reflect.TypeOf((*O)(nil)).Elem(),
		Build: func(opts any) (any, error) {
			return build(opts.(*O))
		},
	})
}

// RegisterPreModifier registers a pre-modifier factory with options O.
func RegisterPreModifier[O any](h *Handlers, name string, build func(*O) (stage.PreModifier, error)) {
	register(h, KindPreModifier, name, build)
}

// RegisterConverter registers a converter factory with options O.
func RegisterConverter[O any](h *Handlers, name string, build func(*O) (stage.Converter, error)) {
	register(h, KindConverter, name, build)
}

// RegisterPostModifier registers a post-modifier factory with options O.
func RegisterPostModifier[O any](h *Handlers, name string, build func(*O) (stage.PostModifier, error)) {
	register(h, KindPostModifier, name, build)
}

// RegisterWriter registers a writer factory with options O.
func RegisterWriter[O any](h *Handlers, name string, build func(*O) (stage.Writer, error)) {
	register(h, KindWriter, name, build)
}

// RegisterObject registers O as a custom object type. The object handed to
// stages is the *O its properties were assigned to.
func RegisterObject[O any](h *Handlers, name string) {
	register(h, KindObject, name, func(o *O) (*O, error) { return o, nil })
}
