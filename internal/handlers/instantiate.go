// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package handlers

import (
	"context"
	"fmt"

	"github.com/vk/emitgrid/internal/bind"
	"github.com/vk/emitgrid/internal/config"
	"github.com/vk/emitgrid/internal/ctxlog"
	"github.com/vk/emitgrid/internal/stage"
	"github.com/zclconf/go-cty/cty"
)

// NewStage builds the stage def names, checking it is registered as kind
// and that the result implements T.
func NewStage[T any](ctx context.Context, h *Handlers, kind Kind, def *config.StageDefinition) (T, error) {
	var zero T

	r, ok := h.Lookup(def.Type)
	if !ok {
		return zero, fmt.Errorf("%s '%s': %w", kind, def.Type, ErrUnknownType)
	}
	if r.Kind != kind {
		return zero, &KindMismatchError{Name: def.Type, Want: kind, Got: r.Kind}
	}

	built, err := build(ctx, r, def.Properties, def.IgnoreMissing)
	if err != nil {
		return zero, fmt.Errorf("%s '%s': %w", kind, def.Type, err)
	}
	s, ok := built.(T)
	if !ok {
		return zero, fmt.Errorf("%s '%s': factory returned %T", kind, def.Type, built)
	}
	return s, nil
}

// NewObject instantiates the custom object def names.
func (h *Handlers) NewObject(ctx context.Context, def *config.ObjectDefinition) (any, error) {
	r, ok := h.Lookup(def.Type)
	if !ok || r.Kind != KindObject {
		return nil, &InvalidCustomObjectTypeError{Name: def.Type}
	}
	obj, err := build(ctx, r, def.Properties, def.IgnoreMissing)
	if err != nil {
		return nil, fmt.Errorf("custom object '%s': %w", def.Type, err)
	}
	return obj, nil
}

// Bind builds def as a stage of kind and wraps it with def's gating flags.
func Bind[T any](ctx context.Context, h *Handlers, kind Kind, def *config.StageDefinition) (stage.Bound[T], error) {
	s, err := NewStage[T](ctx, h, kind, def)
	if err != nil {
		return stage.Bound[T]{}, err
	}
	mode, err := stage.ParseEmitMode(def.EmitMode)
	if err != nil {
		return stage.Bound[T]{}, fmt.Errorf("%s '%s': %w", kind, def.Type, err)
	}
	b := stage.Bind(def.Type, s)
	b.Mode = mode
	b.UseWhenBundled = def.UseWhenBundled
	return b, nil
}

func build(ctx context.Context, r *RegisteredHandler, props map[string]cty.Value, ignoreMissing []string) (any, error) {
	opts := r.NewOptions()
	if err := bind.Assign(ctx, opts, props, ignoreMissing); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Instantiating handler.", "kind", r.Kind, "options", r.OptionsType.String())
	return r.Build(opts)
}
