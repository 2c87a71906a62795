// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package builder

import (
	"context"
	"fmt"

	"github.com/vk/emitgrid/internal/config"
	"github.com/vk/emitgrid/internal/ctxlog"
	"github.com/vk/emitgrid/internal/emitter"
	"github.com/vk/emitgrid/internal/handlers"
	"github.com/vk/emitgrid/internal/stage"
)

// DefaultBuilder builds catalogs from registered handlers for one debug
// context.
type DefaultBuilder struct {
	handlers *handlers.Handlers
	isDebug  bool
}

// New creates a builder resolving stage types against h.
func New(h *handlers.Handlers, isDebug bool) *DefaultBuilder {
	return &DefaultBuilder{handlers: h, isDebug: isDebug}
}

// Build is a shorthand for New(h, isDebug).Build(ctx, model).
func Build(ctx context.Context, model *config.Model, h *handlers.Handlers, isDebug bool) (*emitter.Catalog, error) {
	return New(h, isDebug).Build(ctx, model)
}

// Build implements the Builder interface.
func (b *DefaultBuilder) Build(ctx context.Context, model *config.Model) (*emitter.Catalog, error) {
	logger := ctxlog.FromContext(ctx).With("debug", b.isDebug)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Building emitter catalog.", "emitters", len(model.Emitters), "bundles", len(model.Bundles))

	if err := validateKeys(model); err != nil {
		return nil, err
	}

	bundled := make(map[string]bool)
	for _, bd := range model.Bundles {
		for _, key := range bd.Emitters {
			bundled[key] = true
		}
	}

	emitters := make([]*emitter.Emitter, 0, len(model.Emitters))
	known := make(map[string]bool, len(model.Emitters))
	for _, def := range model.Emitters {
		e, err := b.buildEmitter(ctx, def, bundled[def.Key])
		if err != nil {
			return nil, err
		}
		emitters = append(emitters, e)
		known[def.Key] = true
	}

	bundles := make([]*emitter.Bundle, 0, len(model.Bundles))
	for _, def := range model.Bundles {
		for _, key := range def.Emitters {
			if !known[key] {
				logger.Warn("Bundle member matches no emitter and will render nothing.", "bundle", def.Key, "member", key)
			}
		}
		bnd, err := b.buildBundle(ctx, def)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, bnd)
	}

	catalog := emitter.NewCatalog(emitters, bundles)
	logger.Debug("Emitter catalog built.", "default", catalog.DefaultKey(), "unbundled", catalog.UnbundledKeys())
	return catalog, nil
}

func (b *DefaultBuilder) buildEmitter(ctx context.Context, def *config.EmitterDefinition, bundled bool) (*emitter.Emitter, error) {
	owner := fmt.Sprintf("emitter '%s'", def.Key)
	logger := ctxlog.FromContext(ctx).With("emitter", def.Key)

	e := &emitter.Emitter{Key: def.Key, IsDefault: def.Default, Debug: b.isDebug}

	var err error
	if e.CustomObject, err = b.customObject(ctx, def.CustomObject); err != nil {
		return nil, fmt.Errorf("%s: %w", owner, err)
	}
	if e.PreModifiers, err = activeStages[stage.PreModifier](ctx, b, handlers.KindPreModifier, def.PreModifiers); err != nil {
		return nil, fmt.Errorf("%s: %w", owner, err)
	}
	if e.PostModifiers, err = activeStages[stage.PostModifier](ctx, b, handlers.KindPostModifier, def.PostModifiers); err != nil {
		return nil, fmt.Errorf("%s: %w", owner, err)
	}

	converters, err := activeStages[stage.Converter](ctx, b, handlers.KindConverter, def.Converters)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", owner, err)
	}
	if e.Converter, err = single(b, owner, handlers.KindConverter, converters); err != nil {
		return nil, err
	}
	if e.Converter == nil {
		return nil, fmt.Errorf("%s: %w", owner, emitter.ErrConverterNotConfigured)
	}

	writers, err := activeStages[stage.Writer](ctx, b, handlers.KindWriter, def.Writers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", owner, err)
	}
	if e.Writer, err = single(b, owner, handlers.KindWriter, writers); err != nil {
		return nil, err
	}
	if e.Writer == nil && !bundled {
		return nil, fmt.Errorf("%s is not a bundle member: %w", owner, emitter.ErrWriterNotConfigured)
	}

	logger.Debug("Emitter built.",
		"pre_modifiers", len(e.PreModifiers),
		"converter", e.Converter.Type,
		"post_modifiers", len(e.PostModifiers),
		"has_writer", e.Writer != nil,
	)
	return e, nil
}

func (b *DefaultBuilder) buildBundle(ctx context.Context, def *config.BundleDefinition) (*emitter.Bundle, error) {
	owner := fmt.Sprintf("bundle '%s'", def.Key)

	bnd := &emitter.Bundle{Key: def.Key, MemberKeys: def.Emitters, Debug: b.isDebug}

	var err error
	if bnd.CustomObject, err = b.customObject(ctx, def.CustomObject); err != nil {
		return nil, fmt.Errorf("%s: %w", owner, err)
	}
	if bnd.PostModifiers, err = activeStages[stage.PostModifier](ctx, b, handlers.KindPostModifier, def.PostModifiers); err != nil {
		return nil, fmt.Errorf("%s: %w", owner, err)
	}

	writers, err := activeStages[stage.Writer](ctx, b, handlers.KindWriter, def.Writers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", owner, err)
	}
	if bnd.Writer, err = single(b, owner, handlers.KindWriter, writers); err != nil {
		return nil, err
	}
	if bnd.Writer == nil {
		return nil, fmt.Errorf("%s: %w", owner, emitter.ErrWriterNotConfigured)
	}

	ctxlog.FromContext(ctx).Debug("Bundle built.", "bundle", def.Key, "members", def.Emitters, "post_modifiers", len(bnd.PostModifiers))
	return bnd, nil
}

func (b *DefaultBuilder) customObject(ctx context.Context, def *config.ObjectDefinition) (any, error) {
	if def == nil {
		return nil, nil
	}
	return b.handlers.NewObject(ctx, def)
}

// activeStages instantiates every configured stage, so misconfigured stages
// fail in both debug contexts, and keeps those emittable in b's context.
func activeStages[T any](ctx context.Context, b *DefaultBuilder, kind handlers.Kind, defs []*config.StageDefinition) ([]stage.Bound[T], error) {
	logger := ctxlog.FromContext(ctx)
	var active []stage.Bound[T]
	for _, def := range defs {
		bound, err := handlers.Bind[T](ctx, b.handlers, kind, def)
		if err != nil {
			return nil, err
		}
		if !stage.IsCurrentlyEmittable(bound.Mode, b.isDebug) {
			logger.Debug("Stage gated out by emit mode.", "kind", kind, "type", def.Type, "emit_mode", bound.Mode)
			continue
		}
		active = append(active, bound)
	}
	return active, nil
}

// single returns the only active stage of a single-stage slot, or nil when
// the slot is empty.
func single[T any](b *DefaultBuilder, owner string, kind handlers.Kind, active []stage.Bound[T]) (*stage.Bound[T], error) {
	switch len(active) {
	case 0:
		return nil, nil
	case 1:
		return &active[0], nil
	}
	types := make([]string, len(active))
	for i, s := range active {
		types[i] = s.Type
	}
	return nil, &MultipleActiveStagesError{Owner: owner, Slot: kind, Types: types, IsDebug: b.isDebug}
}
