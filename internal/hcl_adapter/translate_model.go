// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// This file contains the logic for translating the HCL schema structs into
// the format-agnostic configuration model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/emitgrid/internal/config"
	"github.com/vk/emitgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

func (l *Loader) translateEmitter(ctx context.Context, file string, e *emitterBlock) (*config.EmitterDefinition, error) {
	logger := ctxlog.FromContext(ctx).With("emitter", e.Key, "file", file)
	logger.Debug("Translating HCL emitter to internal config model.")

	def := &config.EmitterDefinition{
		Key:     e.Key,
		Default: e.Default,
		Source:  file,
	}

	var err error
	if def.CustomObject, err = translateObject(file, e.CustomObject); err != nil {
		return nil, fmt.Errorf("in emitter '%s': %w", e.Key, err)
	}
	slots := []struct {
		in  []*stageBlock
		out *[]*config.StageDefinition
	}{
		{e.PreModifiers, &def.PreModifiers},
		{e.Converters, &def.Converters},
		{e.PostModifiers, &def.PostModifiers},
		{e.Writers, &def.Writers},
	}
	for _, slot := range slots {
		if *slot.out, err = translateStages(file, slot.in); err != nil {
			return nil, fmt.Errorf("in emitter '%s': %w", e.Key, err)
		}
	}
	return def, nil
}

func (l *Loader) translateBundle(ctx context.Context, file string, b *bundleBlock) (*config.BundleDefinition, error) {
	ctxlog.FromContext(ctx).Debug("Translating HCL bundle to internal config model.", "bundle", b.Key, "file", file)

	def := &config.BundleDefinition{
		Key:      b.Key,
		Emitters: b.Emitters,
		Source:   file,
	}

	var err error
	if def.CustomObject, err = translateObject(file, b.CustomObject); err != nil {
		return nil, fmt.Errorf("in bundle '%s': %w", b.Key, err)
	}
	if def.PostModifiers, err = translateStages(file, b.PostModifiers); err != nil {
		return nil, fmt.Errorf("in bundle '%s': %w", b.Key, err)
	}
	if def.Writers, err = translateStages(file, b.Writers); err != nil {
		return nil, fmt.Errorf("in bundle '%s': %w", b.Key, err)
	}
	return def, nil
}

func translateStages(file string, blocks []*stageBlock) ([]*config.StageDefinition, error) {
	defs := make([]*config.StageDefinition, 0, len(blocks))
	for _, blk := range blocks {
		attrs, err := evalBodyAttributes(blk.Body)
		if err != nil {
			return nil, fmt.Errorf("stage '%s': %w", blk.Type, err)
		}
		def, err := config.NewStageDefinition(blk.Type, file, attrs)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func translateObject(file string, blk *stageBlock) (*config.ObjectDefinition, error) {
	if blk == nil {
		return nil, nil
	}
	attrs, err := evalBodyAttributes(blk.Body)
	if err != nil {
		return nil, fmt.Errorf("custom object '%s': %w", blk.Type, err)
	}
	return config.NewObjectDefinition(blk.Type, file, attrs)
}

// evalBodyAttributes evaluates every attribute of body. Attribute values are
// literals; no variables or functions are in scope.
func evalBodyAttributes(body hcl.Body) (map[string]cty.Value, error) {
	if body == nil {
		return nil, nil
	}
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	values := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		values[name] = val
	}
	return values, nil
}
