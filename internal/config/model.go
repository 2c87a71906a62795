// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Reserved attribute names recognised on every stage block. All other
// attributes are properties of the stage.
const (
	AttrEmitMode       = "emit_mode"
	AttrUseWhenBundled = "use_when_bundled"
	AttrIgnoreMissing  = "ignore_missing"
)

// Model is the unified, format-agnostic representation of the configured
// emitters and bundles, in declaration order.
type Model struct {
	Emitters []*EmitterDefinition
	Bundles  []*BundleDefinition
}

// Merge appends other's definitions after m's.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Emitters = append(m.Emitters, other.Emitters...)
	m.Bundles = append(m.Bundles, other.Bundles...)
}

// EmitterDefinition describes one emitter. Stage slots that allow a single
// active stage are still lists here; cardinality is checked by the builder
// after emit-mode gating.
type EmitterDefinition struct {
	Key          string
	Default      bool
	CustomObject *ObjectDefinition

	PreModifiers  []*StageDefinition
	Converters    []*StageDefinition
	PostModifiers []*StageDefinition
	Writers       []*StageDefinition

	// Source is the file the definition was read from.
	Source string
}

// BundleDefinition describes an emitter bundle.
type BundleDefinition struct {
	Key          string
	Emitters     []string
	CustomObject *ObjectDefinition

	PostModifiers []*StageDefinition
	Writers       []*StageDefinition

	Source string
}

// StageDefinition is one configured stage: a registered type name plus its
// gating flags and properties.
type StageDefinition struct {
	Type           string
	EmitMode       string
	UseWhenBundled bool
	Properties     map[string]cty.Value

	// IgnoreMissing lists property names that may be set even though the
	// stage's options have no field for them.
	IgnoreMissing []string

	Source string
}

// ObjectDefinition is a configured custom object.
type ObjectDefinition struct {
	Type          string
	Properties    map[string]cty.Value
	IgnoreMissing []string
	Source        string
}

// NewStageDefinition splits the reserved attributes out of attrs and keeps
// the remainder as properties. use_when_bundled defaults to true.
func NewStageDefinition(typeName, source string, attrs map[string]cty.Value) (*StageDefinition, error) {
	def := &StageDefinition{
		Type:           typeName,
		UseWhenBundled: true,
		Properties:     make(map[string]cty.Value, len(attrs)),
		Source:         source,
	}

	for name, val := range attrs {
		var err error
		switch name {
		case AttrEmitMode:
			err = decodeAttr(val, cty.String, &def.EmitMode)
		case AttrUseWhenBundled:
			err = decodeAttr(val, cty.Bool, &def.UseWhenBundled)
		case AttrIgnoreMissing:
			err = decodeAttr(val, cty.List(cty.String), &def.IgnoreMissing)
		default:
			def.Properties[name] = val
		}
		if err != nil {
			return nil, fmt.Errorf("stage '%s' in %s: attribute '%s': %w", typeName, source, name, err)
		}
	}
	return def, nil
}

// NewObjectDefinition keeps every attribute except ignore_missing as a
// property of the custom object.
func NewObjectDefinition(typeName, source string, attrs map[string]cty.Value) (*ObjectDefinition, error) {
	def := &ObjectDefinition{
		Type:       typeName,
		Properties: make(map[string]cty.Value, len(attrs)),
		Source:     source,
	}
	for name, val := range attrs {
		if name == AttrIgnoreMissing {
			if err := decodeAttr(val, cty.List(cty.String), &def.IgnoreMissing); err != nil {
				return nil, fmt.Errorf("custom object '%s' in %s: attribute '%s': %w", typeName, source, name, err)
			}
			continue
		}
		def.Properties[name] = val
	}
	return def, nil
}

func decodeAttr(val cty.Value, ty cty.Type, target any) error {
	if val.IsNull() {
		return nil
	}
	converted, err := convert.Convert(val, ty)
	if err != nil {
		return err
	}
	return gocty.FromCtyValue(converted, target)
}
