// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package docfile

import (
	"fmt"

	"github.com/vk/emitgrid/internal/config"
)

// Document is the on-disk shape of a YAML or TOML configuration file.
type Document struct {
	Emitters []EmitterDoc `yaml:"emitters" toml:"emitters"`
	Bundles  []BundleDoc  `yaml:"bundles" toml:"bundles"`
}

type EmitterDoc struct {
	Key           string     `yaml:"key" toml:"key"`
	Default       bool       `yaml:"default" toml:"default"`
	CustomObject  *ObjectDoc `yaml:"custom_object" toml:"custom_object"`
	PreModifiers  []StageDoc `yaml:"pre_modifiers" toml:"pre_modifiers"`
	Converters    []StageDoc `yaml:"converters" toml:"converters"`
	PostModifiers []StageDoc `yaml:"post_modifiers" toml:"post_modifiers"`
	Writers       []StageDoc `yaml:"writers" toml:"writers"`
}

type BundleDoc struct {
	Key           string     `yaml:"key" toml:"key"`
	Emitters      []string   `yaml:"emitters" toml:"emitters"`
	CustomObject  *ObjectDoc `yaml:"custom_object" toml:"custom_object"`
	PostModifiers []StageDoc `yaml:"post_modifiers" toml:"post_modifiers"`
	Writers       []StageDoc `yaml:"writers" toml:"writers"`
}

type StageDoc struct {
	Type     string `yaml:"type" toml:"type"`
	EmitMode string `yaml:"emit_mode" toml:"emit_mode"`

	// UseWhenBundled is a pointer so that an absent key keeps the default.
	UseWhenBundled *bool          `yaml:"use_when_bundled" toml:"use_when_bundled"`
	IgnoreMissing  []string       `yaml:"ignore_missing" toml:"ignore_missing"`
	Properties     map[string]any `yaml:"properties" toml:"properties"`
}

type ObjectDoc struct {
	Type          string         `yaml:"type" toml:"type"`
	IgnoreMissing []string       `yaml:"ignore_missing" toml:"ignore_missing"`
	Properties    map[string]any `yaml:"properties" toml:"properties"`
}

// Model translates the document into the format-agnostic model. source is
// recorded on every definition.
func (d *Document) Model(source string) (*config.Model, error) {
	model := &config.Model{}

	for _, e := range d.Emitters {
		def := &config.EmitterDefinition{Key: e.Key, Default: e.Default, Source: source}
		var err error
		if def.CustomObject, err = e.CustomObject.definition(source); err != nil {
			return nil, fmt.Errorf("in emitter '%s': %w", e.Key, err)
		}
		slots := []struct {
			in  []StageDoc
			out *[]*config.StageDefinition
		}{
			{e.PreModifiers, &def.PreModifiers},
			{e.Converters, &def.Converters},
			{e.PostModifiers, &def.PostModifiers},
			{e.Writers, &def.Writers},
		}
		for _, slot := range slots {
			if *slot.out, err = stageDefinitions(source, slot.in); err != nil {
				return nil, fmt.Errorf("in emitter '%s': %w", e.Key, err)
			}
		}
		model.Emitters = append(model.Emitters, def)
	}

	for _, b := range d.Bundles {
		def := &config.BundleDefinition{Key: b.Key, Emitters: b.Emitters, Source: source}
		var err error
		if def.CustomObject, err = b.CustomObject.definition(source); err != nil {
			return nil, fmt.Errorf("in bundle '%s': %w", b.Key, err)
		}
		if def.PostModifiers, err = stageDefinitions(source, b.PostModifiers); err != nil {
			return nil, fmt.Errorf("in bundle '%s': %w", b.Key, err)
		}
		if def.Writers, err = stageDefinitions(source, b.Writers); err != nil {
			return nil, fmt.Errorf("in bundle '%s': %w", b.Key, err)
		}
		model.Bundles = append(model.Bundles, def)
	}
	return model, nil
}

func stageDefinitions(source string, docs []StageDoc) ([]*config.StageDefinition, error) {
	defs := make([]*config.StageDefinition, 0, len(docs))
	for _, s := range docs {
		if s.Type == "" {
			return nil, fmt.Errorf("stage without a type")
		}
		props, err := config.PropertiesFromNative(s.Properties)
		if err != nil {
			return nil, fmt.Errorf("stage '%s': %w", s.Type, err)
		}
		useWhenBundled := true
		if s.UseWhenBundled != nil {
			useWhenBundled = *s.UseWhenBundled
		}
		defs = append(defs, &config.StageDefinition{
			Type:           s.Type,
			EmitMode:       s.EmitMode,
			UseWhenBundled: useWhenBundled,
			Properties:     props,
			IgnoreMissing:  s.IgnoreMissing,
			Source:         source,
		})
	}
	return defs, nil
}

func (o *ObjectDoc) definition(source string) (*config.ObjectDefinition, error) {
	if o == nil {
		return nil, nil
	}
	props, err := config.PropertiesFromNative(o.Properties)
	if err != nil {
		return nil, fmt.Errorf("custom object '%s': %w", o.Type, err)
	}
	return &config.ObjectDefinition{
		Type:          o.Type,
		Properties:    props,
		IgnoreMissing: o.IgnoreMissing,
		Source:        source,
	}, nil
}
