// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package docfile

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vk/emitgrid/internal/config"
	"github.com/vk/emitgrid/internal/ctxlog"
)

// TOMLLoader reads configuration from TOML files using [[emitters]] and
// [[bundles]] arrays of tables.
type TOMLLoader struct{}

func NewTOMLLoader() *TOMLLoader { return &TOMLLoader{} }

// Load decodes each path in turn and merges the results. Keys that do not
// map onto the document are rejected.
func (l *TOMLLoader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{}

	for _, path := range paths {
		var doc Document
		if err := decodeTOMLFile(path, &doc); err != nil {
			return nil, err
		}
		m, err := doc.Model(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		model.Merge(m)
		logger.Debug("TOML file loaded.", "file", path, "emitters", len(m.Emitters), "bundles", len(m.Bundles))
	}
	return model, nil
}

func decodeTOMLFile(path string, out any) error {
	meta, err := toml.DecodeFile(path, out)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}
