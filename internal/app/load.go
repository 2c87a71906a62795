// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/vk/emitgrid/internal/config"
	"github.com/vk/emitgrid/internal/ctxlog"
	"github.com/vk/emitgrid/internal/docfile"
	"github.com/vk/emitgrid/internal/hcl_adapter"
)

// LoaderFor picks the loader for a single path by extension. Directories and
// unknown extensions are read as HCL.
func LoaderFor(path string) config.Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return docfile.NewYAMLLoader()
	case ".toml":
		return docfile.NewTOMLLoader()
	default:
		return hcl_adapter.NewLoader()
	}
}

// MultiLoader loads each path with the loader LoaderFor picks and merges the
// results in path order.
type MultiLoader struct{}

func NewMultiLoader() *MultiLoader { return &MultiLoader{} }

// Load implements config.Loader.
func (l *MultiLoader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{}
	for _, path := range paths {
		m, err := LoaderFor(path).Load(ctx, path)
		if err != nil {
			return nil, err
		}
		model.Merge(m)
	}
	logger.Debug("Configuration loaded.", "paths", paths, "emitters", len(model.Emitters), "bundles", len(model.Bundles))
	return model, nil
}
