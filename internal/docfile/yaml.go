// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package docfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/emitgrid/internal/config"
	"github.com/vk/emitgrid/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// YAMLLoader reads configuration from YAML files.
type YAMLLoader struct{}

func NewYAMLLoader() *YAMLLoader { return &YAMLLoader{} }

// Load decodes each path in turn and merges the results. Unknown keys are
// rejected.
func (l *YAMLLoader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{}

	for _, path := range paths {
		var doc Document
		if err := decodeYAMLFile(path, &doc); err != nil {
			return nil, err
		}
		m, err := doc.Model(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		model.Merge(m)
		logger.Debug("YAML file loaded.", "file", path, "emitters", len(m.Emitters), "bundles", len(m.Bundles))
	}
	return model, nil
}

func decodeYAMLFile(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: failed to parse YAML: %w", path, err)
	}
	return nil
}
