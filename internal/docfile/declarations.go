// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package docfile

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vk/emitgrid/internal/declaration"
	"gopkg.in/yaml.v3"
)

// DeclarationDoc is one entry of a declarations file.
type DeclarationDoc struct {
	Kind     string `yaml:"kind" toml:"kind"`
	Name     string `yaml:"name" toml:"name"`
	Target   string `yaml:"target" toml:"target"`
	Value    any    `yaml:"value" toml:"value"`
	Function string `yaml:"function" toml:"function"`
	Args     []any  `yaml:"args" toml:"args"`
	Text     string `yaml:"text" toml:"text"`
}

// DeclarationsFile is the on-disk shape of a declarations file.
type DeclarationsFile struct {
	Declarations []DeclarationDoc `yaml:"declarations" toml:"declarations"`
}

// ReadDeclarations decodes a YAML or TOML declarations file, chosen by
// extension, into declarations in file order.
func ReadDeclarations(path string) ([]declaration.Declaration, error) {
	var file DeclarationsFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := decodeYAMLFile(path, &file); err != nil {
			return nil, err
		}
	case ".toml":
		if err := decodeTOMLFile(path, &file); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%s: unsupported declarations file extension", path)
	}

	decls, err := file.build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return decls, nil
}

// DecodeDeclarations reads a YAML declarations document from r.
func DecodeDeclarations(r io.Reader) ([]declaration.Declaration, error) {
	var file DeclarationsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return file.build()
}

func (f *DeclarationsFile) build() ([]declaration.Declaration, error) {
	out := make([]declaration.Declaration, 0, len(f.Declarations))
	for i, d := range f.Declarations {
		decl, err := d.Declaration()
		if err != nil {
			return nil, fmt.Errorf("declaration %d: %w", i, err)
		}
		out = append(out, decl)
	}
	return out, nil
}

// Declaration builds the declaration d describes.
func (d DeclarationDoc) Declaration() (declaration.Declaration, error) {
	var opts []declaration.Option
	if d.Target != "" {
		opts = append(opts, declaration.WithTarget(d.Target))
	}

	switch declaration.Kind(d.Kind) {
	case declaration.KindVariable:
		if d.Name == "" {
			return nil, fmt.Errorf("a variable needs a name")
		}
		return declaration.NewVariable(d.Name, d.Value, opts...), nil
	case declaration.KindCall:
		if d.Function == "" {
			return nil, fmt.Errorf("a call needs a function")
		}
		if d.Name != "" {
			opts = append(opts, declaration.WithName(d.Name))
		}
		return declaration.NewFunctionCall(d.Function, d.Args, opts...), nil
	case declaration.KindComment:
		if d.Name != "" {
			opts = append(opts, declaration.WithName(d.Name))
		}
		return declaration.NewComment(d.Text, opts...), nil
	case declaration.KindRaw:
		return declaration.NewRaw(d.Name, d.Text, opts...), nil
	default:
		return nil, fmt.Errorf("unknown declaration kind %q", d.Kind)
	}
}
