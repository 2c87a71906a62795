// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"html/template"

	"github.com/vk/emitgrid/internal/declaration"
	"github.com/vk/emitgrid/internal/registry"
)

// RenderOptions selects which emit operation Render performs. Names wins
// over Keys; with neither set everything is emitted.
type RenderOptions struct {
	Names []string
	Keys  []string
}

// Render adds decls to r and emits them according to opts.
func Render(r *registry.Registry, decls []declaration.Declaration, opts RenderOptions) (template.HTML, error) {
	if _, err := r.AddMany(decls...); err != nil {
		return "", err
	}
	switch {
	case len(opts.Names) > 0:
		return r.Emit(opts.Names...)
	case len(opts.Keys) > 0:
		return r.EmitFor(opts.Keys...)
	default:
		return r.EmitAll()
	}
}

// RenderOnce runs one registry lifecycle outside of HTTP: create, initialise,
// render, tear down.
func (a *App) RenderOnce(ctx context.Context, decls []declaration.Declaration, opts RenderOptions) (template.HTML, error) {
	r, err := a.NewRegistry(ctx)
	if err != nil {
		return "", err
	}
	if err := r.Initialize(); err != nil {
		return "", err
	}
	defer r.Teardown()

	return Render(r, decls, opts)
}
