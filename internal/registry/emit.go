// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"html/template"
	"strings"

	"github.com/vk/emitgrid/internal/declaration"
	"github.com/vk/emitgrid/internal/emitter"
)

// Emit renders and removes the named declarations. Names with no pending
// declaration are ignored. The selected declarations are grouped by target
// emitter in the order their targets are first seen and each group's output
// is concatenated in that order. Groups targeting unknown emitters are
// skipped but still removed.
func (r *Registry) Emit(names ...string) (template.HTML, error) {
	if err := r.check(); err != nil {
		return "", err
	}
	if len(r.catalog.Emitters()) == 0 {
		return "", ErrNoEmittersConfigured
	}
	if len(names) == 0 {
		return "", ErrNoNamesSpecified
	}

	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n != "" {
			wanted[n] = struct{}{}
		}
	}

	var selected []declaration.Declaration
	for _, d := range r.decls {
		if _, ok := wanted[d.Name()]; ok {
			selected = append(selected, d)
		}
	}
	r.removeAll(selected)

	defaultKey := r.catalog.DefaultKey()
	var order []string
	groups := make(map[string][]declaration.Declaration)
	for _, d := range selected {
		key := emitter.TargetOf(d, defaultKey)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], d)
	}

	var sb strings.Builder
	for _, key := range order {
		e, ok := r.catalog.Emitter(key)
		if !ok {
			r.logger.Warn("Skipping declarations for unknown emitter.", "emitter", key, "count", len(groups[key]))
			continue
		}
		out, err := e.Process(groups[key])
		if err != nil {
			return "", err
		}
		sb.WriteString(string(out))
	}

	r.logger.Debug("Emitted declarations by name.", "names", names, "emitted", len(selected))
	return template.HTML(sb.String()), nil
}

// EmitFor renders every declaration routed to the given keys. Unlike Emit it
// leaves them pending, so rendering the same key twice repeats the output.
// Each key resolves to a standalone emitter first, then a bundle; unknown
// keys produce no output. With a single key the output is returned as is; with
// several keys each output is followed by a newline.
func (r *Registry) EmitFor(keys ...string) (template.HTML, error) {
	if err := r.check(); err != nil {
		return "", err
	}
	if len(keys) == 0 {
		return "", ErrNoTargetKeySpecified
	}
	if len(r.catalog.Emitters()) == 0 {
		return "", ErrNoEmittersConfigured
	}

	if len(keys) == 1 {
		return r.emitKey(keys[0])
	}

	var sb strings.Builder
	for _, key := range keys {
		out, err := r.emitKey(key)
		if err != nil {
			return "", err
		}
		sb.WriteString(string(out))
		sb.WriteString("\n")
	}
	return template.HTML(sb.String()), nil
}

// EmitAll renders every pending declaration without removing it: first
// through each emitter not referenced by a bundle, in configuration order,
// then through each bundle. Each piece of output is followed by a newline.
func (r *Registry) EmitAll() (template.HTML, error) {
	if err := r.check(); err != nil {
		return "", err
	}
	if len(r.catalog.Emitters()) == 0 {
		return "", ErrNoEmittersConfigured
	}

	var sb strings.Builder
	for _, key := range r.catalog.UnbundledKeys() {
		out, err := r.emitEmitter(key)
		if err != nil {
			return "", err
		}
		sb.WriteString(string(out))
		sb.WriteString("\n")
	}
	for _, b := range r.catalog.Bundles() {
		out, err := r.emitBundle(b)
		if err != nil {
			return "", err
		}
		sb.WriteString(string(out))
		sb.WriteString("\n")
	}
	return template.HTML(sb.String()), nil
}

func (r *Registry) emitKey(key string) (template.HTML, error) {
	if _, ok := r.catalog.Emitter(key); ok {
		return r.emitEmitter(key)
	}
	if b, ok := r.catalog.Bundle(key); ok {
		return r.emitBundle(b)
	}
	r.logger.Warn("No emitter or bundle configured for key.", "key", key)
	return "", nil
}

func (r *Registry) emitEmitter(key string) (template.HTML, error) {
	e, _ := r.catalog.Emitter(key)
	selected := emitter.ForTarget(r.decls, r.catalog.DefaultKey(), key)
	out, err := e.Process(selected)
	if err != nil {
		return "", err
	}
	r.logger.Debug("Emitted declarations for emitter.", "emitter", key, "emitted", len(selected))
	return out, nil
}

func (r *Registry) emitBundle(b *emitter.Bundle) (template.HTML, error) {
	selected := emitter.ForTarget(r.decls, r.catalog.DefaultKey(), b.MemberKeys...)
	out, err := b.Process(selected, r.catalog)
	if err != nil {
		return "", err
	}
	r.logger.Debug("Emitted declarations for bundle.", "bundle", b.Key, "emitted", len(selected))
	return out, nil
}

func (r *Registry) removeAll(selected []declaration.Declaration) {
	if len(selected) == 0 {
		return
	}
	drop := make(map[declaration.Declaration]struct{}, len(selected))
	for _, d := range selected {
		drop[d] = struct{}{}
	}
	kept := r.decls[:0]
	for _, d := range r.decls {
		if _, ok := drop[d]; !ok {
			kept = append(kept, d)
		}
	}
	clear(r.decls[len(kept):])
	r.decls = kept
}
