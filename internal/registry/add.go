// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"github.com/vk/emitgrid/internal/declaration"
)

// AddOption adjusts how Add inserts a declaration.
type AddOption func(*addOptions)

type addOptions struct {
	insertAt *int
}

// InsertAt inserts the declaration at index instead of appending it. The
// index applies after any same-named declaration has been removed and is
// clamped to the valid range.
func InsertAt(index int) AddOption {
	return func(o *addOptions) { o.insertAt = &index }
}

// Add registers d, replacing any pending declaration with the same non-empty
// name, and returns d.
func (r *Registry) Add(d declaration.Declaration, opts ...AddOption) (declaration.Declaration, error) {
	if err := r.check(); err != nil {
		return nil, err
	}

	var o addOptions
	for _, opt := range opts {
		opt(&o)
	}

	r.removeNamed(d.Name())

	if o.insertAt == nil {
		r.decls = append(r.decls, d)
	} else {
		idx := min(max(*o.insertAt, 0), len(r.decls))
		r.decls = append(r.decls, nil)
		copy(r.decls[idx+1:], r.decls[idx:])
		r.decls[idx] = d
	}

	r.logger.Debug("Declaration added.", "name", d.Name(), "target", d.TargetKey(), "kind", d.Kind(), "pending", len(r.decls))
	return d, nil
}

// AddMany adds each declaration in order with the same de-duplication rule as
// Add, always appending. Insertion is eager: every declaration is registered
// before AddMany returns.
func (r *Registry) AddMany(decls ...declaration.Declaration) ([]declaration.Declaration, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	added := make([]declaration.Declaration, 0, len(decls))
	for _, d := range decls {
		if _, err := r.Add(d); err != nil {
			return added, err
		}
		added = append(added, d)
	}
	return added, nil
}

// Remove drops the first pending declaration with the given name, if any.
func (r *Registry) Remove(name string) error {
	if err := r.check(); err != nil {
		return err
	}
	for i, d := range r.decls {
		if d.Name() == name {
			r.deleteAt(i)
			return nil
		}
	}
	return nil
}

// RemoveDeclaration drops d itself, compared by identity, if it is pending.
func (r *Registry) RemoveDeclaration(d declaration.Declaration) error {
	if err := r.check(); err != nil {
		return err
	}
	if d == nil {
		return nil
	}
	for i, existing := range r.decls {
		if existing == d {
			r.deleteAt(i)
			return nil
		}
	}
	return nil
}

// Reset removes all pending declarations. removeDefaults is accepted for
// callers that distinguish configured defaults, but there are no configured
// default declarations, so both values clear everything.
func (r *Registry) Reset(removeDefaults bool) error {
	if err := r.check(); err != nil {
		return err
	}
	r.logger.Debug("Registry reset.", "cleared", len(r.decls), "remove_defaults", removeDefaults)
	clear(r.decls)
	r.decls = r.decls[:0]
	return nil
}

func (r *Registry) removeNamed(name string) {
	if name == "" {
		return
	}
	kept := r.decls[:0]
	for _, d := range r.decls {
		if d.Name() != name {
			kept = append(kept, d)
		}
	}
	clear(r.decls[len(kept):])
	r.decls = kept
}

func (r *Registry) deleteAt(i int) {
	copy(r.decls[i:], r.decls[i+1:])
	r.decls[len(r.decls)-1] = nil
	r.decls = r.decls[:len(r.decls)-1]
}
