// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vk/emitgrid/internal/ctxlog"
	"github.com/vk/emitgrid/internal/declaration"
	"github.com/vk/emitgrid/internal/emitter"
)

// Registry is the request-scoped collection of pending declarations.
type Registry struct {
	id      string
	catalog *emitter.Catalog
	logger  *slog.Logger

	// decls is nil until Initialize and after Teardown.
	decls []declaration.Declaration
}

// New returns an uninitialised registry bound to catalog. The logger is taken
// from ctx and tagged with the registry id.
func New(ctx context.Context, catalog *emitter.Catalog) *Registry {
	id := uuid.NewString()
	return &Registry{
		id:      id,
		catalog: catalog,
		logger:  ctxlog.FromContext(ctx).With("registry_id", id),
	}
}

// ID identifies the registry in log records.
func (r *Registry) ID() string {
	if r == nil {
		return ""
	}
	return r.id
}

// Initialize prepares an empty declaration list. Calling it on an initialised
// registry discards any pending declarations.
func (r *Registry) Initialize() error {
	if r == nil {
		return ErrNotInitialized
	}
	r.decls = make([]declaration.Declaration, 0, 8)
	r.logger.Debug("Registry initialized.")
	return nil
}

// Teardown drops pending declarations. Afterwards every operation fails with
// ErrNotInitialized until Initialize is called again.
func (r *Registry) Teardown() {
	if r == nil {
		return
	}
	if len(r.decls) > 0 {
		r.logger.Debug("Registry torn down with pending declarations.", "pending", len(r.decls))
	}
	r.decls = nil
}

// Initialized reports whether the registry accepts operations.
func (r *Registry) Initialized() bool {
	return r != nil && r.decls != nil
}

func (r *Registry) check() error {
	if !r.Initialized() {
		return ErrNotInitialized
	}
	return nil
}

// Len returns the number of pending declarations.
func (r *Registry) Len() int {
	if !r.Initialized() {
		return 0
	}
	return len(r.decls)
}

// Declarations returns a snapshot of the pending declarations in order.
func (r *Registry) Declarations() []declaration.Declaration {
	if !r.Initialized() {
		return nil
	}
	out := make([]declaration.Declaration, len(r.decls))
	copy(out, r.decls)
	return out
}

// Count returns how many pending declarations are routed to the emitter key.
func (r *Registry) Count(key string) int {
	if !r.Initialized() {
		return 0
	}
	n := 0
	for _, d := range r.decls {
		if emitter.TargetOf(d, r.catalog.DefaultKey()) == key {
			n++
		}
	}
	return n
}

type ctxKey struct{}

// WithRegistry returns a context carrying r.
func WithRegistry(ctx context.Context, r *Registry) context.Context {
	return context.WithValue(ctx, ctxKey{}, r)
}

// FromContext returns the registry stored in ctx, or nil. The nil registry
// reports ErrNotInitialized from every operation.
func FromContext(ctx context.Context) *Registry {
	r, _ := ctx.Value(ctxKey{}).(*Registry)
	return r
}
