// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"net/http"

	"github.com/vk/emitgrid/internal/ctxlog"
	"github.com/vk/emitgrid/internal/registry"
)

// Middleware gives every request its own initialised registry, reachable
// through registry.FromContext, and tears it down once next returns.
func (a *App) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := ctxlog.WithLogger(r.Context(), a.logger.With("path", r.URL.Path))

		catalog, err := a.Catalog()
		if err != nil {
			a.logger.Error("Cannot create request registry.", "error", err)
			http.Error(w, "emitter configuration is invalid", http.StatusInternalServerError)
			return
		}
		reg := registry.New(ctx, catalog)
		if err := reg.Initialize(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer reg.Teardown()

		next.ServeHTTP(w, r.WithContext(registry.WithRegistry(ctx, reg)))
	})
}
