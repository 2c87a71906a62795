// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package order provides pre-modifiers that reorder or filter the
// declarations an emitter receives.
package order

import "github.com/vk/emitgrid/internal/handlers"

// Module implements the handlers.Module interface for this package.
type Module struct{}

// Register registers the package's pre-modifiers.
func (m *Module) Register(h *handlers.Handlers) {
	handlers.RegisterPreModifier(h, "order_by_kind", NewOrderByKind)
	handlers.RegisterPreModifier(h, "strip_comments", NewStripComments)
}
