// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package wrap provides post-modifiers that reshape the emitted text as a
// whole: the iife wrapper and collapse_whitespace.
package wrap

import "github.com/vk/emitgrid/internal/handlers"

// Module implements the handlers.Module interface for this package.
type Module struct{}

// Register registers the package's post-modifiers.
func (m *Module) Register(h *handlers.Handlers) {
	handlers.RegisterPostModifier(h, "iife", NewIIFE)
	handlers.RegisterPostModifier(h, "collapse_whitespace", NewCollapseWhitespace)
}
