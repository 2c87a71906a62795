// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package banner provides the comment_banner post-modifier.
package banner

import "github.com/vk/emitgrid/internal/handlers"

// Module implements the handlers.Module interface for this package.
type Module struct{}

// Register registers the package's post-modifiers.
func (m *Module) Register(h *handlers.Handlers) {
	handlers.RegisterPostModifier(h, "comment_banner", NewCommentBanner)
}
