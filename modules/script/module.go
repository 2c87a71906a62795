// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package script provides the stages that turn declarations into a script
// block: the strip_script_wrapper pre-modifier, the join converter, the
// script_tag and raw writers and the script_context custom object.
package script

import (
	"github.com/vk/emitgrid/internal/handlers"
)

// Module implements the handlers.Module interface for this package.
type Module struct{}

// Register registers the package's stages and objects.
func (m *Module) Register(h *handlers.Handlers) {
	handlers.RegisterPreModifier(h, "strip_script_wrapper", NewStripScriptWrapper)
	handlers.RegisterConverter(h, "join", NewJoin)
	handlers.RegisterWriter(h, "script_tag", NewScriptTag)
	handlers.RegisterWriter(h, "raw", NewRaw)
	handlers.RegisterObject[Context](h, "script_context")
}
