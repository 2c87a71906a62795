// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"github.com/vk/emitgrid/internal/handlers"
	"github.com/vk/emitgrid/modules/banner"
	"github.com/vk/emitgrid/modules/order"
	"github.com/vk/emitgrid/modules/script"
	"github.com/vk/emitgrid/modules/wrap"
)

// CoreModules returns every module compiled into the emitgrid binary.
func CoreModules() []handlers.Module {
	return []handlers.Module{
		&script.Module{},
		&order.Module{},
		&banner.Module{},
		&wrap.Module{},
	}
}
