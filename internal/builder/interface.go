// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package builder

import (
	"context"

	"github.com/vk/emitgrid/internal/config"
	"github.com/vk/emitgrid/internal/emitter"
)

// Builder turns a configuration model into an emitter catalog.
//
// Build is called once per process and debug context. The returned catalog
// is read-only and may be shared by concurrent requests.
type Builder interface {
	Build(ctx context.Context, model *config.Model) (*emitter.Catalog, error)
}
