// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package stage

import "github.com/vk/emitgrid/internal/declaration"

// PreArgs is the envelope passed to pre-modifiers and the converter.
type PreArgs struct {
	Declarations []declaration.Declaration

	// CustomObject is the opaque payload configured on the owning emitter.
	CustomObject any

	IsDebug bool
}

// PostArgs is the envelope passed to post-modifiers and the writer.
type PostArgs struct {
	// Emitted is the converter output, as modified by earlier post-modifiers.
	Emitted string

	CustomObject any

	IsDebug bool
}
