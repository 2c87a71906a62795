// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package bind assigns configured properties onto typed option structs.
//
// Option structs name their bindable fields with an `emit:"name"` tag.
// Values arrive as cty values from any loader and are decoded recursively,
// converting each value to the type implied by the target field.
package bind
