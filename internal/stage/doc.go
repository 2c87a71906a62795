// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package stage defines the four kinds of pipeline stage an emitter is built
// from, and the two envelopes threaded between them:
//
//	PreArgs  --PreModifier-->  PreArgs
//	PreArgs  --Converter---->  PostArgs
//	PostArgs --PostModifier->  PostArgs
//	PostArgs --Writer------->  template.HTML
//
// Stages are plain interfaces; configuration-driven metadata (the emit mode
// and the use-when-bundled flag) lives on Bound, the slot a stage occupies
// inside an emitter, not on the stage itself.
package stage
