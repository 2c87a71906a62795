// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package emitter implements the two rendering pipelines.
//
// An Emitter renders the declarations that target its key:
//
//	pre-modifiers -> converter -> post-modifiers -> writer
//
// A Bundle renders several emitters as one block. Each member runs its
// pre-modifiers, converter and post-modifiers (only the stages flagged
// use-when-bundled), the member texts are concatenated, and the bundle's own
// post-modifiers and writer run over the result. Member writers never run.
//
// The Catalog is the immutable set of emitters and bundles built from
// configuration once per process and shared by every request.
package emitter
