// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package app wires the process-wide pieces together: it loads the emitter
// configuration, registers the built-in stage modules, resolves the debug
// flag and builds the emitter catalog exactly once, then hands out
// request-scoped registries through an HTTP middleware.
package app
