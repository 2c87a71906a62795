// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package declaration defines the unit of content that application code
// accumulates during a request: a script fragment with an optional name and
// an optional target emitter key.
//
// A Declaration renders itself to text; everything else (ordering, joining,
// wrapping in tags) is left to the emitter pipeline. The built-in kinds cover
// JavaScript variables, function calls, comments and verbatim text. Any type
// that satisfies the Declaration interface can be added to a registry.
package declaration
