// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package registry holds the declarations a single request accumulates and
// flushes them through the configured emitters.
//
// A Registry is created per request from the process-wide emitter.Catalog,
// initialised when the request starts and torn down when it ends. Every
// operation on a registry that is not initialised fails with
// ErrNotInitialized, including operations on a nil *Registry, so a handler
// that forgot the middleware gets an error instead of silently losing output.
//
// A Registry is owned by one request and is not safe for concurrent use.
package registry
