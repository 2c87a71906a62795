// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import "errors"

var (
	// ErrNotInitialized is returned by every operation on a registry that has
	// not been initialised for the current request.
	ErrNotInitialized = errors.New("the declaration registry has not been initialized; this should be done for each request")

	// ErrNoNamesSpecified is returned by Emit when called without names.
	ErrNoNamesSpecified = errors.New("one or more declaration names must be specified to be emitted")

	// ErrNoTargetKeySpecified is returned by EmitFor when called without keys.
	ErrNoTargetKeySpecified = errors.New("a key must be specified for the desired emitter")

	// ErrNoEmittersConfigured is returned by emit operations when the catalog
	// holds no emitters.
	ErrNoEmittersConfigured = errors.New("no emitters have been configured")
)
