// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package emitter

import "errors"

var (
	// ErrConverterNotConfigured is returned when an emitter without a
	// converter is asked to process declarations.
	ErrConverterNotConfigured = errors.New("no converter has been configured; the declarations cannot be processed")

	// ErrWriterNotConfigured is returned when an emitter or bundle without a
	// writer is asked to produce final output.
	ErrWriterNotConfigured = errors.New("no writer has been configured; the declarations cannot be processed")
)
