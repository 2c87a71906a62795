// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package handlers is the catalogue of stage and custom object factories,
// keyed by the type name used in configuration files.
//
// Go modules contribute factories through the Module interface. A factory
// pairs an options struct, filled from configured properties by the bind
// package, with a constructor turning those options into a stage or object.
package handlers
