// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates flags into the application's configuration and exposes the
// emitgrid subcommands: validate, render, serve and stages.
package cli
