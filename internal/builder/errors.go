// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package builder

import (
	"fmt"
	"strings"

	"github.com/vk/emitgrid/internal/handlers"
)

// DuplicateKeyError reports two emitters, or two bundles, sharing a key.
type DuplicateKeyError struct {
	// Kind is "emitter" or "bundle".
	Kind string
	Key  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s key '%s'", e.Kind, e.Key)
}

// DuplicateDefaultEmitterError reports more than one emitter flagged default.
type DuplicateDefaultEmitterError struct {
	Keys []string
}

func (e *DuplicateDefaultEmitterError) Error() string {
	return fmt.Sprintf("only one emitter may be the default, found: '%s'", strings.Join(e.Keys, "', '"))
}

// MultipleActiveStagesError reports a single-stage slot with more than one
// stage active in the current debug context.
type MultipleActiveStagesError struct {
	// Owner names the emitter or bundle, e.g. "emitter 'js'".
	Owner   string
	Slot    handlers.Kind
	Types   []string
	IsDebug bool
}

func (e *MultipleActiveStagesError) Error() string {
	context := "live"
	if e.IsDebug {
		context = "debug"
	}
	return fmt.Sprintf("%s has %d active %ss in the %s context (%s); at most one is allowed",
		e.Owner, len(e.Types), e.Slot, context, strings.Join(e.Types, ", "))
}
