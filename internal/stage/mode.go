// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package stage

import (
	"fmt"
	"strings"
)

// EmitMode decides in which context a configured stage is active.
type EmitMode int

const (
	Always EmitMode = iota
	DebugOnly
	LiveOnly
	Never
)

var modeNames = map[EmitMode]string{
	Always:    "always",
	DebugOnly: "debug_only",
	LiveOnly:  "live_only",
	Never:     "never",
}

func (m EmitMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("EmitMode(%d)", int(m))
}

// ParseEmitMode accepts the configuration spelling of a mode. The empty
// string means Always. Matching ignores case, dashes and underscores so that
// "DebugOnly", "debug-only" and "debug_only" are equivalent.
func ParseEmitMode(s string) (EmitMode, error) {
	norm := strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(strings.TrimSpace(s)))
	switch norm {
	case "", "always":
		return Always, nil
	case "debugonly", "debug":
		return DebugOnly, nil
	case "liveonly", "live":
		return LiveOnly, nil
	case "never":
		return Never, nil
	}
	return Always, fmt.Errorf("unknown emit mode %q: must be one of always, debug_only, live_only, never", s)
}

// IsCurrentlyEmittable reports whether a stage with mode m belongs in a
// pipeline built for the given debug context.
func IsCurrentlyEmittable(m EmitMode, isDebug bool) bool {
	switch m {
	case Always:
		return true
	case DebugOnly:
		return isDebug
	case LiveOnly:
		return !isDebug
	default:
		return false
	}
}
