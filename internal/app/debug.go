// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"os"
	"strconv"
	"sync"
)

// DebugEnv is the environment variable consulted when no override is set.
const DebugEnv = "EMITGRID_DEBUG"

// DebugFlag resolves the debug context once and caches it until Invalidate.
// It is safe for concurrent use.
type DebugFlag struct {
	override *bool
	lookup   func(string) (string, bool)

	mu     sync.Mutex
	cached *bool
}

// NewDebugFlag returns a flag fixed to *override when override is non-nil,
// and read from the environment otherwise.
func NewDebugFlag(override *bool) *DebugFlag {
	return &DebugFlag{override: override, lookup: os.LookupEnv}
}

// IsDebug reports whether the process runs in the debug context. Unset or
// unparsable values mean live.
func (f *DebugFlag) IsDebug() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cached == nil {
		v := f.resolve()
		f.cached = &v
	}
	return *f.cached
}

// Invalidate drops the cached value; the next IsDebug resolves again.
func (f *DebugFlag) Invalidate() {
	f.mu.Lock()
	f.cached = nil
	f.mu.Unlock()
}

func (f *DebugFlag) resolve() bool {
	if f.override != nil {
		return *f.override
	}
	raw, ok := f.lookup(DebugEnv)
	if !ok {
		return false
	}
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}
