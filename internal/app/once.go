// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import "sync"

// Once returns a function that calls fn on first use and returns its
// results to every caller after that, including concurrent first callers.
// A failed construction is not retried.
func Once[T any](fn func() (T, error)) func() (T, error) {
	return sync.OnceValues(fn)
}
