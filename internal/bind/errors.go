// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package bind

import "fmt"

// PropertyNotFoundError reports a configured property that has no matching
// field on the target.
type PropertyNotFoundError struct {
	Property   string
	TargetType string
}

func (e *PropertyNotFoundError) Error() string {
	return fmt.Sprintf("property '%s' does not exist on type '%s'", e.Property, e.TargetType)
}
