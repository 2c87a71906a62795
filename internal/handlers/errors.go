// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package handlers

import (
	"errors"
	"fmt"
)

// ErrUnknownType is wrapped by errors for stage type names with no
// registered factory.
var ErrUnknownType = errors.New("unknown stage type")

// KindMismatchError reports a stage type used in a slot of another kind,
// e.g. a writer configured as a converter.
type KindMismatchError struct {
	Name string
	Want Kind
	Got  Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("type '%s' is a %s, not a %s", e.Name, e.Got, e.Want)
}

// InvalidCustomObjectTypeError reports a custom object type that cannot be
// instantiated.
type InvalidCustomObjectTypeError struct {
	Name string
}

func (e *InvalidCustomObjectTypeError) Error() string {
	return fmt.Sprintf("the custom object type '%s' cannot be instantiated", e.Name)
}
