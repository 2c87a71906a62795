// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package wrap

import (
	"regexp"
	"strings"

	"github.com/vk/emitgrid/internal/stage"
)

// IIFEOptions configures the iife post-modifier.
type IIFEOptions struct {
	Strict bool `emit:"strict"`
}

// NewIIFE builds a post-modifier that wraps the text in an immediately
// invoked function expression. Empty text is left alone.
func NewIIFE(o *IIFEOptions) (stage.PostModifier, error) {
	open := "(function () {\n"
	if o.Strict {
		open += "\"use strict\";\n"
	}
	const closing = "\n})();"

	return stage.PostModifierFunc(func(a stage.PostArgs) (stage.PostArgs, error) {
		if a.Emitted == "" {
			return a, nil
		}
		a.Emitted = open + a.Emitted + closing
		return a, nil
	}), nil
}

var whitespace = regexp.MustCompile(`\s+`)

// NewCollapseWhitespace builds a post-modifier that replaces every run of
// whitespace with a single space and trims both ends. It does not parse
// the script, so whitespace inside string literals is collapsed too.
// Usually declared with emit_mode = "live_only".
func NewCollapseWhitespace(*struct{}) (stage.PostModifier, error) {
	return stage.PostModifierFunc(func(a stage.PostArgs) (stage.PostArgs, error) {
		a.Emitted = strings.TrimSpace(whitespace.ReplaceAllString(a.Emitted, " "))
		return a, nil
	}), nil
}
