// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package script

import (
	"strings"

	"github.com/vk/emitgrid/internal/declaration"
	"github.com/vk/emitgrid/internal/stage"
)

// JoinOptions configures the join converter.
type JoinOptions struct {
	// Separator is written between declarations. Defaults to "".
	Separator string `emit:"separator"`

	// Terminator ends every non-comment declaration that does not already
	// end with it. Defaults to ";".
	Terminator *string `emit:"terminator"`
}

// NewJoin builds the join converter.
func NewJoin(o *JoinOptions) (stage.Converter, error) {
	terminator := ";"
	if o.Terminator != nil {
		terminator = *o.Terminator
	}
	sep := o.Separator

	return stage.ConverterFunc(func(a stage.PreArgs) (stage.PostArgs, error) {
		var sb strings.Builder
		for i, d := range a.Declarations {
			if i > 0 {
				sb.WriteString(sep)
			}
			text := d.Render()
			sb.WriteString(text)
			if d.Kind() != declaration.KindComment && terminator != "" && !strings.HasSuffix(text, terminator) {
				sb.WriteString(terminator)
			}
		}
		return stage.PostArgs{Emitted: sb.String()}, nil
	}), nil
}
