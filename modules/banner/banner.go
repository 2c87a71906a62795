// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package banner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/emitgrid/internal/stage"
)

const (
	StyleBlock = "block"
	StyleLine  = "line"
)

// Options configures the comment_banner post-modifier.
type Options struct {
	Text string `emit:"text"`

	// Style is "block" for /* */ comments or "line" for // comments.
	// Defaults to "block". Line comments swallow the rest of the text if a
	// later stage collapses newlines.
	Style string `emit:"style"`

	// Bottom places the banner after the text instead of before it.
	Bottom bool `emit:"bottom"`
}

// NewCommentBanner builds a post-modifier that adds a comment banner to
// the emitted text. Empty text is left alone.
func NewCommentBanner(o *Options) (stage.PostModifier, error) {
	if o.Text == "" {
		return nil, errors.New("comment_banner: text is required")
	}

	var banner string
	switch o.Style {
	case "", StyleBlock:
		banner = "/* " + strings.ReplaceAll(o.Text, "*/", "* /") + " */"
	case StyleLine:
		lines := strings.Split(o.Text, "\n")
		for i, l := range lines {
			lines[i] = "// " + l
		}
		banner = strings.Join(lines, "\n")
	default:
		return nil, fmt.Errorf("comment_banner: unknown style %q", o.Style)
	}

	return stage.PostModifierFunc(func(a stage.PostArgs) (stage.PostArgs, error) {
		if a.Emitted == "" {
			return a, nil
		}
		if o.Bottom {
			a.Emitted = a.Emitted + "\n" + banner
		} else {
			a.Emitted = banner + "\n" + a.Emitted
		}
		return a, nil
	}), nil
}
