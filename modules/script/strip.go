// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package script

import (
	"fmt"
	"strings"

	"github.com/vk/emitgrid/internal/declaration"
	"github.com/vk/emitgrid/internal/stage"
	"golang.org/x/net/html"
)

// NewStripScriptWrapper builds a pre-modifier for raw declarations that
// were written as markup. A surrounding <script> element is unwrapped to
// its text and HTML comments are turned into script comments, so the
// content can be placed inside the emitter's own tag. Other kinds pass
// through unchanged.
func NewStripScriptWrapper(*struct{}) (stage.PreModifier, error) {
	return stage.PreModifierFunc(func(a stage.PreArgs) (stage.PreArgs, error) {
		out := make([]declaration.Declaration, len(a.Declarations))
		for i, d := range a.Declarations {
			raw, ok := d.(*declaration.Raw)
			if !ok {
				out[i] = d
				continue
			}
			text, err := stripScriptWrapper(raw.Text)
			if err != nil {
				return a, fmt.Errorf("strip_script_wrapper: declaration %q: %w", raw.Name(), err)
			}
			out[i] = declaration.NewRaw(raw.Name(), text, declaration.WithTarget(raw.TargetKey()))
		}
		a.Declarations = out
		return a, nil
	}), nil
}

func stripScriptWrapper(s string) (string, error) {
	text := strings.TrimSpace(s)
	// Only markup is parsed; bare script such as "a<b" would read as a tag.
	if len(text) >= len("<script") && strings.EqualFold(text[:len("<script")], "<script") {
		doc, err := html.Parse(strings.NewReader(text))
		if err != nil {
			return "", err
		}
		var sb strings.Builder
		innerText(doc, &sb)
		text = strings.TrimSpace(sb.String())
	}
	return htmlComments.Replace(text), nil
}

// innerText writes the text of every node below n in document order.
// Comments outside the script element are kept in their markup form.
func innerText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
	case html.CommentNode:
		sb.WriteString("<!--" + n.Data + "-->")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		innerText(c, sb)
	}
}

var htmlComments = strings.NewReplacer("<!--", "/* <!--", "-->", "--> */")
