// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package script

import (
	"html/template"
	"regexp"
	"sort"
	"strings"

	"github.com/vk/emitgrid/internal/stage"
)

// Context is the script_context custom object. Writers fall back to its
// values when their own options leave them empty.
type Context struct {
	Nonce string `emit:"nonce"`
	Type  string `emit:"type"`
}

// ScriptTagOptions configures the script_tag writer.
type ScriptTagOptions struct {
	Type       string            `emit:"type"`
	Nonce      string            `emit:"nonce"`
	Attributes map[string]string `emit:"attributes"`

	// SkipEmpty writes nothing instead of an empty element.
	SkipEmpty bool `emit:"skip_empty"`
}

// NewScriptTag builds the script_tag writer. Attribute values are escaped
// and a closing script tag inside the text is broken up so the element
// cannot be terminated early.
func NewScriptTag(o *ScriptTagOptions) (stage.Writer, error) {
	names := make([]string, 0, len(o.Attributes))
	for name := range o.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)

	return stage.WriterFunc(func(a stage.PostArgs) (template.HTML, error) {
		if o.SkipEmpty && strings.TrimSpace(a.Emitted) == "" {
			return "", nil
		}

		typ, nonce := o.Type, o.Nonce
		if ctx, ok := a.CustomObject.(*Context); ok {
			if typ == "" {
				typ = ctx.Type
			}
			if nonce == "" {
				nonce = ctx.Nonce
			}
		}

		var sb strings.Builder
		sb.WriteString("<script")
		writeAttr(&sb, "type", typ)
		writeAttr(&sb, "nonce", nonce)
		for _, name := range names {
			writeAttr(&sb, name, o.Attributes[name])
		}
		sb.WriteString(">")
		sb.WriteString(escapeScriptText(a.Emitted))
		sb.WriteString("</script>")
		return template.HTML(sb.String()), nil
	}), nil
}

// NewRaw builds the raw writer, which outputs the text unchanged.
func NewRaw(*struct{}) (stage.Writer, error) {
	return stage.WriterFunc(func(a stage.PostArgs) (template.HTML, error) {
		return template.HTML(a.Emitted), nil
	}), nil
}

func writeAttr(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	sb.WriteString(" ")
	sb.WriteString(template.HTMLEscapeString(name))
	if value == name {
		// Boolean attributes such as defer="defer" render bare.
		return
	}
	sb.WriteString(`="`)
	sb.WriteString(template.HTMLEscapeString(value))
	sb.WriteString(`"`)
}

func escapeScriptText(s string) string {
	return closingTag.ReplaceAllString(s, `<\/${1}`)
}

// HTML tag names are case-insensitive, so any spelling ends the element.
var closingTag = regexp.MustCompile(`(?i)</(script)`)
