// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package emitter

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/vk/emitgrid/internal/declaration"
	"github.com/vk/emitgrid/internal/stage"
)

// Resolver looks up member emitters when a bundle is processed.
type Resolver interface {
	Emitter(key string) (*Emitter, bool)

	// DefaultKey is the key declarations without a target are routed to.
	DefaultKey() string
}

// Bundle renders several emitters' output as one block.
type Bundle struct {
	Key string

	// MemberKeys are resolved at processing time, in this order.
	MemberKeys []string

	CustomObject  any
	PostModifiers []stage.Bound[stage.PostModifier]
	Writer        *stage.Bound[stage.Writer]

	Debug bool
}

// Process renders each member over its share of decls and writes the
// combined text through the bundle's own post-modifiers and writer.
func (b *Bundle) Process(decls []declaration.Declaration, resolver Resolver) (template.HTML, error) {
	if b.Writer == nil {
		return "", fmt.Errorf("bundle '%s': %w", b.Key, ErrWriterNotConfigured)
	}

	members := b.Members(resolver)
	if len(members) == 0 {
		return "", nil
	}

	var emitted strings.Builder
	for _, m := range members {
		text, err := m.ProcessBundled(ForTarget(decls, resolver.DefaultKey(), m.Key), b.CustomObject)
		if err != nil {
			return "", fmt.Errorf("bundle '%s': %w", b.Key, err)
		}
		emitted.WriteString(text)
		emitted.WriteByte('\n')
	}

	post, err := stage.FoldPost(stage.PostArgs{
		Emitted:      emitted.String(),
		CustomObject: b.CustomObject,
		IsDebug:      b.Debug,
	}, b.PostModifiers, false)
	if err != nil {
		return "", fmt.Errorf("bundle '%s': %w", b.Key, err)
	}

	out, err := b.Writer.Stage.Write(post)
	if err != nil {
		return "", fmt.Errorf("bundle '%s': %w", b.Key, &stage.Error{Type: b.Writer.Type, Err: err})
	}
	return out, nil
}

// Members resolves MemberKeys, skipping keys with no configured emitter.
func (b *Bundle) Members(resolver Resolver) []*Emitter {
	var out []*Emitter
	for _, key := range b.MemberKeys {
		if e, ok := resolver.Emitter(key); ok {
			out = append(out, e)
		}
	}
	return out
}

// Includes reports whether key is one of the bundle's member keys.
func (b *Bundle) Includes(key string) bool {
	for _, k := range b.MemberKeys {
		if k == key {
			return true
		}
	}
	return false
}
