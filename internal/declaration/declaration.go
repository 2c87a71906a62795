// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package declaration

// Kind identifies what a declaration renders to. Stages such as the
// order_by_kind pre-modifier use it to reorder or drop declarations.
type Kind string

const (
	KindVariable Kind = "variable"
	KindCall     Kind = "call"
	KindComment  Kind = "comment"
	KindRaw      Kind = "raw"
)

// Declaration is one script fragment waiting to be emitted.
type Declaration interface {
	// Name is the optional unique key used for de-duplication, removal and
	// Emit-by-name. An empty name opts out of all three.
	Name() string

	// TargetKey is the key of the emitter that should render this
	// declaration. An empty key means the default emitter.
	TargetKey() string

	Kind() Kind

	// Render returns the fragment text without any trailing terminator.
	Render() string
}

// Option configures the name and target shared by all built-in kinds.
type Option func(*base)

// WithName sets the declaration name.
func WithName(name string) Option {
	return func(b *base) { b.name = name }
}

// WithTarget routes the declaration to the emitter (or bundle member) with
// the given key.
func WithTarget(key string) Option {
	return func(b *base) { b.target = key }
}

type base struct {
	name   string
	target string
}

func (b base) Name() string      { return b.name }
func (b base) TargetKey() string { return b.target }

func newBase(name string, opts []Option) base {
	b := base{name: name}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}
