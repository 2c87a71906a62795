// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the built-in declaration kinds.
//
// Values and call arguments are encoded as JSON, which is a valid JavaScript
// literal for every value encoding/json produces. Values that cannot be
// encoded render as `undefined` so that a single bad value never breaks the
// surrounding script block.

package declaration

import (
	"encoding/json"
	"strings"
)

// Variable declares a JavaScript variable, optionally with a value.
type Variable struct {
	base
	Ident string
	Value any
}

// NewVariable returns a variable declaration. The variable name doubles as
// the declaration name unless WithName overrides it.
func NewVariable(name string, value any, opts ...Option) *Variable {
	return &Variable{base: newBase(name, opts), Ident: name, Value: value}
}

func (v *Variable) Kind() Kind { return KindVariable }

func (v *Variable) Render() string {
	if v.Value == nil {
		return "var " + v.Ident
	}
	return "var " + v.Ident + " = " + literal(v.Value)
}

// FunctionCall invokes a JavaScript function with literal arguments.
type FunctionCall struct {
	base
	Function string
	Args     []any
}

// NewFunctionCall returns a call declaration named after the function, so it
// can be removed by function name alone.
func NewFunctionCall(function string, args []any, opts ...Option) *FunctionCall {
	return &FunctionCall{base: newBase(function, opts), Function: function, Args: args}
}

func (c *FunctionCall) Kind() Kind { return KindCall }

func (c *FunctionCall) Render() string {
	parts := make([]string, len(c.Args))
	for i, arg := range c.Args {
		parts[i] = literal(arg)
	}
	return c.Function + "(" + strings.Join(parts, ", ") + ")"
}

// Comment emits a block comment. Comments are unnamed unless WithName is given.
type Comment struct {
	base
	Text string
}

func NewComment(text string, opts ...Option) *Comment {
	return &Comment{base: newBase("", opts), Text: text}
}

func (c *Comment) Kind() Kind { return KindComment }

func (c *Comment) Render() string {
	return "/* " + strings.ReplaceAll(c.Text, "*/", "* /") + " */"
}

// Raw is emitted verbatim.
type Raw struct {
	base
	Text string
}

func NewRaw(name, text string, opts ...Option) *Raw {
	return &Raw{base: newBase(name, opts), Text: text}
}

func (r *Raw) Kind() Kind { return KindRaw }

func (r *Raw) Render() string { return r.Text }

func literal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "undefined"
	}
	return string(b)
}
