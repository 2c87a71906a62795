// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package handlers

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
)

// Kind says which pipeline slot a registered factory fills.
type Kind int

const (
	KindPreModifier Kind = iota
	KindConverter
	KindPostModifier
	KindWriter
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindPreModifier:
		return "pre_modifier"
	case KindConverter:
		return "converter"
	case KindPostModifier:
		return "post_modifier"
	case KindWriter:
		return "writer"
	case KindObject:
		return "custom_object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Module is implemented by every package that contributes factories.
type Module interface {
	Register(h *Handlers)
}

// Handlers holds all the registered factories.
type Handlers struct {
	all map[string]*RegisteredHandler
}

// New creates an empty catalogue.
func New() *Handlers {
	return &Handlers{
		all: make(map[string]*RegisteredHandler),
	}
}

// RegisteredHandler holds the Go parts of one configurable type.
type RegisteredHandler struct {
	Kind        Kind
	NewOptions  func() any
	OptionsType reflect.Type

	// Build receives the value NewOptions returned, after properties have
	// been assigned to it.
	Build func(opts any) (any, error)
}

// RegisterHandler registers a factory under name. Names are global across
// kinds; registering a name twice is a programming error and panics.
func (h *Handlers) RegisterHandler(name string, handler *RegisteredHandler) {
	if _, exists := h.all[name]; exists {
		panic(fmt.Sprintf("handler with name '%s' already registered", name))
	}
	slog.Debug("Registering handler.", "name", name, "kind", handler.Kind)
	h.all[name] = handler
}

// Lookup returns the factory registered under name.
func (h *Handlers) Lookup(name string) (*RegisteredHandler, bool) {
	r, ok := h.all[name]
	return r, ok
}

// Names returns the registered names of the given kind, sorted.
func (h *Handlers) Names(kind Kind) []string {
	var names []string
	for name, r := range h.all {
		if r.Kind == kind {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered factories.
func (h *Handlers) Len() int { return len(h.all) }
