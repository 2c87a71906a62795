// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package bind

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/vk/emitgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// TagName is the struct tag holding a field's property name.
const TagName = "emit"

// Assign decodes props onto the struct target points to. A property with no
// tagged field fails with *PropertyNotFoundError unless its name is listed in
// ignoreMissing. Properties are applied in name order so errors are stable.
func Assign(ctx context.Context, target any, props map[string]cty.Value, ignoreMissing []string) error {
	if target == nil {
		return fmt.Errorf("bind target must be a non-nil pointer to a struct")
	}
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() || ptr.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind target must be a non-nil pointer to a struct, got %T", target)
	}
	structVal := ptr.Elem()
	fields := taggedFields(structVal.Type())

	logger := ctxlog.FromContext(ctx).With("target_type", structVal.Type().String())
	logger.Debug("Assigning properties.", "count", len(props))

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		idx, ok := fields[name]
		if !ok {
			if slices.Contains(ignoreMissing, name) {
				logger.Debug("Ignoring property with no matching field.", "property", name)
				continue
			}
			return &PropertyNotFoundError{Property: name, TargetType: structVal.Type().String()}
		}
		field := structVal.Field(idx)
		if err := decode(ctx, props[name], field.Addr().Interface()); err != nil {
			return fmt.Errorf("failed to assign property '%s': %w", name, err)
		}
	}
	return nil
}

// Fields lists the property names a struct type accepts, in field order.
func Fields(t reflect.Type) []string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var out []string
	for i := 0; i < t.NumField(); i++ {
		if name := tagOf(t.Field(i)); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func taggedFields(t reflect.Type) map[string]int {
	out := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := tagOf(t.Field(i)); name != "" {
			out[name] = i
		}
	}
	return out
}

func tagOf(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	name := strings.Split(f.Tag.Get(TagName), ",")[0]
	if name == "-" {
		return ""
	}
	return name
}
