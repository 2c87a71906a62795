// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package bind

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/emitgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var ctyValueType = reflect.TypeOf(cty.Value{})

// decode populates the value goVal points to from val. Structs are decoded
// field by field through their emit tags, so nested option objects follow
// the same rules as the top level.
func decode(ctx context.Context, val cty.Value, goVal any) error {
	goPtr := reflect.ValueOf(goVal).Elem()
	goType := goPtr.Type()
	logger := ctxlog.FromContext(ctx).With("go_kind", goType.Kind().String())

	if goType == ctyValueType {
		if val.IsKnown() {
			goPtr.Set(reflect.ValueOf(val))
		}
		return nil
	}

	if !val.IsKnown() || val.IsNull() {
		logger.Debug("Skipping decode for null or unknown value.")
		return nil
	}

	switch goType.Kind() {
	case reflect.Ptr:
		elem := reflect.New(goType.Elem())
		if err := decode(ctx, val, elem.Interface()); err != nil {
			return err
		}
		goPtr.Set(elem)
		return nil

	case reflect.Struct:
		if !val.Type().IsObjectType() && !val.Type().IsMapType() {
			return fmt.Errorf("type mismatch: cannot decode cty value of type %s into Go struct %s", val.Type().FriendlyName(), goType.String())
		}
		fields := taggedFields(goType)
		for it := val.ElementIterator(); it.Next(); {
			key, attrVal := it.Element()
			name := key.AsString()
			idx, ok := fields[name]
			if !ok {
				return &PropertyNotFoundError{Property: name, TargetType: goType.String()}
			}
			if err := decode(ctx, attrVal, goPtr.Field(idx).Addr().Interface()); err != nil {
				return fmt.Errorf("in attribute '%s': %w", name, err)
			}
		}
		return nil

	case reflect.Interface:
		nativeVal, err := toNative(val)
		if err != nil {
			return err
		}
		if nativeVal != nil {
			goPtr.Set(reflect.ValueOf(nativeVal))
		}
		return nil

	case reflect.Map:
		return decodeMap(ctx, val, goPtr)

	case reflect.Slice:
		if !val.Type().IsListType() && !val.Type().IsTupleType() && !val.Type().IsSetType() {
			// A lone scalar binds as a one-element slice.
			newSlice := reflect.MakeSlice(goType, 1, 1)
			if err := decode(ctx, val, newSlice.Index(0).Addr().Interface()); err != nil {
				return err
			}
			goPtr.Set(newSlice)
			return nil
		}
		n := val.LengthInt()
		newSlice := reflect.MakeSlice(goType, n, n)
		it := val.ElementIterator()
		for i := 0; it.Next(); i++ {
			_, elemVal := it.Element()
			if err := decode(ctx, elemVal, newSlice.Index(i).Addr().Interface()); err != nil {
				return fmt.Errorf("in slice element %d: %w", i, err)
			}
		}
		goPtr.Set(newSlice)
		return nil

	default:
		ty, err := gocty.ImpliedType(goPtr.Interface())
		if err != nil {
			return fmt.Errorf("cannot imply cty type for %s: %w", goType.String(), err)
		}
		converted, err := convert.Convert(val, ty)
		if err != nil {
			return fmt.Errorf("cannot convert value of type %s to %s: %w", val.Type().FriendlyName(), ty.FriendlyName(), err)
		}
		return gocty.FromCtyValue(converted, goVal)
	}
}

// decodeMap decodes an object or map value into a Go map with string keys.
func decodeMap(ctx context.Context, val cty.Value, goPtr reflect.Value) error {
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return fmt.Errorf("type mismatch: cannot decode cty value of type %s into Go map %s", val.Type().FriendlyName(), goPtr.Type().String())
	}
	if goPtr.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("unsupported map key type %s", goPtr.Type().Key().String())
	}

	newMap := reflect.MakeMap(goPtr.Type())
	for it := val.ElementIterator(); it.Next(); {
		key, elemVal := it.Element()
		keyStr := key.AsString()
		newElemPtr := reflect.New(goPtr.Type().Elem())
		if err := decode(ctx, elemVal, newElemPtr.Interface()); err != nil {
			return fmt.Errorf("failed to decode map element '%s': %w", keyStr, err)
		}
		newMap.SetMapIndex(reflect.ValueOf(keyStr).Convert(goPtr.Type().Key()), newElemPtr.Elem())
	}
	goPtr.Set(newMap)
	return nil
}

// toNative converts a cty.Value to its most natural Go counterpart for
// fields typed as any.
func toNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert cty.Number to float64: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		slice := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			nativeVal, err := toNative(elem)
			if err != nil {
				return nil, err
			}
			slice = append(slice, nativeVal)
		}
		return slice, nil

	case ty.IsObjectType() || ty.IsMapType():
		goMap := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			nativeVal, err := toNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", key.AsString(), err)
			}
			goMap[key.AsString()] = nativeVal
		}
		return goMap, nil

	default:
		return nil, fmt.Errorf("unsupported cty type for 'any' conversion: %s", ty.FriendlyName())
	}
}
