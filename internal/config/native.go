// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
)

// FromNative converts a value produced by a generic decoder (YAML, TOML or
// JSON into any) into a cty.Value. Sequences become tuples and string-keyed
// maps become objects, so mixed element types survive until the property is
// bound to a typed field.
func FromNative(v any) (cty.Value, error) {
	switch t := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return t, nil
	case string:
		return cty.StringVal(t), nil
	case bool:
		return cty.BoolVal(t), nil
	case int:
		return cty.NumberIntVal(int64(t)), nil
	case int64:
		return cty.NumberIntVal(t), nil
	case uint64:
		return cty.NumberUIntVal(t), nil
	case float64:
		return cty.NumberFloatVal(t), nil
	case *big.Float:
		return cty.NumberVal(t), nil
	case []any:
		if len(t) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(t))
		for i, e := range t {
			ev, err := FromNative(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("element %d: %w", i, err)
			}
			elems[i] = ev
		}
		return cty.TupleVal(elems), nil
	case []map[string]any:
		elems := make([]any, len(t))
		for i, e := range t {
			elems[i] = e
		}
		return FromNative(elems)
	case map[string]any:
		if len(t) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(t))
		for k, e := range t {
			av, err := FromNative(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("key '%s': %w", k, err)
			}
			attrs[k] = av
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value of type %T", v)
	}
}

// PropertiesFromNative converts every entry of props with FromNative.
func PropertiesFromNative(props map[string]any) (map[string]cty.Value, error) {
	out := make(map[string]cty.Value, len(props))
	for name, v := range props {
		cv, err := FromNative(v)
		if err != nil {
			return nil, fmt.Errorf("property '%s': %w", name, err)
		}
		out[name] = cv
	}
	return out, nil
}
