// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package order

import (
	"fmt"
	"sort"

	"github.com/vk/emitgrid/internal/declaration"
	"github.com/vk/emitgrid/internal/stage"
)

// DefaultOrder is used when order_by_kind is given no order.
var DefaultOrder = []string{
	string(declaration.KindComment),
	string(declaration.KindVariable),
	string(declaration.KindCall),
	string(declaration.KindRaw),
}

// OrderByKindOptions configures the order_by_kind pre-modifier.
type OrderByKindOptions struct {
	Order []string `emit:"order"`
}

// NewOrderByKind builds a pre-modifier that stably sorts declarations by
// the position of their kind in Order. Kinds not listed keep their
// relative order after all listed kinds.
func NewOrderByKind(o *OrderByKindOptions) (stage.PreModifier, error) {
	order := o.Order
	if len(order) == 0 {
		order = DefaultOrder
	}

	rank := make(map[declaration.Kind]int, len(order))
	for i, k := range order {
		kind := declaration.Kind(k)
		if !known(kind) {
			return nil, fmt.Errorf("order_by_kind: unknown kind %q", k)
		}
		if _, dup := rank[kind]; dup {
			return nil, fmt.Errorf("order_by_kind: kind %q listed twice", k)
		}
		rank[kind] = i
	}
	rankOf := func(d declaration.Declaration) int {
		if r, ok := rank[d.Kind()]; ok {
			return r
		}
		return len(rank)
	}

	return stage.PreModifierFunc(func(a stage.PreArgs) (stage.PreArgs, error) {
		sorted := make([]declaration.Declaration, len(a.Declarations))
		copy(sorted, a.Declarations)
		sort.SliceStable(sorted, func(i, j int) bool {
			return rankOf(sorted[i]) < rankOf(sorted[j])
		})
		a.Declarations = sorted
		return a, nil
	}), nil
}

// NewStripComments builds a pre-modifier that drops comment declarations.
// It is usually declared with emit_mode = "live_only".
func NewStripComments(*struct{}) (stage.PreModifier, error) {
	return stage.PreModifierFunc(func(a stage.PreArgs) (stage.PreArgs, error) {
		kept := make([]declaration.Declaration, 0, len(a.Declarations))
		for _, d := range a.Declarations {
			if d.Kind() != declaration.KindComment {
				kept = append(kept, d)
			}
		}
		a.Declarations = kept
		return a, nil
	}), nil
}

func known(k declaration.Kind) bool {
	switch k {
	case declaration.KindVariable, declaration.KindCall, declaration.KindComment, declaration.KindRaw:
		return true
	}
	return false
}
