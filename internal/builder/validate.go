// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package builder

import (
	"fmt"

	"github.com/vk/emitgrid/internal/config"
)

// validateKeys checks key presence and uniqueness before anything is
// instantiated.
func validateKeys(model *config.Model) error {
	seen := make(map[string]bool, len(model.Emitters))
	var defaults []string
	for _, e := range model.Emitters {
		if e.Key == "" {
			return fmt.Errorf("emitter defined in %s has an empty key", e.Source)
		}
		if seen[e.Key] {
			return &DuplicateKeyError{Kind: "emitter", Key: e.Key}
		}
		seen[e.Key] = true
		if e.Default {
			defaults = append(defaults, e.Key)
		}
	}
	if len(defaults) > 1 {
		return &DuplicateDefaultEmitterError{Keys: defaults}
	}

	seen = make(map[string]bool, len(model.Bundles))
	for _, b := range model.Bundles {
		if b.Key == "" {
			return fmt.Errorf("bundle defined in %s has an empty key", b.Source)
		}
		if seen[b.Key] {
			return &DuplicateKeyError{Kind: "bundle", Key: b.Key}
		}
		seen[b.Key] = true
	}
	return nil
}
