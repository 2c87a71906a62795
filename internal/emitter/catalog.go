// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package emitter

import "github.com/vk/emitgrid/internal/declaration"

// Catalog holds the configured emitters and bundles in configuration order.
// It is read-only after NewCatalog returns and safe to share across requests.
type Catalog struct {
	emitters []*Emitter
	bundles  []*Bundle

	emitterByKey map[string]*Emitter
	bundleByKey  map[string]*Bundle
	defaultKey   string
}

// NewCatalog indexes emitters and bundles. Key uniqueness is the builder's
// job; on duplicates the first entry wins here.
func NewCatalog(emitters []*Emitter, bundles []*Bundle) *Catalog {
	c := &Catalog{
		emitters:     emitters,
		bundles:      bundles,
		emitterByKey: make(map[string]*Emitter, len(emitters)),
		bundleByKey:  make(map[string]*Bundle, len(bundles)),
	}
	for _, e := range emitters {
		if _, exists := c.emitterByKey[e.Key]; !exists {
			c.emitterByKey[e.Key] = e
		}
		if e.IsDefault && c.defaultKey == "" {
			c.defaultKey = e.Key
		}
	}
	if c.defaultKey == "" && len(emitters) > 0 {
		c.defaultKey = emitters[0].Key
	}
	for _, b := range bundles {
		if _, exists := c.bundleByKey[b.Key]; !exists {
			c.bundleByKey[b.Key] = b
		}
	}
	return c
}

// Emitters returns the emitters in configuration order.
func (c *Catalog) Emitters() []*Emitter { return c.emitters }

// Bundles returns the bundles in configuration order.
func (c *Catalog) Bundles() []*Bundle { return c.bundles }

func (c *Catalog) Emitter(key string) (*Emitter, bool) {
	e, ok := c.emitterByKey[key]
	return e, ok
}

func (c *Catalog) Bundle(key string) (*Bundle, bool) {
	b, ok := c.bundleByKey[key]
	return b, ok
}

// DefaultKey returns the key of the emitter flagged as default, or the first
// configured emitter when none is flagged.
func (c *Catalog) DefaultKey() string { return c.defaultKey }

// UnbundledKeys returns, in configuration order, the keys of emitters that no
// bundle references.
func (c *Catalog) UnbundledKeys() []string {
	var keys []string
	for _, e := range c.emitters {
		if !c.IsBundled(e.Key) {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// IsBundled reports whether any bundle lists key as a member.
func (c *Catalog) IsBundled(key string) bool {
	for _, b := range c.bundles {
		if b.Includes(key) {
			return true
		}
	}
	return false
}

// TargetOf returns the emitter key a declaration is routed to.
func TargetOf(d declaration.Declaration, defaultKey string) string {
	if key := d.TargetKey(); key != "" {
		return key
	}
	return defaultKey
}

// ForTarget filters decls to those routed to any of keys, grouped key by key
// in the order the keys are given.
func ForTarget(decls []declaration.Declaration, defaultKey string, keys ...string) []declaration.Declaration {
	var out []declaration.Declaration
	for _, key := range keys {
		for _, d := range decls {
			if TargetOf(d, defaultKey) == key {
				out = append(out, d)
			}
		}
	}
	return out
}
