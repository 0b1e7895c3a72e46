// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

package recommend

import (
	"sort"
	"strings"
)

// Catalog is the canonical item registry and name resolver.
// It is read-only after construction and safe for unsynchronized
// concurrent use.
type Catalog struct {
	items   map[ItemID]Item
	aliases map[ItemID][]string

	// lookup maps normalized text forms to item identifiers.
	lookup map[string]ItemID

	// byPopularity holds all item IDs sorted by popularity descending,
	// ties broken by ascending ID. Precomputed for the cold-start fallback.
	byPopularity []ItemID
}

// NormalizeName converts a raw free-text item name to its lookup form:
// whitespace is trimmed and collapsed, letters are case-folded.
func NormalizeName(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}

// NewCatalog builds a catalog from the item registry and alias map.
// Each item's canonical display name is registered as an alias of itself;
// explicit aliases only need to carry additional spellings.
func NewCatalog(items []Item, aliases map[string]ItemID) *Catalog {
	c := &Catalog{
		items:   make(map[ItemID]Item, len(items)),
		aliases: make(map[ItemID][]string),
		lookup:  make(map[string]ItemID, len(items)+len(aliases)),
	}

	for _, item := range items {
		c.items[item.ID] = item
		c.lookup[NormalizeName(item.Name)] = item.ID
	}

	for form, id := range aliases {
		norm := NormalizeName(form)
		c.lookup[norm] = id
		c.aliases[id] = append(c.aliases[id], norm)
	}

	c.byPopularity = make([]ItemID, 0, len(c.items))
	for id := range c.items {
		c.byPopularity = append(c.byPopularity, id)
	}
	sort.Slice(c.byPopularity, func(i, j int) bool {
		a, b := c.byPopularity[i], c.byPopularity[j]
		if c.items[a].Popularity != c.items[b].Popularity {
			return c.items[a].Popularity > c.items[b].Popularity
		}
		return a < b
	})

	return c
}

// Resolve maps a raw cart entry to an item identifier.
// The second return is false for names not present in the catalog;
// the caller decides the fallback policy.
func (c *Catalog) Resolve(raw string) (ItemID, bool) {
	id, ok := c.lookup[NormalizeName(raw)]
	return id, ok
}

// NameOf returns the canonical display name for an item identifier.
func (c *Catalog) NameOf(id ItemID) string {
	return c.items[id].Name
}

// Item returns the full catalog entry for an identifier.
func (c *Catalog) Item(id ItemID) (Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Len returns the number of catalog items.
func (c *Catalog) Len() int {
	return len(c.items)
}
