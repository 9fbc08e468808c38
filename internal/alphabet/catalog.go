// Package alphabet maps alphabet identifiers to their ordered symbols.
package alphabet

import (
	"slices"
	"strings"
)

// Catalog is an immutable lookup from identifier to symbols.
type Catalog struct {
	order     []string
	alphabets map[string][]string
}

var defaultCatalog = newBuiltin()

// Default returns the catalog of built-in alphabets.
func Default() *Catalog {
	return defaultCatalog
}

// Lookup resolves an identifier in the built-in catalog.
func Lookup(id string) []string {
	return defaultCatalog.Lookup(id)
}

func newBuiltin() *Catalog {
	c := &Catalog{alphabets: make(map[string][]string, len(builtin))}
	for _, id := range builtinOrder {
		c.order = append(c.order, id)
		c.alphabets[normalize(id)] = builtin[id]
	}
	return c
}

// Lookup returns the symbols for id. Unknown identifiers resolve to Latin A-Z.
func (c *Catalog) Lookup(id string) []string {
	if symbols, ok := c.alphabets[normalize(id)]; ok {
		return slices.Clone(symbols)
	}
	return slices.Clone(latinLetters)
}

// Has reports whether id names a known alphabet.
func (c *Catalog) Has(id string) bool {
	_, ok := c.alphabets[normalize(id)]
	return ok
}

// Canonical returns the display form of id, or id unchanged when unknown.
func (c *Catalog) Canonical(id string) string {
	key := normalize(id)
	for _, name := range c.order {
		if normalize(name) == key {
			return name
		}
	}
	return id
}

// Identifiers lists identifiers in display order.
func (c *Catalog) Identifiers() []string {
	return slices.Clone(c.order)
}

// With returns a new catalog extended with custom alphabets. Custom entries
// replace built-ins with the same identifier; new identifiers are appended in
// sorted order.
func (c *Catalog) With(custom map[string][]string) *Catalog {
	next := &Catalog{
		order:     slices.Clone(c.order),
		alphabets: make(map[string][]string, len(c.alphabets)+len(custom)),
	}
	for k, v := range c.alphabets {
		next.alphabets[k] = v
	}
	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		key := normalize(name)
		if _, exists := next.alphabets[key]; !exists {
			next.order = append(next.order, name)
		}
		next.alphabets[key] = slices.Clone(custom[name])
	}
	return next
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
