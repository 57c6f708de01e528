// Package catalog maps stable event ids to the specs that validate their payloads
// and derive their definitions. A Catalog is immutable after New.
package catalog

import (
	"fmt"
	"sort"
)

// Catalog ...
type Catalog struct {
	specs map[string]EventSpec
}

// New panics on duplicated ids
func New(specs ...EventSpec) *Catalog {
	m := make(map[string]EventSpec, len(specs))
	for _, s := range specs {
		if _, existed := m[s.ID()]; existed {
			panic(fmt.Sprintf("duplicated event spec: %s", s.ID()))
		}
		m[s.ID()] = s
	}
	return &Catalog{specs: m}
}

// Default returns the built-in event catalog
func Default() *Catalog {
	return New(
		FuelShock,
		RunwayClosed,
		ReputationHit,
	)
}

// Lookup ...
func (c *Catalog) Lookup(eventID string) (EventSpec, bool) {
	s, ok := c.specs[eventID]
	return s, ok
}

// IDs returns all event ids in ascending order
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.specs))
	for id := range c.specs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
