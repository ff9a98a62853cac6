package types

import (
	"maps"
	"slices"
)

// Page is one grid arrangement: the items assigned to each quadrant and the
// quadrants' geometry. The quadrant ids in QuadrantItems and Layout are the
// same set, fixed when the page is created.
type Page struct {
	QuadrantItems map[string][]Item `json:"quadrant_items"`
	Layout        []LayoutEntry     `json:"layout"`
}

// NewPage returns a page with the canonical quadrants, no items, and the
// default layout.
func NewPage() Page {
	items := make(map[string][]Item, len(QuadrantIDs))
	for _, id := range QuadrantIDs {
		items[id] = []Item{}
	}
	return Page{
		QuadrantItems: items,
		Layout:        DefaultLayout(),
	}
}

// QuadrantIDs returns the page's quadrant ids in ascending order.
func (p Page) QuadrantIDs() []string {
	return slices.Sorted(maps.Keys(p.QuadrantItems))
}

// HasQuadrant reports whether id is one of the page's quadrants.
func (p Page) HasQuadrant(id string) bool {
	_, ok := p.QuadrantItems[id]
	return ok
}

// IsFull reports whether every quadrant on the page holds at least one item.
// A page without quadrants is never full.
func (p Page) IsFull() bool {
	if len(p.QuadrantItems) == 0 {
		return false
	}
	for _, items := range p.QuadrantItems {
		if len(items) == 0 {
			return false
		}
	}
	return true
}

// ItemCount returns the number of items placed on the page.
func (p Page) ItemCount() int {
	n := 0
	for _, items := range p.QuadrantItems {
		n += len(items)
	}
	return n
}

// Clone returns a deep copy of the page. Mutating the copy's maps or slices
// does not affect p.
func (p Page) Clone() Page {
	items := make(map[string][]Item, len(p.QuadrantItems))
	for id, list := range p.QuadrantItems {
		items[id] = append([]Item{}, list...)
	}
	return Page{
		QuadrantItems: items,
		Layout:        slices.Clone(p.Layout),
	}
}
