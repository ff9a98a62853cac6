package types

import (
	"cmp"
	"errors"
	"slices"
)

// Canonical quadrant identifiers. Every page carries exactly these four.
const (
	Quadrant1 = "1"
	Quadrant2 = "2"
	Quadrant3 = "3"
	Quadrant4 = "4"
)

// QuadrantIDs lists the canonical quadrant identifiers in creation order.
var QuadrantIDs = []string{Quadrant1, Quadrant2, Quadrant3, Quadrant4}

// Grid geometry shared by every page.
const (
	GridColumns   = 12 // Columns across the grid.
	GridRowHeight = 30 // Pixel height of one row unit.
	GridMarginX   = 20 // Horizontal pixel margin between quadrants.
	GridMarginY   = 20 // Vertical pixel margin between quadrants.

	// QuadrantSpan is the width and height, in grid units, of a quadrant in
	// the default 2x2 tiling.
	QuadrantSpan = GridColumns / 2
)

// ErrInvalidLayout is returned when a layout does not name exactly the
// page's quadrants, each once.
var ErrInvalidLayout = errors.New("layout must contain each page quadrant exactly once")

// LayoutEntry is the geometry of one quadrant, in grid units. The JSON keys
// follow the grid toolkit's item shape (i, x, y, w, h).
type LayoutEntry struct {
	QuadrantID string `json:"i" yaml:"i"`
	X          int    `json:"x" yaml:"x"`
	Y          int    `json:"y" yaml:"y"`
	W          int    `json:"w" yaml:"w"`
	H          int    `json:"h" yaml:"h"`
}

// DefaultLayout tiles the four quadrants 2x2, each spanning half the columns
// and QuadrantSpan rows.
func DefaultLayout() []LayoutEntry {
	return []LayoutEntry{
		{QuadrantID: Quadrant1, X: 0, Y: 0, W: QuadrantSpan, H: QuadrantSpan},
		{QuadrantID: Quadrant2, X: QuadrantSpan, Y: 0, W: QuadrantSpan, H: QuadrantSpan},
		{QuadrantID: Quadrant3, X: 0, Y: QuadrantSpan, W: QuadrantSpan, H: QuadrantSpan},
		{QuadrantID: Quadrant4, X: QuadrantSpan, Y: QuadrantSpan, W: QuadrantSpan, H: QuadrantSpan},
	}
}

// ReadingOrder returns a copy of layout sorted top-to-bottom, then
// left-to-right: ascending by (Y, X). Entries at the same position keep their
// input order.
func ReadingOrder(layout []LayoutEntry) []LayoutEntry {
	sorted := slices.Clone(layout)
	slices.SortStableFunc(sorted, func(a, b LayoutEntry) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return sorted
}

// ValidateLayout checks that layout names every id in quadrantIDs exactly once
// and nothing else. Geometry is not checked.
func ValidateLayout(layout []LayoutEntry, quadrantIDs []string) error {
	if len(layout) != len(quadrantIDs) {
		return ErrInvalidLayout
	}
	want := make(map[string]bool, len(quadrantIDs))
	for _, id := range quadrantIDs {
		want[id] = true
	}
	seen := make(map[string]bool, len(layout))
	for _, e := range layout {
		if !want[e.QuadrantID] || seen[e.QuadrantID] {
			return ErrInvalidLayout
		}
		seen[e.QuadrantID] = true
	}
	return nil
}
