package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/quadboard/pkg/types"
)

func TestPage(t *testing.T) {
	page := types.NewPage()
	page.QuadrantItems["2"] = []types.Item{{ID: "1", Content: "Item 1"}}

	out := Page(page, 1, 3)

	assert.Contains(t, out, "Page 2 of 3")
	for _, id := range types.QuadrantIDs {
		assert.Contains(t, out, "Quadrant "+id)
	}
	assert.Contains(t, out, "Item 1")
	assert.Equal(t, 3, strings.Count(out, "(empty)"))
}

func TestPageRowsFollowReadingOrder(t *testing.T) {
	page := types.NewPage()
	page.Layout = []types.LayoutEntry{
		{QuadrantID: "1", X: 0, Y: 6, W: 6, H: 6},
		{QuadrantID: "2", X: 6, Y: 6, W: 6, H: 6},
		{QuadrantID: "3", X: 6, Y: 0, W: 6, H: 6},
		{QuadrantID: "4", X: 0, Y: 0, W: 6, H: 6},
	}

	out := Page(page, 0, 1)

	q4 := strings.Index(out, "Quadrant 4")
	q3 := strings.Index(out, "Quadrant 3")
	q1 := strings.Index(out, "Quadrant 1")
	q2 := strings.Index(out, "Quadrant 2")
	assert.True(t, q4 < q3, "4 and 3 share the top row, 4 on the left")
	assert.True(t, q3 < q1, "top row renders before the bottom row")
	assert.True(t, q1 < q2, "1 and 2 share the bottom row, 1 on the left")

	lines := strings.Split(out, "\n")
	for _, line := range lines {
		if strings.Contains(line, "Quadrant 4") {
			assert.Contains(t, line, "Quadrant 3", "same-row quadrants are side by side")
		}
	}
}

func TestPool(t *testing.T) {
	out := Pool(types.DefaultSeedItems(2))
	assert.Contains(t, out, "Available Items")
	assert.Contains(t, out, "Item 1")
	assert.Contains(t, out, "Item 2")

	assert.Contains(t, Pool(nil), "(none)")
}
