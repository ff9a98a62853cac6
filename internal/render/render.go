// Package render draws a text view of a board page and the item pool for
// the quadboard shell.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/quadboard/pkg/types"
)

// cellWidth is the number of terminal columns per grid column.
const cellWidth = 5

// minBoxWidth keeps a narrow quadrant's title readable.
const minBoxWidth = 16

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	quadrantStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	quadrantTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	emptyStyle         = lipgloss.NewStyle().Faint(true)
	poolItemStyle      = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				Padding(0, 1)
)

// Page renders the page at zero-based index of total as quadrant boxes laid
// out in reading order. Quadrants sharing a row (same y) are drawn side by
// side, ordered by x.
func Page(page types.Page, index, total int) string {
	header := titleStyle.Render(fmt.Sprintf("Page %d of %d", index+1, total))

	var rows []string
	var row []string
	rowY := 0
	for i, entry := range types.ReadingOrder(page.Layout) {
		if i > 0 && entry.Y != rowY {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
		rowY = entry.Y
		row = append(row, quadrant(entry, page.QuadrantItems[entry.QuadrantID]))
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, rows...)...)
}

func quadrant(entry types.LayoutEntry, items []types.Item) string {
	lines := []string{quadrantTitleStyle.Render("Quadrant " + entry.QuadrantID)}
	if len(items) == 0 {
		lines = append(lines, emptyStyle.Render("(empty)"))
	}
	for _, it := range items {
		lines = append(lines, it.Content)
	}
	return quadrantStyle.
		Width(max(entry.W*cellWidth, minBoxWidth)).
		Render(strings.Join(lines, "\n"))
}

// Pool renders the unplaced items as a vertical list.
func Pool(items []types.Item) string {
	lines := []string{titleStyle.Render("Available Items")}
	if len(items) == 0 {
		lines = append(lines, emptyStyle.Render("(none)"))
	}
	for _, it := range items {
		lines = append(lines, poolItemStyle.Render(fmt.Sprintf("%s  %s", it.ID, it.Content)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
