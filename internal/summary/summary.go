// Package summary derives the read-only layout report for a set of pages.
// Quadrants are listed in each page's reading order (top-to-bottom, then
// left-to-right) and items in the order they were placed.
package summary

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/quadboard/pkg/types"
)

// Report is the structured form of a summary.
type Report struct {
	Pages []PageReport `json:"pages"`
}

// PageReport lists one page's quadrants in reading order.
type PageReport struct {
	Number    int              `json:"page"` // 1-based.
	Positions []PositionReport `json:"positions"`
}

// PositionReport is one quadrant at its reading-order position.
type PositionReport struct {
	Position   int          `json:"position"` // 1-based.
	QuadrantID string       `json:"quadrant"`
	Items      []types.Item `json:"items"`
}

const (
	header  = "Layout Summary:"
	bullet  = "•"
	noItems = "No items"
)

// BuildReport orders every page's quadrants by (y, x) and collects their
// items. It does not modify pages.
func BuildReport(pages []types.Page) Report {
	r := Report{Pages: make([]PageReport, 0, len(pages))}
	for i, page := range pages {
		ordered := types.ReadingOrder(page.Layout)
		pr := PageReport{
			Number:    i + 1,
			Positions: make([]PositionReport, 0, len(ordered)),
		}
		for j, entry := range ordered {
			pr.Positions = append(pr.Positions, PositionReport{
				Position:   j + 1,
				QuadrantID: entry.QuadrantID,
				Items:      append([]types.Item{}, page.QuadrantItems[entry.QuadrantID]...),
			})
		}
		r.Pages = append(r.Pages, pr)
	}
	return r
}

// Format renders a report as the plain-text summary. Newlines are
// significant; the text is meant to be displayed verbatim.
func Format(r Report) string {
	var sb strings.Builder
	sb.WriteString(header + "\n\n")
	for _, page := range r.Pages {
		fmt.Fprintf(&sb, "Page %d:\n", page.Number)
		for _, pos := range page.Positions {
			fmt.Fprintf(&sb, "  Position %d - Quadrant %s:\n", pos.Position, pos.QuadrantID)
			if len(pos.Items) == 0 {
				fmt.Fprintf(&sb, "    %s %s\n", bullet, noItems)
				continue
			}
			for _, it := range pos.Items {
				fmt.Fprintf(&sb, "    %s %s\n", bullet, it.Content)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Generate returns the plain-text summary of pages. The same pages always
// produce the same text.
func Generate(pages []types.Page) string {
	return Format(BuildReport(pages))
}
