package types

// ChangeKind names the mutation a Change reports.
type ChangeKind string

// Change kinds, one per mutating Board operation.
const (
	ChangePlace    ChangeKind = "place"    // PlaceItem
	ChangeLayout   ChangeKind = "layout"   // SetLayout
	ChangeNavigate ChangeKind = "navigate" // SetCurrentPage, Navigate
	ChangeAddPage  ChangeKind = "add_page" // AddPage
)

// Change describes one successful mutation of a Board. Observers registered
// with Board.Subscribe receive one Change per mutation.
type Change struct {
	Kind ChangeKind `json:"kind"`

	// Page is the zero-based index of the page the mutation applied to. For
	// ChangeNavigate and ChangeAddPage it is the new current page.
	Page int `json:"page"`

	// ItemID and QuadrantID are set for ChangePlace.
	ItemID     string `json:"item_id,omitempty"`
	QuadrantID string `json:"quadrant_id,omitempty"`

	// Layout is the new layout for ChangeLayout.
	Layout []LayoutEntry `json:"layout,omitempty"`
}
