package types

import "errors"

// Board is the dashboard state container. It owns the item pool and the page
// collection; callers mutate it only through these methods and read it
// through snapshots.
type Board interface {
	// PlaceItem moves the pool item with item.ID into quadrantID on the
	// current page. The pool's copy of the item is placed; item.Content is
	// not trusted. Returns ErrInvalidItem for an empty id, ErrInvalidQuadrant
	// if the page has no such quadrant, and ErrNotFound if the pool does not
	// hold the item. Nothing changes on error.
	PlaceItem(item Item, quadrantID string) error

	// SetLayout replaces the current page's layout. Returns ErrInvalidLayout
	// unless layout names each of the page's quadrants exactly once.
	SetLayout(layout []LayoutEntry) error

	// IsPageFull reports whether every quadrant on the page at index holds
	// at least one item. Returns ErrOutOfRange for a bad index.
	IsPageFull(index int) (bool, error)

	// AddPage appends a fresh page and makes it current. Returns
	// ErrPageNotFull unless the current page is the last page and is full.
	AddPage() error

	// SetCurrentPage makes the page at index current. Returns ErrOutOfRange
	// unless 0 <= index < PageCount().
	SetCurrentPage(index int) error

	// Navigate moves the current page by delta, clamped to the valid range,
	// and returns the new index.
	Navigate(delta int) int

	// CurrentPage returns the zero-based index of the current page.
	CurrentPage() int

	// PageCount returns the number of pages.
	PageCount() int

	// Pages returns a deep copy of every page in order.
	Pages() []Page

	// Pool returns a copy of the unplaced items in seed order.
	Pool() []Item

	// Subscribe registers fn to receive every subsequent Change. The
	// returned function cancels the subscription and is safe to call more
	// than once.
	Subscribe(fn func(Change)) (cancel func())
}

// Board operation errors.
var (
	ErrNotFound        = errors.New("item not found in pool")
	ErrInvalidQuadrant = errors.New("invalid quadrant")
	ErrPageNotFull     = errors.New("current page is not full or is not the last page")
	ErrOutOfRange      = errors.New("page index out of range")
)
