// Package board implements the quadboard state container: the item pool,
// the append-only page collection with its current-page index, and change
// notifications for observers.
package board

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/quadboard/pkg/types"
)

// Board implements types.Board. It holds all dashboard state for one
// session; pages are created on demand and never removed.
type Board struct {
	mu      sync.Mutex
	pool    *Pool
	pages   []types.Page
	current int
	logger  *zap.Logger

	observers    []observer
	nextObserver int
}

var _ types.Board = (*Board)(nil)

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used for mutation and rejection events.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Board) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates a board whose pool holds seed and whose only page is a fresh
// page with the default layout. It returns ErrInvalidItem or ErrDuplicateItem
// for a malformed seed.
func New(seed []types.Item, opts ...Option) (*Board, error) {
	pool, err := NewPool(seed)
	if err != nil {
		return nil, err
	}
	b := &Board{
		pool:   pool,
		pages:  []types.Page{types.NewPage()},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// PlaceItem moves an item from the pool into a quadrant of the current page.
func (b *Board) PlaceItem(item types.Item, quadrantID string) error {
	change, err := b.placeItem(item, quadrantID)
	if err != nil {
		b.logger.Debug("place item rejected",
			zap.String("item", item.ID),
			zap.String("quadrant", quadrantID),
			zap.Error(err))
		return err
	}
	b.logger.Debug("item placed",
		zap.String("item", change.ItemID),
		zap.String("quadrant", change.QuadrantID),
		zap.Int("page", change.Page))
	b.notify(change)
	return nil
}

func (b *Board) placeItem(item types.Item, quadrantID string) (types.Change, error) {
	if err := item.Validate(); err != nil {
		return types.Change{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	page := b.pages[b.current]
	if !page.HasQuadrant(quadrantID) {
		return types.Change{}, types.ErrInvalidQuadrant
	}
	placed, err := b.pool.Remove(item.ID)
	if err != nil {
		return types.Change{}, err
	}
	page.QuadrantItems[quadrantID] = append(page.QuadrantItems[quadrantID], placed)

	return types.Change{
		Kind:       types.ChangePlace,
		Page:       b.current,
		ItemID:     placed.ID,
		QuadrantID: quadrantID,
	}, nil
}

// SetLayout replaces the current page's layout.
func (b *Board) SetLayout(layout []types.LayoutEntry) error {
	change, err := b.setLayout(layout)
	if err != nil {
		b.logger.Debug("layout rejected", zap.Int("entries", len(layout)), zap.Error(err))
		return err
	}
	b.logger.Debug("layout changed", zap.Int("page", change.Page))
	b.notify(change)
	return nil
}

func (b *Board) setLayout(layout []types.LayoutEntry) (types.Change, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	page := &b.pages[b.current]
	if err := types.ValidateLayout(layout, page.QuadrantIDs()); err != nil {
		return types.Change{}, err
	}
	page.Layout = slices.Clone(layout)

	return types.Change{
		Kind:   types.ChangeLayout,
		Page:   b.current,
		Layout: slices.Clone(layout),
	}, nil
}

// IsPageFull reports whether every quadrant on the page at index is
// non-empty.
func (b *Board) IsPageFull(index int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if index < 0 || index >= len(b.pages) {
		return false, types.ErrOutOfRange
	}
	return b.pages[index].IsFull(), nil
}

// AddPage appends a fresh page after a full last page and makes it current.
func (b *Board) AddPage() error {
	change, err := b.addPage()
	if err != nil {
		b.logger.Debug("add page rejected", zap.Error(err))
		return err
	}
	b.logger.Debug("page added", zap.Int("page", change.Page))
	b.notify(change)
	return nil
}

func (b *Board) addPage() (types.Change, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current != len(b.pages)-1 || !b.pages[b.current].IsFull() {
		return types.Change{}, types.ErrPageNotFull
	}
	b.pages = append(b.pages, types.NewPage())
	b.current = len(b.pages) - 1

	return types.Change{Kind: types.ChangeAddPage, Page: b.current}, nil
}

// SetCurrentPage makes the page at index current. Selecting the page that is
// already current succeeds without emitting a change.
func (b *Board) SetCurrentPage(index int) error {
	changed, err := b.setCurrent(index)
	if err != nil {
		b.logger.Debug("navigate rejected", zap.Int("page", index), zap.Error(err))
		return err
	}
	if changed {
		b.logger.Debug("page selected", zap.Int("page", index))
		b.notify(types.Change{Kind: types.ChangeNavigate, Page: index})
	}
	return nil
}

func (b *Board) setCurrent(index int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if index < 0 || index >= len(b.pages) {
		return false, types.ErrOutOfRange
	}
	changed := b.current != index
	b.current = index
	return changed, nil
}

// Navigate moves the current page by delta, clamped to [0, PageCount()-1].
func (b *Board) Navigate(delta int) int {
	b.mu.Lock()
	target := min(max(b.current+delta, 0), len(b.pages)-1)
	changed := target != b.current
	b.current = target
	b.mu.Unlock()

	if changed {
		b.logger.Debug("page selected", zap.Int("page", target), zap.Int("delta", delta))
		b.notify(types.Change{Kind: types.ChangeNavigate, Page: target})
	}
	return target
}

// CurrentPage returns the zero-based index of the current page.
func (b *Board) CurrentPage() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// PageCount returns the number of pages.
func (b *Board) PageCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pages)
}

// Pages returns a deep copy of every page in order.
func (b *Board) Pages() []types.Page {
	b.mu.Lock()
	defer b.mu.Unlock()

	pages := make([]types.Page, len(b.pages))
	for i, p := range b.pages {
		pages[i] = p.Clone()
	}
	return pages
}

// Pool returns a copy of the unplaced items in seed order.
func (b *Board) Pool() []types.Item {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pool.Items()
}
