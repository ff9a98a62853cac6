package board

import (
	"slices"

	"github.com/mesh-intelligence/quadboard/pkg/types"
)

// Pool holds the items not yet placed on any page, in seed order. Items
// leave the pool exactly once and never return.
type Pool struct {
	items []types.Item
}

// NewPool returns a pool holding a copy of seed. It returns ErrInvalidItem
// or ErrDuplicateItem if the seed is malformed.
func NewPool(seed []types.Item) (*Pool, error) {
	if err := types.ValidateSeed(seed); err != nil {
		return nil, err
	}
	return &Pool{items: slices.Clone(seed)}, nil
}

// Remove takes the item with the given id out of the pool and returns it.
// Returns ErrNotFound if the pool does not hold the id.
func (p *Pool) Remove(id string) (types.Item, error) {
	i := slices.IndexFunc(p.items, func(it types.Item) bool { return it.ID == id })
	if i < 0 {
		return types.Item{}, types.ErrNotFound
	}
	it := p.items[i]
	p.items = slices.Delete(p.items, i, i+1)
	return it, nil
}

// Contains reports whether the pool holds the id.
func (p *Pool) Contains(id string) bool {
	return slices.ContainsFunc(p.items, func(it types.Item) bool { return it.ID == id })
}

// Items returns a copy of the remaining items in seed order.
func (p *Pool) Items() []types.Item {
	return slices.Clone(p.items)
}

// Len returns the number of remaining items.
func (p *Pool) Len() int {
	return len(p.items)
}
