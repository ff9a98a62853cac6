package types

import (
	"errors"
	"strconv"
)

// Item is a labeled entry that starts in the pool and is dropped into exactly
// one quadrant over its lifetime.
type Item struct {
	ID      string `json:"id" yaml:"id" mapstructure:"id"`                // Unique within the seed set.
	Content string `json:"content" yaml:"content" mapstructure:"content"` // Display label.
}

// Item validation errors.
var (
	ErrInvalidItem   = errors.New("item id must not be empty")
	ErrDuplicateItem = errors.New("duplicate item id")
)

// Validate returns ErrInvalidItem if the item has no ID.
func (it Item) Validate() error {
	if it.ID == "" {
		return ErrInvalidItem
	}
	return nil
}

// ValidateSeed checks a seed list: every item needs an ID and no ID may
// repeat. An empty list is valid here; Config.Validate decides whether an
// empty seed is acceptable.
func ValidateSeed(items []Item) error {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
		if seen[it.ID] {
			return ErrDuplicateItem
		}
		seen[it.ID] = true
	}
	return nil
}

// DefaultSeedItems returns n items with IDs "1".."n" and labels
// "Item 1".."Item n".
func DefaultSeedItems(n int) []Item {
	items := make([]Item, 0, n)
	for i := 1; i <= n; i++ {
		id := strconv.Itoa(i)
		items = append(items, Item{ID: id, Content: "Item " + id})
	}
	return items
}
