// Package intent is the boundary between the presentation layer and the
// board. It decodes user intents (drop, layout change, navigation, add page,
// submit), validates the drag payload, and dispatches each intent to exactly
// one Board operation.
package intent

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/quadboard/pkg/types"
)

// Type names a user intent.
type Type string

// Intent types.
const (
	TypeDrop     Type = "drop"
	TypeLayout   Type = "layout"
	TypeNavigate Type = "navigate"
	TypeGoto     Type = "goto"
	TypeAddPage  Type = "add_page"
	TypeSubmit   Type = "submit"
)

// Intent decoding errors.
var (
	ErrUnknownIntent   = errors.New("unknown intent type")
	ErrMalformedIntent = errors.New("malformed intent")
)

// Payload is the drag payload carried from the source list to a quadrant.
// Only ID identifies the item; Content is informational.
type Payload struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// Item validates the payload and converts it to a types.Item.
func (p *Payload) Item() (types.Item, error) {
	if p == nil {
		return types.Item{}, types.ErrInvalidItem
	}
	it := types.Item{ID: p.ID, Content: p.Content}
	if err := it.Validate(); err != nil {
		return types.Item{}, err
	}
	return it, nil
}

// Intent is one user action. Which fields are set depends on Type.
type Intent struct {
	Type     Type                `json:"type"`
	Item     *Payload            `json:"item,omitempty"`     // drop
	Quadrant string              `json:"quadrant,omitempty"` // drop
	Layout   []types.LayoutEntry `json:"layout,omitempty"`   // layout
	Delta    int                 `json:"delta,omitempty"`    // navigate
	Page     int                 `json:"page,omitempty"`     // goto, 1-based
}

// Validate checks that the fields required by the intent's type are
// present. It does not consult board state.
func (in Intent) Validate() error {
	switch in.Type {
	case TypeDrop:
		if in.Item == nil {
			return fmt.Errorf("%w: drop requires an item", ErrMalformedIntent)
		}
		if in.Quadrant == "" {
			return fmt.Errorf("%w: drop requires a quadrant", ErrMalformedIntent)
		}
	case TypeLayout:
		if len(in.Layout) == 0 {
			return fmt.Errorf("%w: layout requires entries", ErrMalformedIntent)
		}
	case TypeGoto:
		if in.Page < 1 {
			return fmt.Errorf("%w: goto requires a page number from 1", ErrMalformedIntent)
		}
	case TypeNavigate, TypeAddPage, TypeSubmit:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownIntent, in.Type)
	}
	return nil
}
