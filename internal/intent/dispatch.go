package intent

import (
	"github.com/mesh-intelligence/quadboard/internal/summary"
	"github.com/mesh-intelligence/quadboard/pkg/types"
)

// Result is what applying an intent produced. Report is set only for
// submit.
type Result struct {
	Type   Type
	Page   int // Current page (zero-based) after the intent.
	Report *summary.Report
}

// Apply validates in and performs the matching Board operation. Board errors
// are returned unchanged so callers can match them with errors.Is.
func Apply(b types.Board, in Intent) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	switch in.Type {
	case TypeDrop:
		it, err := in.Item.Item()
		if err != nil {
			return Result{}, err
		}
		if err := b.PlaceItem(it, in.Quadrant); err != nil {
			return Result{}, err
		}
	case TypeLayout:
		if err := b.SetLayout(in.Layout); err != nil {
			return Result{}, err
		}
	case TypeNavigate:
		b.Navigate(in.Delta)
	case TypeGoto:
		if err := b.SetCurrentPage(in.Page - 1); err != nil {
			return Result{}, err
		}
	case TypeAddPage:
		if err := b.AddPage(); err != nil {
			return Result{}, err
		}
	case TypeSubmit:
		report := summary.BuildReport(b.Pages())
		return Result{Type: in.Type, Page: b.CurrentPage(), Report: &report}, nil
	}
	return Result{Type: in.Type, Page: b.CurrentPage()}, nil
}
