package intent

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/quadboard/pkg/types"
)

// ParseCommand parses one shell command into an intent:
//
//	drop <item-id> <quadrant>
//	layout <q>=<x>,<y>,<w>,<h> ...
//	prev | next
//	page <n>
//	add-page
//	submit
//
// It returns ErrUnknownIntent for any other verb and ErrMalformedIntent for
// bad arguments.
func ParseCommand(line string) (Intent, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Intent{}, fmt.Errorf("%w: empty command", ErrMalformedIntent)
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	var in Intent
	switch verb {
	case "drop":
		if len(args) != 2 {
			return Intent{}, fmt.Errorf("%w: usage: drop <item-id> <quadrant>", ErrMalformedIntent)
		}
		in = Intent{Type: TypeDrop, Item: &Payload{ID: args[0]}, Quadrant: args[1]}
	case "layout":
		layout, err := parseLayout(args)
		if err != nil {
			return Intent{}, err
		}
		in = Intent{Type: TypeLayout, Layout: layout}
	case "prev":
		in = Intent{Type: TypeNavigate, Delta: -1}
	case "next":
		in = Intent{Type: TypeNavigate, Delta: 1}
	case "page":
		if len(args) != 1 {
			return Intent{}, fmt.Errorf("%w: usage: page <n>", ErrMalformedIntent)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return Intent{}, fmt.Errorf("%w: page number %q", ErrMalformedIntent, args[0])
		}
		in = Intent{Type: TypeGoto, Page: n}
	case "add-page", "add_page":
		in = Intent{Type: TypeAddPage}
	case "submit":
		in = Intent{Type: TypeSubmit}
	default:
		return Intent{}, fmt.Errorf("%w: %q", ErrUnknownIntent, verb)
	}
	if err := in.Validate(); err != nil {
		return Intent{}, err
	}
	return in, nil
}

// parseLayout parses "<q>=<x>,<y>,<w>,<h>" arguments.
func parseLayout(args []string) ([]types.LayoutEntry, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: usage: layout <q>=<x>,<y>,<w>,<h> ...", ErrMalformedIntent)
	}
	layout := make([]types.LayoutEntry, 0, len(args))
	for _, arg := range args {
		id, geom, ok := strings.Cut(arg, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("%w: layout entry %q", ErrMalformedIntent, arg)
		}
		parts := strings.Split(geom, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("%w: layout entry %q needs x,y,w,h", ErrMalformedIntent, arg)
		}
		var nums [4]int
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("%w: layout entry %q: %q is not a number", ErrMalformedIntent, arg, p)
			}
			nums[i] = n
		}
		layout = append(layout, types.LayoutEntry{
			QuadrantID: id, X: nums[0], Y: nums[1], W: nums[2], H: nums[3],
		})
	}
	return layout, nil
}
