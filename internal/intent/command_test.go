package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quadboard/pkg/types"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Intent
		wantErr error
	}{
		{
			name: "drop",
			line: "drop 3 2",
			want: Intent{Type: TypeDrop, Item: &Payload{ID: "3"}, Quadrant: "2"},
		},
		{
			name: "verb is case insensitive",
			line: "  DROP 3   2 ",
			want: Intent{Type: TypeDrop, Item: &Payload{ID: "3"}, Quadrant: "2"},
		},
		{name: "prev", line: "prev", want: Intent{Type: TypeNavigate, Delta: -1}},
		{name: "next", line: "next", want: Intent{Type: TypeNavigate, Delta: 1}},
		{name: "page", line: "page 2", want: Intent{Type: TypeGoto, Page: 2}},
		{name: "add-page", line: "add-page", want: Intent{Type: TypeAddPage}},
		{name: "add_page", line: "add_page", want: Intent{Type: TypeAddPage}},
		{name: "submit", line: "submit", want: Intent{Type: TypeSubmit}},
		{
			name: "layout",
			line: "layout 1=6,0,6,6 2=0,0,6,6 3=0,6,6,6 4=6,6,6,6",
			want: Intent{Type: TypeLayout, Layout: []types.LayoutEntry{
				{QuadrantID: "1", X: 6, Y: 0, W: 6, H: 6},
				{QuadrantID: "2", X: 0, Y: 0, W: 6, H: 6},
				{QuadrantID: "3", X: 0, Y: 6, W: 6, H: 6},
				{QuadrantID: "4", X: 6, Y: 6, W: 6, H: 6},
			}},
		},
		{name: "empty", line: "   ", wantErr: ErrMalformedIntent},
		{name: "unknown verb", line: "undo", wantErr: ErrUnknownIntent},
		{name: "drop missing quadrant", line: "drop 3", wantErr: ErrMalformedIntent},
		{name: "page not a number", line: "page two", wantErr: ErrMalformedIntent},
		{name: "page zero", line: "page 0", wantErr: ErrMalformedIntent},
		{name: "layout without entries", line: "layout", wantErr: ErrMalformedIntent},
		{name: "layout missing equals", line: "layout 1:0,0,6,6", wantErr: ErrMalformedIntent},
		{name: "layout short geometry", line: "layout 1=0,0,6", wantErr: ErrMalformedIntent},
		{name: "layout bad number", line: "layout 1=0,x,6,6", wantErr: ErrMalformedIntent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
