package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quadboard/pkg/types"
)

func TestNewPool(t *testing.T) {
	tests := []struct {
		name    string
		seed    []types.Item
		wantLen int
		wantErr error
	}{
		{name: "default seed", seed: types.DefaultSeedItems(5), wantLen: 5},
		{name: "empty seed", seed: nil, wantLen: 0},
		{name: "empty id", seed: []types.Item{{ID: ""}}, wantErr: types.ErrInvalidItem},
		{name: "duplicate id", seed: []types.Item{{ID: "1"}, {ID: "1"}}, wantErr: types.ErrDuplicateItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPool(tt.seed)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, p.Len())
		})
	}
}

func TestPoolRemove(t *testing.T) {
	p, err := NewPool(types.DefaultSeedItems(3))
	require.NoError(t, err)

	it, err := p.Remove("2")
	require.NoError(t, err)
	assert.Equal(t, types.Item{ID: "2", Content: "Item 2"}, it)
	assert.Equal(t, 2, p.Len())
	assert.False(t, p.Contains("2"))
	assert.Equal(t, []types.Item{
		{ID: "1", Content: "Item 1"},
		{ID: "3", Content: "Item 3"},
	}, p.Items(), "remaining items keep seed order")

	_, err = p.Remove("2")
	assert.ErrorIs(t, err, types.ErrNotFound, "removed items never return")
	assert.Equal(t, 2, p.Len())

	_, err = p.Remove("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestPoolItemsIsCopy(t *testing.T) {
	p, err := NewPool(types.DefaultSeedItems(2))
	require.NoError(t, err)

	items := p.Items()
	items[0].Content = "changed"

	assert.Equal(t, "Item 1", p.Items()[0].Content)
}

func TestNewPoolCopiesSeed(t *testing.T) {
	seed := types.DefaultSeedItems(2)
	p, err := NewPool(seed)
	require.NoError(t, err)

	seed[0].ID = "changed"
	assert.True(t, p.Contains("1"))
}
