package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazelab/coord"
	"github.com/katalvlaran/mazelab/table"
)

func TestNewBounded_BadCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		_, err := table.NewBounded[coord.Key, int](c)
		require.ErrorIs(t, err, table.ErrBadCapacity)
	}
}

// TestBounded_InsertLookup covers first-seen-wins and capacity exhaustion.
func TestBounded_InsertLookup(t *testing.T) {
	tb, err := table.NewBounded[coord.Key, int](2)
	require.NoError(t, err)

	require.NoError(t, tb.Insert(coord.New(1, 1), 10))
	require.ErrorIs(t, tb.Insert(coord.New(1, 1), 99), table.ErrDuplicate)

	v, ok := tb.Lookup(coord.New(1, 1))
	require.True(t, ok)
	assert.Equal(t, 10, v, "first insertion must win")

	require.NoError(t, tb.Insert(coord.New(2, 2), 20))
	require.ErrorIs(t, tb.Insert(coord.New(3, 3), 30), table.ErrFull)

	_, ok = tb.Lookup(coord.New(3, 3))
	assert.False(t, ok)
	assert.Equal(t, 2, tb.Len())
	assert.Equal(t, 2, tb.Cap())
}

// TestBounded_SatisfiesTable is a compile-time style check via the interface.
func TestBounded_SatisfiesTable(t *testing.T) {
	var tb table.Table[string, int]
	b, err := table.NewBounded[string, int](1)
	require.NoError(t, err)
	tb = b
	require.NoError(t, tb.Insert("a", 1))
	v, ok := tb.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}
