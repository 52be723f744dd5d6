package maze_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazelab/coord"
	"github.com/katalvlaran/mazelab/graph"
	"github.com/katalvlaran/mazelab/maze"
)

const corridor = "" +
	"XXXXXX\n" +
	"XS   X\n" +
	"X XXXX\n" +
	"X XXXX\n" +
	"X   FX\n" +
	"XXXXXX\n" +
	"\n"

func TestNewGrid(t *testing.T) {
	_, err := maze.NewGrid(0)
	require.ErrorIs(t, err, maze.ErrSizeTooSmall)

	g, err := maze.NewGrid(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Size())
	assert.Empty(t, g.OpenCells())
	assert.Equal(t, "XXX\nXXX\nXXX\n\n", g.String())
}

// TestParse_Errors verifies every malformed-text sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", maze.ErrEmptyGrid},
		{"OnlyBlankLines", "\n\n", maze.ErrEmptyGrid},
		{"Ragged", "XXX\nXS\nXXX\n", maze.ErrNonSquare},
		{"Rectangular", "XXXX\nXSFX\n", maze.ErrNonSquare},
		{"BadCell", "XXX\nXS#\nXXX\n", maze.ErrBadCell},
		{"NoStart", "XXX\nX F\nXXX\n", maze.ErrNoStart},
		{"TwoStarts", "XXX\nSSF\nXXX\n", maze.ErrMultipleStarts},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.Parse(tc.text)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	g, err := maze.Parse(corridor)
	require.NoError(t, err)
	assert.Equal(t, corridor, g.String())

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(corridor)), n)

	// CRLF input decodes to the same grid
	crlf, err := maze.Parse("XXX\r\nXSX\r\nXXX\r\n")
	require.NoError(t, err)
	assert.Equal(t, "XXX\nXSX\nXXX\n\n", crlf.String())
}

func TestGrid_Accessors(t *testing.T) {
	g, err := maze.Parse(corridor)
	require.NoError(t, err)

	start, err := g.Start()
	require.NoError(t, err)
	assert.Equal(t, coord.New(1, 1), start)
	assert.Equal(t, []coord.Key{coord.New(4, 4)}, g.Finishes())
	assert.Len(t, g.OpenCells(), 10)

	assert.Equal(t, maze.Wall, g.At(coord.New(-1, 2)), "outside reads as wall")
	assert.False(t, g.Passable(coord.New(6, 0)))
	assert.True(t, g.Passable(coord.New(4, 4)))

	k := coord.New(3, 1)
	assert.Equal(t, k, g.Coordinate(g.Index(k)))

	assert.PanicsWithError(t, "maze: coordinate out of bounds: (6,6) in 6×6 grid",
		func() { g.Set(coord.New(6, 6), maze.Open) })
	assert.Panics(t, func() { g.Set(coord.New(1, 1), maze.Cell('?')) })
}

// TestGrid_CloneIsDeep verifies a clone does not share rows with its source.
func TestGrid_CloneIsDeep(t *testing.T) {
	g, err := maze.Parse(corridor)
	require.NoError(t, err)
	c := g.Clone()
	require.True(t, g.Equal(c))

	c.Set(coord.New(2, 2), maze.Open)
	assert.Equal(t, maze.Wall, g.At(coord.New(2, 2)))
	assert.False(t, g.Equal(c))
}

func TestGrid_StartErrors(t *testing.T) {
	g, err := maze.Parse(corridor)
	require.NoError(t, err)

	g.Set(coord.New(1, 2), maze.Start)
	_, err = g.Start()
	require.ErrorIs(t, err, maze.ErrMultipleStarts)

	g.Set(coord.New(1, 1), maze.Open)
	g.Set(coord.New(1, 2), maze.Open)
	_, err = g.Start()
	require.ErrorIs(t, err, maze.ErrNoStart)
}

// TestGrid_ToGraph checks vertices and undirected edges on both backends.
func TestGrid_ToGraph(t *testing.T) {
	g, err := maze.Parse(corridor)
	require.NoError(t, err)

	for _, be := range []graph.Backend{graph.Matrix, graph.List} {
		t.Run(be.String(), func(t *testing.T) {
			gr, err := g.ToGraph(be)
			require.NoError(t, err)
			assert.Equal(t, 10, gr.Len())
			assert.Equal(t, 10, gr.Capacity())

			pairs := [][2]coord.Key{
				{coord.New(1, 1), coord.New(1, 2)},
				{coord.New(1, 3), coord.New(1, 4)},
				{coord.New(1, 1), coord.New(2, 1)},
				{coord.New(3, 1), coord.New(4, 1)},
				{coord.New(4, 3), coord.New(4, 4)},
			}
			for _, p := range pairs {
				assert.True(t, gr.GetEdge(p[0], p[1]), "%v->%v", p[0], p[1])
				assert.True(t, gr.GetEdge(p[1], p[0]), "%v->%v", p[1], p[0])
			}
			assert.False(t, gr.GetEdge(coord.New(1, 2), coord.New(2, 2)), "wall cells are not vertices")
			assert.False(t, gr.GetEdge(coord.New(1, 4), coord.New(4, 4)))
		})
	}

	walls, err := maze.NewGrid(4)
	require.NoError(t, err)
	_, err = walls.ToGraph(graph.List)
	require.ErrorIs(t, err, graph.ErrBadCapacity)
}
