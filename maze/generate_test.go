package maze_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazelab/coord"
	"github.com/katalvlaran/mazelab/maze"
)

// distances runs a plain BFS over passable cells and returns the step count
// to every reached cell.
func distances(g *maze.Grid, from coord.Key) map[coord.Key]int {
	dist := map[coord.Key]int{from: 0}
	queue := []coord.Key{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range u.Neighbors4() {
			if _, seen := dist[v]; seen || !g.Passable(v) {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}
	return dist
}

func assertBorder(t *testing.T, g *maze.Grid) {
	t.Helper()
	last := g.Size() - 1
	for i := 0; i <= last; i++ {
		for _, k := range []coord.Key{coord.New(0, i), coord.New(last, i), coord.New(i, 0), coord.New(i, last)} {
			require.Equal(t, maze.Wall, g.At(k), "border cell %v", k)
		}
	}
}

func newGen(t *testing.T, seed int64, opts ...maze.Option) *maze.Generator {
	t.Helper()
	gen, err := maze.NewGenerator(append([]maze.Option{maze.WithSeed(seed)}, opts...)...)
	require.NoError(t, err)
	return gen
}

func TestNewGenerator_BadProbability(t *testing.T) {
	for _, p := range []int{-1, 0, 49, 101} {
		_, err := maze.NewGenerator(maze.WithProbability(p))
		require.ErrorIs(t, err, maze.ErrBadProbability)
	}
	gen, err := maze.NewGenerator()
	require.NoError(t, err)
	assert.Equal(t, maze.DefaultProbability, gen.Probability())

	gen, err = maze.NewGenerator(maze.WithProbability(maze.MinProbability), maze.WithSeed(1))
	require.NoError(t, err)
	for size := 8; size <= 60; size++ {
		_, err := gen.Basic(size, true)
		require.NoError(t, err)
	}
	_, err = gen.SimplePath(9)
	require.NoError(t, err)
}

func TestGenerator_SizeTooSmall(t *testing.T) {
	gen := newGen(t, 1)
	cases := []struct {
		name string
		run  func() error
	}{
		{"Basic", func() error { _, err := gen.Basic(7, true); return err }},
		{"MultiFinish", func() error { _, err := gen.MultiFinish(7); return err }},
		{"SimplePath", func() error { _, err := gen.SimplePath(3); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.run(), maze.ErrSizeTooSmall)
		})
	}
}

// TestGenerator_Deterministic verifies equal seeds produce equal mazes.
func TestGenerator_Deterministic(t *testing.T) {
	a, b := newGen(t, 42), newGen(t, 42)
	for size := 8; size <= 20; size += 4 {
		ma, err := a.Basic(size, true)
		require.NoError(t, err)
		mb, err := b.Basic(size, true)
		require.NoError(t, err)
		assert.True(t, ma.Grid.Equal(mb.Grid), "size %d", size)
	}
}

// TestBasic_GroundTruth checks layout invariants and that HasPath matches
// an independent flood fill.
func TestBasic_GroundTruth(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		gen := newGen(t, seed)
		for size := 8; size <= 44; size += 6 {
			for _, path := range []bool{true, false} {
				t.Run(fmt.Sprintf("seed%d/size%d/path=%v", seed, size, path), func(t *testing.T) {
					m, err := gen.Basic(size, path)
					require.NoError(t, err)
					g := m.Grid
					assert.Equal(t, path, m.HasPath)
					assertBorder(t, g)

					start, err := g.Start()
					require.NoError(t, err)
					assert.Equal(t, 2, start.X)
					fin := g.Finishes()
					require.Len(t, fin, 1)
					assert.Equal(t, size-3, fin[0].X)

					_, reached := distances(g, start)[fin[0]]
					assert.Equal(t, path, reached, "\n%s", g)
				})
			}
		}
	}
}

// TestBasic_Size8NoPath is the smallest no-path case: the wall strip sits
// on row 3 or 4 and must cut every route.
func TestBasic_Size8NoPath(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		m, err := newGen(t, seed).Basic(8, false)
		require.NoError(t, err)
		start, err := m.Grid.Start()
		require.NoError(t, err)
		_, reached := distances(m.Grid, start)[m.Grid.Finishes()[0]]
		require.False(t, reached, "seed %d\n%s", seed, m.Grid)
	}
}

// TestMultiFinish_GroundTruth checks Shortest against an independent BFS.
func TestMultiFinish_GroundTruth(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		gen := newGen(t, seed)
		for size := 8; size <= 60; size += 3 {
			m, err := gen.MultiFinish(size)
			require.NoError(t, err)
			g := m.Grid
			assertBorder(t, g)

			start, err := g.Start()
			require.NoError(t, err)
			assert.Equal(t, coord.New(size/2+1, size-4), start)

			fin := g.Finishes()
			require.NotEmpty(t, fin)
			assert.Contains(t, fin, coord.New(size/2+1, size-2), "canonical finish")

			dist := distances(g, start)
			best := -1
			for _, f := range fin {
				d, ok := dist[f]
				require.True(t, ok, "every finish is reachable: %v", f)
				if best < 0 || d < best {
					best = d
				}
			}
			assert.Equal(t, m.Shortest, best, "seed %d size %d\n%s", seed, size, g)
		}
	}
}

// TestSimplePath_GroundTruth checks the corridor is the only open region
// and that its length matches the recorded count.
func TestSimplePath_GroundTruth(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		gen := newGen(t, seed)
		for size := 4; size <= 12; size++ {
			m, err := gen.SimplePath(size)
			require.NoError(t, err)
			g := m.Grid
			assertBorder(t, g)

			start, err := g.Start()
			require.NoError(t, err)
			assert.Equal(t, coord.New(1, 1), start)
			finish := coord.New(size-2, size-2)
			assert.Equal(t, []coord.Key{finish}, g.Finishes())

			dist := distances(g, start)
			if !m.HasPath {
				assert.Equal(t, maze.NoPath, m.Longest)
				assert.NotContains(t, dist, finish)
				continue
			}
			assert.Len(t, g.OpenCells(), m.Longest+1, "every open cell lies on the corridor")
			assert.Len(t, dist, m.Longest+1, "the corridor is connected")
			assert.GreaterOrEqual(t, m.Longest, start.Manhattan(finish))
		}
	}
}

// TestSimplePath_FixedSeed pins the size-8 corridor for seed 7 so that the
// reported length is reproducible.
func TestSimplePath_FixedSeed(t *testing.T) {
	a, err := newGen(t, 7).SimplePath(8)
	require.NoError(t, err)
	b, err := newGen(t, 7).SimplePath(8)
	require.NoError(t, err)

	assert.Equal(t, a.Longest, b.Longest)
	assert.True(t, a.Grid.Equal(b.Grid))
	if a.HasPath {
		assert.Len(t, a.Grid.OpenCells(), a.Longest+1)
	}
}

func TestGenerator_Intn(t *testing.T) {
	assert.Equal(t, newGen(t, 3).Intn(1<<30), newGen(t, 3).Intn(1<<30))

	// WithRand draws from the caller's source
	gen, err := maze.NewGenerator(maze.WithRand(rand.New(rand.NewSource(9))), maze.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, rand.New(rand.NewSource(9)).Intn(1<<30), gen.Intn(1<<30))
}
