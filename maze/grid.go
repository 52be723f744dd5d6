package maze

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mazelab/coord"
	"github.com/katalvlaran/mazelab/graph"
)

// Grid is a size×size square of cells addressed by coord.Key, X being the
// row and Y the column. The zero value is not usable; build one with
// NewGrid, Parse or a Generator.
type Grid struct {
	size  int
	cells [][]Cell
}

// NewGrid returns a size×size grid filled with Wall.
// Returns ErrSizeTooSmall for size < 1.
// Complexity: O(size²).
func NewGrid(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrSizeTooSmall, size)
	}
	return newGrid(size), nil
}

func newGrid(size int) *Grid {
	cells := make([][]Cell, size)
	for x := range cells {
		row := make([]Cell, size)
		for y := range row {
			row[y] = Wall
		}
		cells[x] = row
	}
	return &Grid{size: size, cells: cells}
}

// Parse decodes the text encoding written by String: size lines of size
// characters from {X, ' ', S, F}. Trailing empty lines are ignored, as is a
// carriage return before each newline. Exactly one start is required; any
// number of finishes is accepted.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	size := len(lines)
	g := &Grid{size: size, cells: make([][]Cell, size)}
	starts := 0
	for x, line := range lines {
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, x, len(line), size)
		}
		row := make([]Cell, size)
		for y := 0; y < size; y++ {
			c := Cell(line[y])
			if !c.Valid() {
				return nil, fmt.Errorf("%w: %q at %v", ErrBadCell, line[y], coord.New(x, y))
			}
			if c == Start {
				starts++
			}
			row[y] = c
		}
		g.cells[x] = row
	}

	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, starts)
	}
	return g, nil
}

// Size reports the side length.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether k lies inside the grid.
func (g *Grid) InBounds(k coord.Key) bool {
	return k.X >= 0 && k.X < g.size && k.Y >= 0 && k.Y < g.size
}

// At returns the cell at k. Keys outside the grid read as Wall.
func (g *Grid) At(k coord.Key) Cell {
	if !g.InBounds(k) {
		return Wall
	}
	return g.cells[k.X][k.Y]
}

// Set overwrites the cell at k. It panics with ErrOutOfBounds for a key
// outside the grid or ErrBadCell for an unknown state.
func (g *Grid) Set(k coord.Key, c Cell) {
	if !g.InBounds(k) {
		panic(fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, k, g.size, g.size))
	}
	if !c.Valid() {
		panic(fmt.Errorf("%w: %q", ErrBadCell, byte(c)))
	}
	g.cells[k.X][k.Y] = c
}

// Passable reports whether k is inside the grid and not a wall.
func (g *Grid) Passable(k coord.Key) bool {
	return g.At(k) != Wall
}

// Index maps k to its row-major position X*size+Y.
// Complexity: O(1).
func (g *Grid) Index(k coord.Key) int {
	return k.X*g.size + k.Y
}

// Coordinate converts a row-major index back to its key.
// Complexity: O(1).
func (g *Grid) Coordinate(i int) coord.Key {
	return coord.New(i/g.size, i%g.size)
}

// Start returns the single start cell.
// Returns ErrNoStart or ErrMultipleStarts when the grid has none or several.
func (g *Grid) Start() (coord.Key, error) {
	var (
		start coord.Key
		found int
	)
	for x, row := range g.cells {
		for y, c := range row {
			if c == Start {
				start = coord.New(x, y)
				found++
			}
		}
	}
	switch {
	case found == 0:
		return coord.Key{}, ErrNoStart
	case found > 1:
		return coord.Key{}, fmt.Errorf("%w: found %d", ErrMultipleStarts, found)
	}
	return start, nil
}

// Finishes returns every finish cell in row-major order.
func (g *Grid) Finishes() []coord.Key {
	var out []coord.Key
	for x, row := range g.cells {
		for y, c := range row {
			if c == Finish {
				out = append(out, coord.New(x, y))
			}
		}
	}
	return out
}

// OpenCells returns every non-wall cell in row-major order.
// Complexity: O(size²).
func (g *Grid) OpenCells() []coord.Key {
	var out []coord.Key
	for x, row := range g.cells {
		for y, c := range row {
			if c != Wall {
				out = append(out, coord.New(x, y))
			}
		}
	}
	return out
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.size)
	for x, row := range g.cells {
		cells[x] = append([]Cell(nil), row...)
	}
	return &Grid{size: g.size, cells: cells}
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.size != o.size {
		return false
	}
	for x := range g.cells {
		if !bytes.Equal(cellBytes(g.cells[x]), cellBytes(o.cells[x])) {
			return false
		}
	}
	return true
}

// String renders the grid one row per line followed by a blank line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size*(g.size+1) + 1)
	_, _ = g.WriteTo(&b)
	return b.String()
}

// WriteTo writes the text encoding of the grid to w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	var total int64
	line := make([]byte, g.size+1)
	line[g.size] = '\n'
	for _, row := range g.cells {
		copy(line, cellBytes(row))
		n, err := w.Write(line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err := w.Write([]byte{'\n'})
	total += int64(n)
	return total, err
}

// ToGraph converts the grid into an undirected graph over its non-wall
// cells. Vertices are inserted in row-major order; every pair of
// orthogonally adjacent non-wall cells is connected in both directions.
// The graph's capacity is exactly the number of non-wall cells, so a grid
// made only of walls yields graph.ErrBadCapacity.
//
// Complexity: O(size²) plus the backend's allocation cost.
func (g *Grid) ToGraph(backend graph.Backend, opts ...graph.Option) (*graph.Graph[coord.Key], error) {
	open := g.OpenCells()
	gr, err := graph.New[coord.Key](len(open), backend, opts...)
	if err != nil {
		return nil, err
	}
	for _, k := range open {
		gr.AddVertex(k)
	}
	for _, k := range open {
		if right := k.Add(0, 1); g.Passable(right) {
			gr.Connect(k, right)
		}
		if down := k.Add(1, 0); g.Passable(down) {
			gr.Connect(k, down)
		}
	}
	return gr, nil
}

func cellBytes(row []Cell) []byte {
	b := make([]byte, len(row))
	for i, c := range row {
		b[i] = byte(c)
	}
	return b
}
