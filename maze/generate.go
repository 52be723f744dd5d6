package maze

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazelab/coord"
)

// Generator builds random mazes together with their ground truth.
// It is deterministic for a given seed and not safe for concurrent use.
type Generator struct {
	rng         *rand.Rand
	probability int
}

// NewGenerator returns a Generator configured by opts.
// Returns ErrBadProbability if WithProbability is outside [MinProbability, 100].
func NewGenerator(opts ...Option) (*Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.probability < MinProbability || o.probability > 100 {
		return nil, fmt.Errorf("%w: %d", ErrBadProbability, o.probability)
	}
	r := o.rng
	if r == nil {
		r = rngFromSeed(o.seed)
	}
	return &Generator{rng: r, probability: o.probability}, nil
}

// Probability reports the walk bias in percent.
func (gen *Generator) Probability() int { return gen.probability }

// Basic builds a single start, single finish maze of the given size
// (minimum 8).
//
// Start sits on row 2 and the finish on row size-3, each at a random column
// in [2, size-3] with a cleared 5×5 box around it. A chain of up to size/2
// random waypoints is joined by biased walks through the interior. When
// path is false a monotone wall strip is then carved across every column,
// strictly between the start and finish rows, which cuts every route. The
// outer ring is forced to wall last.
func (gen *Generator) Basic(size int, path bool) (BasicMaze, error) {
	if size < minBasicSize {
		return BasicMaze{}, fmt.Errorf("%w: basic maze needs %d, got %d", ErrSizeTooSmall, minBasicSize, size)
	}

	start := coord.New(2, gen.rng.Intn(size-4)+2)
	finish := coord.New(size-3, gen.rng.Intn(size-4)+2)
	interior := rect{lo: coord.New(1, 1), hi: coord.New(size-2, size-2)}
	waypoints := gen.rng.Intn(size) / 2

	g := newGrid(size)
	g.fill(start.Add(-2, -2), start.Add(2, 2), Open)
	g.fill(finish.Add(-2, -2), finish.Add(2, 2), Open)

	prev := start
	for i := 0; i < waypoints; i++ {
		wp := coord.New(gen.rng.Intn(size-4)+2, gen.rng.Intn(size-4)+2)
		gen.carve(g, prev, wp, interior, gen.probability, Open)
		prev = wp
	}
	gen.carve(g, prev, finish, interior, gen.probability, Open)

	// offset of the wall strip ends from the start and finish rows, in [1, size-7]
	d := gen.rng.Intn(finish.X-start.X-2) + 1
	if !path {
		strip := rect{
			lo: coord.New(start.X+1, interior.lo.Y),
			hi: coord.New(finish.X-1, interior.hi.Y),
		}
		gen.carve(g,
			coord.New(start.X+d, interior.lo.Y),
			coord.New(finish.X-d, interior.hi.Y),
			strip, 100, Wall)
	}

	g.border()
	g.cells[start.X][start.Y] = Start
	g.cells[finish.X][finish.Y] = Finish

	return BasicMaze{Grid: g, HasPath: path}, nil
}

// MultiFinish builds a maze with one start and several finishes, all
// reachable (minimum size 8).
//
// The canonical finish sits two columns right of the start with a wall
// between them, reached by a three-leg corridor down to row size-2, across
// to column size-2 and back up. Up to size/4 extra finishes are placed in
// the left half and joined to the start by monotone corridors. Shortest is
// the smallest carved corridor length.
func (gen *Generator) MultiFinish(size int) (MultiFinishMaze, error) {
	if size < minMultiFinishSize {
		return MultiFinishMaze{}, fmt.Errorf("%w: multi-finish maze needs %d, got %d", ErrSizeTooSmall, minMultiFinishSize, size)
	}

	start := coord.New(size/2+1, size-4)
	canonical := coord.New(size/2+1, size-2)
	interior := rect{lo: coord.New(1, 1), hi: coord.New(size-2, size-2)}
	extra := gen.rng.Intn(size) / 4

	g := newGrid(size)

	corner1 := coord.New(interior.hi.X, start.Y)
	corner2 := coord.New(interior.hi.X, canonical.Y)
	shortest := gen.carve(g, start, corner1, interior, 100, Open)
	shortest += gen.carve(g, corner1, corner2, interior, 100, Open)
	shortest += gen.carve(g, corner2, canonical, interior, 100, Open)

	finishes := []coord.Key{canonical}
	for i := 0; i < extra; i++ {
		p := coord.New(gen.rng.Intn(size-2)+1, gen.rng.Intn(size/2)+1)
		if p == start {
			continue
		}
		finishes = append(finishes, p)
		if n := gen.carve(g, start, p, interior, 100, Open); n < shortest {
			shortest = n
		}
	}

	g.border()
	g.cells[start.X][start.Y] = Start
	for _, f := range finishes {
		g.cells[f.X][f.Y] = Finish
	}

	return MultiFinishMaze{Grid: g, Shortest: shortest}, nil
}

// SimplePath builds a maze holding one self-avoiding corridor from (1,1)
// to (size-2,size-2) (minimum size 4). Every carved cell lies on that
// corridor, so its length is also the longest simple path.
//
// If the walk boxes itself in, the finish is left disconnected and the
// result carries HasPath=false with Longest=NoPath.
func (gen *Generator) SimplePath(size int) (SimplePathMaze, error) {
	if size < minSimplePathSize {
		return SimplePathMaze{}, fmt.Errorf("%w: simple-path maze needs %d, got %d", ErrSizeTooSmall, minSimplePathSize, size)
	}

	start := coord.New(1, 1)
	finish := coord.New(size-2, size-2)
	interior := rect{lo: start, hi: finish}

	g := newGrid(size)
	longest, ok := gen.carveSimple(g, start, finish, interior, gen.probability, Open)

	g.border()
	g.cells[start.X][start.Y] = Start
	g.cells[finish.X][finish.Y] = Finish

	return SimplePathMaze{Grid: g, Longest: longest, HasPath: ok}, nil
}

// Intn exposes the generator's source so callers can make decisions that
// stay reproducible under the same seed.
func (gen *Generator) Intn(n int) int { return gen.rng.Intn(n) }
