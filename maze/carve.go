package maze

import (
	"fmt"

	"github.com/katalvlaran/mazelab/coord"
)

// rect is an inclusive bounding box for corridor walks.
type rect struct {
	lo, hi coord.Key
}

func (r rect) contains(k coord.Key) bool {
	return k.X >= r.lo.X && k.X <= r.hi.X && k.Y >= r.lo.Y && k.Y <= r.hi.Y
}

// mustContain panics with ErrOutOfBounds unless both endpoints lie in r and
// r lies in g.
func (r rect) mustContain(g *Grid, from, to coord.Key) {
	if !g.InBounds(r.lo) || !g.InBounds(r.hi) {
		panic(fmt.Errorf("%w: box %v..%v exceeds %d×%d grid", ErrOutOfBounds, r.lo, r.hi, g.size, g.size))
	}
	if !r.contains(from) || !r.contains(to) {
		panic(fmt.Errorf("%w: cannot link %v to %v within %v..%v", ErrOutOfBounds, from, to, r.lo, r.hi))
	}
}

// fill stamps c on every cell of the rectangle spanned by a and b.
func (g *Grid) fill(a, b coord.Key, c Cell) {
	x0, x1 := minmax(a.X, b.X)
	y0, y1 := minmax(a.Y, b.Y)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			g.cells[x][y] = c
		}
	}
}

// border forces the outer ring to Wall.
func (g *Grid) border() {
	last := g.size - 1
	for i := 0; i < g.size; i++ {
		g.cells[0][i] = Wall
		g.cells[last][i] = Wall
		g.cells[i][0] = Wall
		g.cells[i][last] = Wall
	}
}

// heading returns the per-axis step from cur toward to. With probability
// (100-p)% each axis is replaced by its opposite; a zero axis first picks a
// random sign.
func (gen *Generator) heading(cur, to coord.Key, p int) (dx, dy int) {
	dx, dy = sign(to.X-cur.X), sign(to.Y-cur.Y)
	if gen.rng.Intn(100) >= p {
		dx = gen.reverse(dx)
	}
	if gen.rng.Intn(100) >= p {
		dy = gen.reverse(dy)
	}
	return dx, dy
}

func (gen *Generator) reverse(d int) int {
	if d == 0 {
		d = 1
		if gen.rng.Intn(2) == 0 {
			d = -1
		}
	}
	return -d
}

// carve walks from → to inside r stamping c on every cell it steps onto and
// returns the number of unit moves taken. The origin is stamped only when
// the first move on X is skipped. Each iteration tries one move on
// the X axis then one on the Y axis; moves that would leave r are skipped.
// Revisiting a cell is allowed, so the walk may cross itself.
//
// With p == 100 the walk is monotone and takes exactly Manhattan(from, to)
// moves. Panics with ErrOutOfBounds if either endpoint is outside r.
func (gen *Generator) carve(g *Grid, from, to coord.Key, r rect, p int, c Cell) int {
	r.mustContain(g, from, to)

	steps := 0
	cur := from
	for cur != to {
		dx, dy := gen.heading(cur, to, p)

		if next := cur.Add(dx, 0); dx != 0 && r.contains(next) {
			cur = next
			steps++
		}
		g.cells[cur.X][cur.Y] = c

		if next := cur.Add(0, dy); dy != 0 && r.contains(next) {
			cur = next
			steps++
		}
		g.cells[cur.X][cur.Y] = c
	}
	return steps
}

// carveSimple is carve with self-avoidance: it never steps onto a cell
// already holding c, so the stamped cells form a single simple path in walk
// order. It stops once adjacent to to and stamps to itself.
//
// If the walker is boxed in (every neighbor is already c or outside r) it
// gives up and returns (NoPath, false). Otherwise it returns the length of
// the carved path including the final step onto to.
func (gen *Generator) carveSimple(g *Grid, from, to coord.Key, r rect, p int, c Cell) (int, bool) {
	r.mustContain(g, from, to)

	blocked := func(k coord.Key) bool {
		return !r.contains(k) || g.cells[k.X][k.Y] == c
	}

	steps := 0
	cur := from
	g.cells[cur.X][cur.Y] = c
	for cur.Manhattan(to) > 1 {
		nb := cur.Neighbors4()
		if blocked(nb[0]) && blocked(nb[1]) && blocked(nb[2]) && blocked(nb[3]) {
			return NoPath, false
		}

		dx, dy := gen.heading(cur, to, p)

		if next := cur.Add(dx, 0); dx != 0 && !blocked(next) {
			cur = next
			steps++
		}
		g.cells[cur.X][cur.Y] = c
		if cur.Manhattan(to) <= 1 {
			break
		}

		if next := cur.Add(0, dy); dy != 0 && !blocked(next) {
			cur = next
			steps++
		}
		g.cells[cur.X][cur.Y] = c
	}
	g.cells[to.X][to.Y] = c
	return steps + cur.Manhattan(to), true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func minmax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}
