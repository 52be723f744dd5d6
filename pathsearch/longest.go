package pathsearch

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/mazelab/coord"
	"github.com/katalvlaran/mazelab/maze"
)

// longestWalker enumerates simple paths by backtracking directly over the
// grid. onPath is scoped to the current path: a cell is marked when its
// frame is entered and cleared when the frame returns.
type longestWalker struct {
	grid   *maze.Grid
	finish coord.Key
	onPath []bool
	seen   []bool
	stack  *arraystack.Stack
	best   int
}

// LongestSimplePath returns the length of the longest path from the start
// to the single finish of g that visits no cell twice.
//
// The search is exhaustive backtracking with two cuts applied at every
// frame, both computed by a flood fill that avoids cells on the current
// path:
//
//   - the finish must still be reachable from the current cell;
//   - the current length plus the number of cells still reachable must
//     exceed the best length found so far.
//
// Neither cut discards an optimal path, so the answer is exact. When the
// finish is unreachable the result is Impossible with Distance NoPath.
//
// Returns ErrNilGrid, maze.ErrNoStart, maze.ErrMultipleStarts, ErrNoFinish
// or ErrMultipleFinishes for malformed input.
// Complexity: exponential in the worst case; O(size²) per frame.
func LongestSimplePath(g *maze.Grid, opts ...Option) (Result, error) {
	// 1. Apply options (no graph is built; kept for a uniform signature)
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Validate endpoints
	start, fin, err := endpoints(g, true)
	if err != nil {
		return Result{}, err
	}

	// 3. Backtrack
	cells := g.Size() * g.Size()
	w := &longestWalker{
		grid:   g,
		finish: fin[0],
		onPath: make([]bool, cells),
		seen:   make([]bool, cells),
		stack:  arraystack.New(),
		best:   NoPath,
	}
	w.explore(start, 0)

	if w.best == NoPath {
		return Result{Outcome: Impossible, Distance: NoPath}, nil
	}
	return Result{Outcome: Found, Distance: w.best}, nil
}

// explore extends the current path, whose last cell is u and whose length
// is length, in every possible way.
func (w *longestWalker) explore(u coord.Key, length int) {
	if u == w.finish {
		if length > w.best {
			w.best = length
		}
		return
	}

	reach, ok := w.flood(u)
	if !ok || length+reach <= w.best {
		return
	}

	i := w.grid.Index(u)
	w.onPath[i] = true
	for _, v := range u.Neighbors4() {
		if !w.grid.Passable(v) || w.onPath[w.grid.Index(v)] {
			continue
		}
		w.explore(v, length+1)
	}
	w.onPath[i] = false
}

// flood counts the open cells reachable from u without touching the
// current path or passing through the finish (u excluded, the finish
// included) and reports whether the finish is among them.
func (w *longestWalker) flood(u coord.Key) (int, bool) {
	for i := range w.seen {
		w.seen[i] = false
	}
	w.stack.Clear()

	count := 0
	found := false
	w.seen[w.grid.Index(u)] = true
	w.stack.Push(u)
	for !w.stack.Empty() {
		top, _ := w.stack.Pop()
		c := top.(coord.Key)
		for _, v := range c.Neighbors4() {
			if !w.grid.Passable(v) {
				continue
			}
			j := w.grid.Index(v)
			if w.seen[j] || w.onPath[j] {
				continue
			}
			w.seen[j] = true
			count++
			if v == w.finish {
				// a path stops at the finish, so nothing behind it counts
				found = true
				continue
			}
			w.stack.Push(v)
		}
	}
	return count, found
}
