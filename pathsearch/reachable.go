package pathsearch

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/mazelab/coord"
	"github.com/katalvlaran/mazelab/graph"
	"github.com/katalvlaran/mazelab/maze"
)

// floodWalker is an iterative depth-first flood fill driven by the graph's
// resumable successor cursors. The stack holds coord.Key values; the top
// vertex is advanced one neighbor per step and popped once its cursor is
// exhausted.
type floodWalker struct {
	graph *graph.Graph[coord.Key]
	stack *arraystack.Stack
}

// Reachable reports whether the single finish of g can be reached from its
// start through non-wall cells. The Distance of the result is always 0.
//
// The grid is converted with maze.Grid.ToGraph on the backend chosen by
// WithBackend; visited flags live in the graph, so the grid is not touched.
//
// Returns ErrNilGrid, maze.ErrNoStart, maze.ErrMultipleStarts, ErrNoFinish
// or ErrMultipleFinishes for malformed input.
// Complexity: O(size²) time and memory on the List backend.
func Reachable(g *maze.Grid, opts ...Option) (Result, error) {
	// 1. Apply options
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Validate endpoints
	start, fin, err := endpoints(g, true)
	if err != nil {
		return Result{}, err
	}

	// 3. Build the cell graph
	gr, err := g.ToGraph(o.backend, graph.WithLogger(o.log))
	if err != nil {
		return Result{}, err
	}

	// 4. Flood fill
	w := &floodWalker{graph: gr, stack: arraystack.New()}
	if w.reaches(start, fin[0]) {
		return Result{Outcome: Found}, nil
	}
	return Result{Outcome: Impossible}, nil
}

func (w *floodWalker) reaches(start, target coord.Key) bool {
	w.graph.SetVisited(start, true)
	w.stack.Push(start)

	for !w.stack.Empty() {
		top, _ := w.stack.Peek()
		u := top.(coord.Key)
		if u == target {
			return true
		}

		nb, ok := w.graph.NextSuccessor(u)
		if !ok {
			w.stack.Pop()
			continue
		}
		if !w.graph.Visited(nb) {
			w.graph.SetVisited(nb, true)
			w.stack.Push(nb)
		}
	}
	return false
}
