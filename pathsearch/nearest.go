package pathsearch

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/mazelab/coord"
	"github.com/katalvlaran/mazelab/graph"
	"github.com/katalvlaran/mazelab/maze"
)

// bfsWalker runs a single-source breadth-first search. Distances are
// memoized in the source vertex's distance row of the graph.
type bfsWalker struct {
	grid   *maze.Grid
	graph  *graph.Graph[coord.Key]
	queue  *linkedlistqueue.Queue
	source coord.Key
}

// NearestFinish returns the length of the shortest route from the start to
// any finish of g. The first finish taken off the BFS queue is the nearest;
// ties are immaterial since only the distance is reported.
//
// When no finish is reachable the result is Impossible with Distance
// Infinite.
//
// Returns ErrNilGrid, maze.ErrNoStart, maze.ErrMultipleStarts or
// ErrNoFinish for malformed input. Any number of finishes is accepted.
// Complexity: O(size²) time; the distance row costs one int per open cell.
func NearestFinish(g *maze.Grid, opts ...Option) (Result, error) {
	// 1. Apply options
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Validate endpoints
	start, _, err := endpoints(g, false)
	if err != nil {
		return Result{}, err
	}

	// 3. Build the cell graph
	gr, err := g.ToGraph(o.backend, graph.WithLogger(o.log))
	if err != nil {
		return Result{}, err
	}

	// 4. Breadth-first search
	w := &bfsWalker{grid: g, graph: gr, queue: linkedlistqueue.New(), source: start}
	if d, ok := w.nearest(); ok {
		return Result{Outcome: Found, Distance: d}, nil
	}
	return Result{Outcome: Impossible, Distance: Infinite}, nil
}

func (w *bfsWalker) nearest() (int, bool) {
	w.graph.SetVisited(w.source, true)
	w.graph.SetDistance(w.source, w.source, 0)
	w.queue.Enqueue(w.source)

	for !w.queue.Empty() {
		v, _ := w.queue.Dequeue()
		u := v.(coord.Key)
		d := w.graph.Distance(w.source, u)
		if w.grid.At(u) == maze.Finish {
			return d, true
		}

		c := w.graph.Successors(u)
		for nb, ok := c.Next(); ok; nb, ok = c.Next() {
			if w.graph.Visited(nb) {
				continue
			}
			w.graph.SetVisited(nb, true)
			w.graph.SetDistance(w.source, nb, d+1)
			w.queue.Enqueue(nb)
		}
	}
	return Infinite, false
}
