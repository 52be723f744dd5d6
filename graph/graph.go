package graph

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/mazelab/table"
)

// adjacency is the edge store behind a Graph. Indices are arena slots.
type adjacency interface {
	set(i, j int)
	clear(i, j int)
	has(i, j int) bool
	// step returns the first neighbor of v after cursor position pos
	// (pos == -1 means "before the first"), together with the new position.
	step(dir direction, v, pos, n int) (nbr, next int, ok bool)
}

// vertex is one arena slot. Its index never changes once assigned.
type vertex[K comparable] struct {
	key      K
	visited  bool
	distance []int // nil until the first SetDistance from this vertex
	succ     Cursor[K]
	pred     Cursor[K]
}

// Graph is a fixed-capacity directed graph keyed by any comparable type.
//
// Vertices live in an arena slice addressed through a key table; edges live
// in the selected Backend. A Graph is single-threaded: its cursors and
// bookkeeping are shared mutable state with no locking.
type Graph[K comparable] struct {
	backend  Backend
	capacity int
	verts    []vertex[K]
	index    table.Table[K, int]
	adj      adjacency
	log      *slog.Logger
}

// New allocates an empty Graph able to hold capacity vertices.
// Returns ErrBadCapacity for capacity <= 0 and ErrBadBackend for an unknown
// backend. All backing storage is preallocated.
//
// Complexity: O(capacity) for List, O(capacity²) for Matrix.
func New[K comparable](capacity int, backend Backend, opts ...Option) (*Graph[K], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var adj adjacency
	switch backend {
	case Matrix:
		adj = newAdjacencyMatrix(capacity)
	case List:
		adj = newAdjacencyList(capacity)
	default:
		return nil, fmt.Errorf("%w: %v", ErrBadBackend, backend)
	}

	idx, err := table.NewBounded[K, int](capacity)
	if err != nil {
		return nil, err
	}

	return &Graph[K]{
		backend:  backend,
		capacity: capacity,
		verts:    make([]vertex[K], 0, capacity),
		index:    idx,
		adj:      adj,
		log:      o.log,
	}, nil
}

// MustNew is New for callers that treat a bad capacity or backend as a
// programming error. It panics with the wrapped sentinel.
func MustNew[K comparable](capacity int, backend Backend, opts ...Option) *Graph[K] {
	g, err := New[K](capacity, backend, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Backend reports the edge storage strategy.
func (g *Graph[K]) Backend() Backend { return g.backend }

// Capacity reports the fixed maximum number of vertices.
func (g *Graph[K]) Capacity() int { return g.capacity }

// Len reports the number of inserted vertices.
func (g *Graph[K]) Len() int { return len(g.verts) }

// AddVertex inserts key as a new vertex. Re-inserting a present key is a
// no-op logged at WARN. Panics with ErrCapacityExceeded when full.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(key K) {
	if _, ok := g.index.Lookup(key); ok {
		g.log.Warn("graph: vertex already present", "key", key)
		return
	}
	g.insert(key)
}

// HasVertex reports whether key is a vertex. Complexity: O(1) amortized.
func (g *Graph[K]) HasVertex(key K) bool {
	_, ok := g.index.Lookup(key)
	return ok
}

// VertexAt returns the key of the i-th inserted vertex.
func (g *Graph[K]) VertexAt(i int) (K, bool) {
	if i < 0 || i >= len(g.verts) {
		var zero K
		return zero, false
	}
	return g.verts[i].key, true
}

// SetEdge sets the directed edge a→b to present, inserting missing
// endpoints first.
//
//   - Matrix: flips the cell; removal is supported.
//   - List, present=true: appends b to a's successors and a to b's
//     predecessors in O(1). Repeated calls record parallel entries.
//   - List, present=false: panics with ErrEdgeRemovalUnsupported if a→b
//     exists; logs a warning and does nothing otherwise.
func (g *Graph[K]) SetEdge(a, b K, present bool) {
	i := g.slot(a, false)
	j := g.slot(b, false)

	if present {
		g.adj.set(i, j)
		return
	}
	if g.backend == List {
		if g.adj.has(i, j) {
			panic(fmt.Errorf("%w: %v -> %v", ErrEdgeRemovalUnsupported, a, b))
		}
		g.log.Warn("graph: removing absent edge on list backend", "from", a, "to", b)
		return
	}
	g.adj.clear(i, j)
}

// Connect adds the undirected connection a–b as two directed edges.
func (g *Graph[K]) Connect(a, b K) {
	g.SetEdge(a, b, true)
	g.SetEdge(b, a, true)
}

// GetEdge reports whether the directed edge a→b exists. Unknown keys
// report false without being inserted.
// Complexity: O(1) for Matrix, O(out-degree of a) for List.
func (g *Graph[K]) GetEdge(a, b K) bool {
	i, ok := g.index.Lookup(a)
	if !ok {
		return false
	}
	j, ok := g.index.Lookup(b)
	if !ok {
		return false
	}
	return g.adj.has(i, j)
}

// insert appends a fresh slot for key and registers it in the index.
func (g *Graph[K]) insert(key K) int {
	if len(g.verts) >= g.capacity {
		panic(fmt.Errorf("%w: capacity=%d key=%v", ErrCapacityExceeded, g.capacity, key))
	}
	i := len(g.verts)
	g.verts = append(g.verts, vertex[K]{key: key})
	v := &g.verts[i]
	v.succ = Cursor[K]{g: g, v: i, dir: forward, pos: -1}
	v.pred = Cursor[K]{g: g, v: i, dir: backward, pos: -1}
	if err := g.index.Insert(key, i); err != nil {
		// unreachable: presence and capacity were checked by the caller
		panic(errors.Join(ErrCapacityExceeded, err))
	}
	return i
}

// slot returns key's arena index, inserting it when absent. When warn is
// set the implicit insertion is logged.
func (g *Graph[K]) slot(key K, warn bool) int {
	if i, ok := g.index.Lookup(key); ok {
		return i
	}
	if warn {
		g.log.Warn("graph: implicit vertex insertion", "key", key)
	}
	return g.insert(key)
}
