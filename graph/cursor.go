package graph

// direction selects successor (forward) or predecessor (backward) enumeration.
type direction uint8

const (
	forward direction = iota
	backward
)

// Cursor is a lazy, restartable enumeration of one vertex's successors or
// predecessors.
//
// Every vertex owns exactly one successor Cursor and one predecessor Cursor;
// Successors and Predecessors hand out those same instances. The contract:
//
//   - Next advances one neighbor per call.
//   - When the neighbors are exhausted Next returns false and the cursor
//     rewinds itself, so the following call starts again from the first
//     neighbor.
//   - Two traversals over the same vertex share the cursor. Callers that
//     stop early must Reset before another consumer relies on it.
//
// Matrix cursors yield neighbors in arena-index order, List cursors in edge
// insertion order.
type Cursor[K comparable] struct {
	g   *Graph[K]
	v   int
	dir direction
	pos int // -1: before the first neighbor
}

// Next returns the next neighbor, or false once exhausted (after which the
// cursor has rewound).
func (c *Cursor[K]) Next() (K, bool) {
	j, pos, ok := c.g.adj.step(c.dir, c.v, c.pos, len(c.g.verts))
	if !ok {
		c.pos = -1
		var zero K
		return zero, false
	}
	c.pos = pos
	return c.g.verts[j].key, true
}

// Reset rewinds the cursor to before the first neighbor.
func (c *Cursor[K]) Reset() { c.pos = -1 }

// Vertex returns the key whose neighbors this cursor enumerates.
func (c *Cursor[K]) Vertex() K { return c.g.verts[c.v].key }

// Successors returns key's successor cursor. A missing key is inserted with
// a warning, matching the other per-vertex accessors.
func (g *Graph[K]) Successors(key K) *Cursor[K] {
	return &g.verts[g.slot(key, true)].succ
}

// Predecessors returns key's predecessor cursor. A missing key is inserted
// with a warning.
func (g *Graph[K]) Predecessors(key K) *Cursor[K] {
	return &g.verts[g.slot(key, true)].pred
}

// NextSuccessor is the call-per-neighbor form of Successors(start).Next().
func (g *Graph[K]) NextSuccessor(start K) (K, bool) {
	return g.Successors(start).Next()
}

// NextPredecessor is the call-per-neighbor form of Predecessors(start).Next().
func (g *Graph[K]) NextPredecessor(start K) (K, bool) {
	return g.Predecessors(start).Next()
}
