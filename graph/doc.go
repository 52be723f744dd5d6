// Package graph provides a fixed-capacity directed graph over any comparable
// vertex key, with two interchangeable edge backends.
//
// What:
//
//   - Graph[K] preallocates Capacity() vertex slots; a vertex keeps its slot
//     index for the lifetime of the graph (no compaction, no removal).
//   - Keys map to slots through a bounded insert-only table (package table).
//   - Matrix backend: dense boolean matrix, O(1) GetEdge, supports removal.
//   - List backend: per-vertex successor/predecessor index slices, O(1)
//     SetEdge, O(out-degree) GetEdge, no removal.
//   - Each vertex owns a resumable successor Cursor and predecessor Cursor.
//   - Per-vertex bookkeeping (visited flag, distance row) lets search
//     algorithms avoid side maps.
//
// Cursor contract:
//
//	c := g.Successors(k)
//	for nb, ok := c.Next(); ok; nb, ok = c.Next() { ... }
//	// c has rewound: the next c.Next() yields the first successor again.
//
// The cursor is shared per vertex. Nested loops over the same vertex
// interfere; an early break must be followed by Reset.
//
// Complexity:
//
//   - New:        O(capacity) List, O(capacity²) Matrix.
//   - AddVertex:  O(1) amortized.
//   - SetEdge:    O(1) (List removal panics).
//   - GetEdge:    O(1) Matrix, O(out-degree) List.
//   - Cursor.Next O(1) List, O(V) worst case Matrix.
//   - SetDistance first write per vertex allocates a row of Capacity() ints.
//
// Errors:
//
//   - ErrBadCapacity, ErrBadBackend: returned by New (MustNew panics).
//   - ErrCapacityExceeded: panic from AddVertex and implicit insertions.
//   - ErrEdgeRemovalUnsupported: panic from SetEdge(a, b, false) on an
//     existing List edge.
//
// A Graph is not safe for concurrent use.
package graph
