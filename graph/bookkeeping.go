package graph

// SetVisited stores the visited flag of key, inserting it with a warning if
// absent.
func (g *Graph[K]) SetVisited(key K, visited bool) {
	g.verts[g.slot(key, true)].visited = visited
}

// Visited reports the visited flag of key, inserting it with a warning if
// absent.
func (g *Graph[K]) Visited(key K) bool {
	return g.verts[g.slot(key, true)].visited
}

// SetDistance memoizes the distance from → to. Each vertex owns a full row
// of Capacity() entries, allocated on its first write.
func (g *Graph[K]) SetDistance(from, to K, d int) {
	i := g.slot(from, true)
	j := g.slot(to, true)
	v := &g.verts[i]
	if v.distance == nil {
		v.distance = make([]int, g.capacity)
		for k := range v.distance {
			v.distance[k] = Infinite
		}
	}
	v.distance[j] = d
}

// Distance returns the memoized distance from → to, or Infinite if never set.
func (g *Graph[K]) Distance(from, to K) int {
	i := g.slot(from, true)
	j := g.slot(to, true)
	row := g.verts[i].distance
	if row == nil {
		return Infinite
	}
	return row[j]
}

// ResetBookkeeping clears every visited flag and distance row and rewinds
// all cursors. Edges are untouched.
// Complexity: O(V).
func (g *Graph[K]) ResetBookkeeping() {
	for i := range g.verts {
		v := &g.verts[i]
		v.visited = false
		v.distance = nil
		v.succ.Reset()
		v.pred.Reset()
	}
}
