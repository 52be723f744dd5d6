package graph

// adjacencyList stores, per vertex, the arena indices of its successors and
// predecessors in insertion order. No list node is allocated individually;
// each vertex owns two growable slices.
type adjacencyList struct {
	succ [][]int
	pred [][]int
}

// newAdjacencyList preallocates the per-vertex slice headers.
// Complexity: O(n).
func newAdjacencyList(n int) *adjacencyList {
	return &adjacencyList{succ: make([][]int, n), pred: make([][]int, n)}
}

// set records i→j in O(1) amortized.
func (l *adjacencyList) set(i, j int) {
	l.succ[i] = append(l.succ[i], j)
	l.pred[j] = append(l.pred[j], i)
}

// clear is never reached: Graph.SetEdge rejects removal for this backend
// before touching the store.
func (l *adjacencyList) clear(i, j int) {
	panic(ErrEdgeRemovalUnsupported)
}

// has walks i's successors. Complexity: O(out-degree(i)).
func (l *adjacencyList) has(i, j int) bool {
	for _, k := range l.succ[i] {
		if k == j {
			return true
		}
	}
	return false
}

// step returns the entry after pos in v's successor or predecessor slice.
// The position is the slice offset.
// Complexity: O(1).
func (l *adjacencyList) step(dir direction, v, pos, _ int) (int, int, bool) {
	list := l.succ[v]
	if dir == backward {
		list = l.pred[v]
	}
	next := pos + 1
	if next >= len(list) {
		return -1, -1, false
	}
	return list[next], next, true
}
