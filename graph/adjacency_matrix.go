package graph

// adjacencyMatrix stores edges as a flat capacity×capacity boolean matrix.
// cells[i*n+j] is true iff the directed edge i→j exists.
type adjacencyMatrix struct {
	n     int
	cells []bool
}

// newAdjacencyMatrix preallocates an n×n matrix with no edges.
// Complexity: O(n²) time and memory.
func newAdjacencyMatrix(n int) *adjacencyMatrix {
	return &adjacencyMatrix{n: n, cells: make([]bool, n*n)}
}

func (m *adjacencyMatrix) set(i, j int)   { m.cells[i*m.n+j] = true }
func (m *adjacencyMatrix) clear(i, j int) { m.cells[i*m.n+j] = false }

// has is O(1).
func (m *adjacencyMatrix) has(i, j int) bool { return m.cells[i*m.n+j] }

// step scans the row (successors) or column (predecessors) of v from pos+1
// up to the number of inserted vertices. The position is the column or row
// index of the neighbor found.
// Complexity: O(V) worst case per call, O(V) over a full enumeration.
func (m *adjacencyMatrix) step(dir direction, v, pos, n int) (int, int, bool) {
	for j := pos + 1; j < n; j++ {
		var edge bool
		if dir == forward {
			edge = m.cells[v*m.n+j]
		} else {
			edge = m.cells[j*m.n+v]
		}
		if edge {
			return j, j, true
		}
	}
	return -1, -1, false
}
