package maze

import "github.com/katalvlaran/mazelab/coord"

// AddDeadEnds opens every interior wall cell that has at least three wall
// neighbors, scanning row by row so earlier openings are seen by later
// checks. It returns the number of cells opened.
//
// An opened cell touches at most one non-wall cell at the moment it is
// opened, so each opening attaches a leaf (or an isolated cell) to the
// existing layout. No new cycle and no new route between existing cells can
// appear: reachability and the longest simple path between start and
// finish are unchanged.
//
// Complexity: O(size²).
func AddDeadEnds(g *Grid) int {
	opened := 0
	for x := 1; x < g.size-1; x++ {
		for y := 1; y < g.size-1; y++ {
			if g.cells[x][y] != Wall {
				continue
			}
			walls := 0
			for _, nb := range coord.New(x, y).Neighbors4() {
				if g.cells[nb.X][nb.Y] == Wall {
					walls++
				}
			}
			if walls >= 3 {
				g.cells[x][y] = Open
				opened++
			}
		}
	}
	return opened
}
