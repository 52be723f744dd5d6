// Package pathsearch answers three questions about a maze.Grid, each with a
// tri-state Result.
//
// What:
//
//   - Reachable:         is the single finish reachable from the start?
//     Iterative depth-first flood fill over the cell graph, advancing each
//     vertex through its resumable graph.Cursor.
//   - NearestFinish:     shortest distance from the start to any finish.
//     Breadth-first search; distances are memoized in the graph's distance
//     row of the start vertex.
//   - LongestSimplePath: longest start→finish path that repeats no cell.
//     Backtracking over the grid with reachability and length-bound cuts.
//
// Outcomes:
//
//   - Found:      a path exists; Distance holds the requested length.
//   - Impossible: no path exists; Distance is 0, Infinite or NoPath.
//   - Unknown:    the zero value, meaning "not computed". Finished searches
//     never return it.
//
// None of the searches modify the grid, and each builds its scratch state
// from scratch, so repeated calls on the same grid return identical results.
//
// Complexity:
//
//   - Reachable, NearestFinish: O(size²) time and memory (List backend).
//   - LongestSimplePath: exponential worst case, O(size²) per frame; the
//     cuts keep grids up to about 9×9 with dead ends fast.
//
// Options:
//
//   - WithBackend(graph.Backend): edge storage for the cell graph, default List.
//   - WithLogger(*slog.Logger):   destination of graph diagnostics.
//
// Errors:
//
//   - ErrNilGrid:          g is nil.
//   - maze.ErrNoStart, maze.ErrMultipleStarts: start count is not one.
//   - ErrNoFinish:         the grid has no finish.
//   - ErrMultipleFinishes: Reachable or LongestSimplePath on a grid with
//     several finishes.
package pathsearch
