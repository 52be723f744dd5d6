// Package mazelab is a testbed for grid-maze pathfinding: it generates
// random mazes whose answers are known by construction and checks search
// routines against them.
//
// What is inside?
//
//	coord/         2D integer coordinate keys with neighbor helpers
//	table/         bounded insert-only key table
//	graph/         fixed-capacity graph over comparable keys, matrix and
//	               list backends, resumable neighbor cursors, visited and
//	               distance bookkeeping
//	maze/          square cell grids, text encoding, generators for basic,
//	               multi-finish and simple-path mazes, dead-end injection
//	pathsearch/    Reachable, NearestFinish and LongestSimplePath
//	harness/       size sweeps, TP/TN/FP/FN grading, reports and
//	               Prometheus counters
//	cmd/mazebench  command-line runner configured by YAML and MAZELAB_* env
//
// Quick start:
//
//	gen, _ := maze.NewGenerator(maze.WithSeed(7))
//	m, _ := gen.MultiFinish(20)
//	res, _ := pathsearch.NearestFinish(m.Grid)
//	fmt.Println(res.Outcome, res.Distance == m.Shortest) // found true
//
// Searches return a tri-state pathsearch.Outcome: Found, Impossible, or
// Unknown for an answer that was never computed. Only the last one is
// graded as "not implemented" by the harness.
package mazelab
