// Package maze generates square grid mazes whose answers are known in
// advance, and converts them to graphs for the search algorithms.
//
// What:
//
//   - Grid: a size×size array of Wall 'X', Open ' ', Start 'S' and
//     Finish 'F' cells addressed by coord.Key (X = row, Y = column).
//   - Text encoding: one row per line, then a blank line (String, WriteTo,
//     Parse).
//   - Generator: three maze kinds, each returned with its ground truth.
//     Basic:       one start, one finish, HasPath chosen by the caller.
//     MultiFinish: one start, several finishes, Shortest corridor length.
//     SimplePath:  one self-avoiding corridor, Longest = its length.
//   - AddDeadEnds: decoy branches that change neither reachability nor the
//     longest simple path.
//   - Grid.ToGraph: the open cells as an undirected graph.Graph.
//
// Ground truth is recorded while carving and never by running a search.
//
// Walks:
//
// Corridors are carved by a biased random walk. Each iteration computes the
// direction toward the target on both axes; with probability (100-p)% an
// axis is reversed. The walk then moves on X, stamps, moves on Y, stamps,
// never leaving its bounding box. At p=100 the walk is monotone and its
// length is the Manhattan distance. The simple-path variant also refuses to
// step onto already carved cells.
//
// Complexity:
//
//   - NewGrid, Parse, String, OpenCells, AddDeadEnds: O(size²).
//   - Basic, MultiFinish: O(size²) expected.
//   - SimplePath: O(size²) expected, since each move carves a new cell.
//   - ToGraph: O(size²) plus the graph backend's allocation.
//
// Options:
//
//   - WithSeed(int64):    deterministic source, 0 = default seed.
//   - WithRand(*rand.Rand): share a caller-owned source.
//   - WithProbability(p): walk bias in percent, 50..100, default 70.
//
// Errors:
//
//   - ErrSizeTooSmall: size below 8 (Basic, MultiFinish) or 4 (SimplePath).
//   - ErrBadProbability: bias outside [50, 100].
//   - ErrEmptyGrid, ErrNonSquare, ErrBadCell: malformed grid text.
//   - ErrNoStart, ErrMultipleStarts: start cell count is not one.
//   - ErrOutOfBounds: panic from carving or Set; a defect in the caller.
package maze
