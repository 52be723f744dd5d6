// Package harness grades the searches of package pathsearch against the
// ground truth recorded by package maze.
//
// What:
//
//   - Suites: haspath (Reachable on basic mazes with and without a path),
//     nearest (NearestFinish distances on multi-finish mazes, then
//     impossibility on basic no-path mazes) and longest (LongestSimplePath
//     on simple-path mazes, with dead ends in advanced mode).
//   - Classify: true/false positive/negative, or not implemented when a
//     search answers pathsearch.Unknown.
//   - Stats and Summary: per-suite tallies, mirrored into Prometheus
//     counters when WithMetrics is given.
//   - Reports: per-case verdict lines with the maze, and a summary block per
//     suite, printed to the writer set with WithOutput.
//
// Every Runner carries a random run id in its log records so the cases of
// one invocation can be grouped.
//
// Options:
//
//   - WithLogger(*slog.Logger): structured logging, default slog.Default().
//   - WithMetrics(*Metrics):    Prometheus collectors from NewMetrics.
//   - WithSolvers(Solvers):     replace the searches under test.
//   - WithOutput(io.Writer):    report destination, default os.Stdout.
//
// Errors:
//
//   - ErrNilGenerator, ErrBadSuite: from NewRunner.
//   - Search and write errors are wrapped with the suite and maze size;
//     context errors stop a run between cases.
package harness
