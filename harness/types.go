package harness

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/mazelab/graph"
	"github.com/katalvlaran/mazelab/maze"
	"github.com/katalvlaran/mazelab/pathsearch"
)

// Sentinel errors for runner construction.
var (
	// ErrNilGenerator indicates NewRunner was given no maze generator.
	ErrNilGenerator = errors.New("harness: generator is nil")
	// ErrBadSuite indicates a suite with an invalid size range or step.
	ErrBadSuite = errors.New("harness: invalid suite range")
)

// Suite names, also used as metric labels.
const (
	SuiteHasPath = "haspath"
	SuiteNearest = "nearest"
	SuiteLongest = "longest"
)

// Classification grades one search result against the ground truth.
type Classification uint8

const (
	TruePositive Classification = iota
	TrueNegative
	FalsePositive
	FalseNegative
	// NotImplemented marks a search that returned pathsearch.Unknown.
	NotImplemented
)

// String returns the snake_case label used in metrics and logs.
func (c Classification) String() string {
	switch c {
	case TruePositive:
		return "true_positive"
	case TrueNegative:
		return "true_negative"
	case FalsePositive:
		return "false_positive"
	case FalseNegative:
		return "false_negative"
	case NotImplemented:
		return "not_implemented"
	}
	return "classification(" + strconv.Itoa(int(c)) + ")"
}

// Solver is the signature shared by the pathsearch entry points.
type Solver func(g *maze.Grid, opts ...pathsearch.Option) (pathsearch.Result, error)

// Solvers bundles the three searches under test.
type Solvers struct {
	Reachable Solver
	Nearest   Solver
	Longest   Solver
}

// DefaultSolvers returns the pathsearch implementations.
func DefaultSolvers() Solvers {
	return Solvers{
		Reachable: pathsearch.Reachable,
		Nearest:   pathsearch.NearestFinish,
		Longest:   pathsearch.LongestSimplePath,
	}
}

// SuiteConfig is an inclusive size sweep.
type SuiteConfig struct {
	Enabled bool
	MinSize int
	MaxSize int
	Step    int
}

// ReportConfig controls what the runner prints per case and per suite.
type ReportConfig struct {
	// MaxPrint is the largest maze size rendered; larger ones print a note.
	MaxPrint          int
	PrintOnSuccess    bool
	PrintOnFailure    bool
	PrintOnUnknown    bool
	SuppressOnSuccess bool
}

// Config selects the suites to run and how to report them.
type Config struct {
	HasPath SuiteConfig
	Nearest SuiteConfig
	Longest SuiteConfig
	// Advanced adds dead ends to about half of the longest-path mazes.
	Advanced bool
	Backend  graph.Backend
	Report   ReportConfig
}

// DefaultConfig returns the standard sweep: hasPath 8..60 step 5,
// nearest 8..60 step 3, longest 4..9 step 1 with dead ends.
func DefaultConfig() Config {
	return Config{
		HasPath:  SuiteConfig{Enabled: true, MinSize: 8, MaxSize: 60, Step: 5},
		Nearest:  SuiteConfig{Enabled: true, MinSize: 8, MaxSize: 60, Step: 3},
		Longest:  SuiteConfig{Enabled: true, MinSize: 4, MaxSize: 9, Step: 1},
		Advanced: true,
		Backend:  graph.List,
		Report: ReportConfig{
			MaxPrint:       45,
			PrintOnFailure: true,
		},
	}
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger. Default slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics records every case into m.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithSolvers replaces the searches under test.
func WithSolvers(s Solvers) Option {
	return func(r *Runner) { r.solvers = s }
}
