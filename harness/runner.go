package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/mazelab/maze"
	"github.com/katalvlaran/mazelab/pathsearch"
)

// Runner drives the generator and the searches across the configured size
// sweeps and grades every answer. A Runner is sequential and not safe for
// concurrent use.
type Runner struct {
	cfg     Config
	gen     *maze.Generator
	solvers Solvers
	log     *slog.Logger
	metrics *Metrics
	out     io.Writer
	runID   string
}

// Summary is the outcome of one suite.
type Summary struct {
	Suite string
	// Measure names the checked distance ("shortest path", "longest simple
	// path"); empty when the suite checks outcomes only.
	Measure string
	Stats   Stats
	Elapsed time.Duration
}

// suiteRun is the mutable state of a suite in progress.
type suiteRun struct {
	name    string
	measure string
	stats   Stats
	started time.Time
}

// WithOutput sets where case and summary reports are printed. Default
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// NewRunner validates cfg and returns a Runner drawing mazes from gen.
// Every Runner gets a fresh run id, attached to all of its log records.
func NewRunner(cfg Config, gen *maze.Generator, opts ...Option) (*Runner, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	suites := []struct {
		name string
		sc   SuiteConfig
		min  int
	}{
		{SuiteHasPath, cfg.HasPath, 8},
		{SuiteNearest, cfg.Nearest, 8},
		{SuiteLongest, cfg.Longest, 4},
	}
	for _, s := range suites {
		if !s.sc.Enabled {
			continue
		}
		if s.sc.MinSize < s.min || s.sc.MaxSize < s.sc.MinSize || s.sc.Step < 1 {
			return nil, fmt.Errorf("%w: %s sizes %d..%d step %d (minimum size %d)",
				ErrBadSuite, s.name, s.sc.MinSize, s.sc.MaxSize, s.sc.Step, s.min)
		}
	}

	r := &Runner{
		cfg:     cfg,
		gen:     gen,
		solvers: DefaultSolvers(),
		log:     slog.Default(),
		out:     os.Stdout,
		runID:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With("run_id", r.runID)
	return r, nil
}

// RunID returns the identifier attached to this runner's log records.
func (r *Runner) RunID() string { return r.runID }

// Run executes every enabled suite in the order hasPath, nearest, longest.
// It stops at the first search error or when ctx is done, returning the
// summaries completed so far.
func (r *Runner) Run(ctx context.Context) ([]Summary, error) {
	suites := []struct {
		enabled bool
		run     func(context.Context) (Summary, error)
	}{
		{r.cfg.HasPath.Enabled, r.RunHasPath},
		{r.cfg.Nearest.Enabled, r.RunNearest},
		{r.cfg.Longest.Enabled, r.RunLongest},
	}

	var out []Summary
	for _, s := range suites {
		if !s.enabled {
			continue
		}
		sum, err := s.run(ctx)
		if err != nil {
			return out, err
		}
		out = append(out, sum)
	}
	r.log.Info("harness: run finished", "suites", len(out))
	return out, nil
}

// RunHasPath checks Reachable on basic mazes, first with a path then
// without one, over the hasPath size sweep.
func (r *Runner) RunHasPath(ctx context.Context) (Summary, error) {
	sc := r.cfg.HasPath
	run := r.begin(SuiteHasPath, "")

	for _, path := range []bool{true, false} {
		for size := sc.MinSize; size <= sc.MaxSize; size += sc.Step {
			if err := ctx.Err(); err != nil {
				return Summary{}, errors.Wrap(err, "harness: haspath suite")
			}
			m, err := r.gen.Basic(size, path)
			if err != nil {
				return Summary{}, errors.Wrapf(err, "harness: generate basic maze of size %d", size)
			}
			want := pathsearch.Result{Outcome: expected(path)}
			if err := r.check(run, r.solvers.Reachable, m.Grid, size, want, false); err != nil {
				return Summary{}, err
			}
		}
	}
	return r.finish(run)
}

// RunNearest checks NearestFinish distances on multi-finish mazes, then
// checks that basic mazes without a path are reported impossible.
func (r *Runner) RunNearest(ctx context.Context) (Summary, error) {
	sc := r.cfg.Nearest
	run := r.begin(SuiteNearest, "shortest path")

	for size := sc.MinSize; size <= sc.MaxSize; size += sc.Step {
		if err := ctx.Err(); err != nil {
			return Summary{}, errors.Wrap(err, "harness: nearest suite")
		}
		m, err := r.gen.MultiFinish(size)
		if err != nil {
			return Summary{}, errors.Wrapf(err, "harness: generate multi-finish maze of size %d", size)
		}
		want := pathsearch.Result{Outcome: pathsearch.Found, Distance: m.Shortest}
		if err := r.check(run, r.solvers.Nearest, m.Grid, size, want, true); err != nil {
			return Summary{}, err
		}
	}
	for size := sc.MinSize; size <= sc.MaxSize; size += sc.Step {
		if err := ctx.Err(); err != nil {
			return Summary{}, errors.Wrap(err, "harness: nearest suite")
		}
		m, err := r.gen.Basic(size, false)
		if err != nil {
			return Summary{}, errors.Wrapf(err, "harness: generate basic maze of size %d", size)
		}
		want := pathsearch.Result{Outcome: pathsearch.Impossible, Distance: pathsearch.Infinite}
		if err := r.check(run, r.solvers.Nearest, m.Grid, size, want, false); err != nil {
			return Summary{}, err
		}
	}
	return r.finish(run)
}

// RunLongest checks LongestSimplePath on simple-path mazes. Each size is
// repeated min((size-3)², 10)+1 times; in advanced mode about half of the
// mazes get dead ends.
func (r *Runner) RunLongest(ctx context.Context) (Summary, error) {
	sc := r.cfg.Longest
	run := r.begin(SuiteLongest, "longest simple path")

	for size := sc.MinSize; size <= sc.MaxSize; size += sc.Step {
		reps := min((size-3)*(size-3), 10)
		for i := 0; i <= reps; i++ {
			if err := ctx.Err(); err != nil {
				return Summary{}, errors.Wrap(err, "harness: longest suite")
			}
			m, err := r.gen.SimplePath(size)
			if err != nil {
				return Summary{}, errors.Wrapf(err, "harness: generate simple-path maze of size %d", size)
			}
			if r.cfg.Advanced && r.gen.Intn(2) == 1 {
				maze.AddDeadEnds(m.Grid)
			}
			want := pathsearch.Result{Outcome: expected(m.HasPath), Distance: m.Longest}
			if err := r.check(run, r.solvers.Longest, m.Grid, size, want, true); err != nil {
				return Summary{}, err
			}
		}
	}
	return r.finish(run)
}

func (r *Runner) begin(name, measure string) *suiteRun {
	r.log.Info("harness: suite started", "suite", name)
	return &suiteRun{name: name, measure: measure, started: time.Now()}
}

// check runs one search, grades it and reports it. Distances are compared
// only when withDistance is set and the search gave an answer.
func (r *Runner) check(run *suiteRun, solve Solver, g *maze.Grid, size int, want pathsearch.Result, withDistance bool) error {
	started := time.Now()
	got, err := solve(g, pathsearch.WithBackend(r.cfg.Backend), pathsearch.WithLogger(r.log))
	elapsed := time.Since(started)
	if err != nil {
		return errors.Wrapf(err, "harness: %s search on maze of size %d", run.name, size)
	}

	class := Classify(want.Outcome, got.Outcome)
	run.stats.Add(class)
	passes := true
	if withDistance && class != NotImplemented {
		passes = got.Distance == want.Distance
		run.stats.AddDistance(passes)
	}

	if r.metrics != nil {
		r.metrics.Outcomes.WithLabelValues(run.name, class.String()).Inc()
		r.metrics.CaseDuration.WithLabelValues(run.name).Observe(elapsed.Seconds())
		if withDistance && class != NotImplemented {
			result := "correct"
			if !passes {
				result = "incorrect"
			}
			r.metrics.DistanceChecks.WithLabelValues(run.name, result).Inc()
		}
	}

	r.log.Debug("harness: case",
		"suite", run.name,
		"size", size,
		"class", class.String(),
		"want", want.Distance,
		"got", got.Distance,
		"elapsed", elapsed,
	)
	return r.reportCase(run, g, size, class, passes, want, got)
}

func (r *Runner) finish(run *suiteRun) (Summary, error) {
	sum := Summary{
		Suite:   run.name,
		Measure: run.measure,
		Stats:   run.stats,
		Elapsed: time.Since(run.started),
	}
	r.log.Info("harness: suite finished",
		"suite", sum.Suite,
		"cases", sum.Stats.Cases(),
		"true_positive", sum.Stats.TruePositive,
		"true_negative", sum.Stats.TrueNegative,
		"false_positive", sum.Stats.FalsePositive,
		"false_negative", sum.Stats.FalseNegative,
		"not_implemented", sum.Stats.NotImplemented,
		"passed", sum.Stats.Passed(),
		"elapsed", sum.Elapsed,
	)
	if err := WriteSummary(r.out, sum, r.cfg.Report); err != nil {
		return sum, err
	}
	return sum, nil
}

func expected(path bool) pathsearch.Outcome {
	if path {
		return pathsearch.Found
	}
	return pathsearch.Impossible
}
