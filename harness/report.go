package harness

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mazelab/maze"
	"github.com/katalvlaran/mazelab/pathsearch"
)

const summaryRule = "------------------------------------------------"

// reportWriter remembers the first write error so a report can be printed
// without checking every line.
type reportWriter struct {
	w   io.Writer
	err error
}

func (p *reportWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *reportWriter) grid(g *maze.Grid, maxPrint int) {
	if g.Size() > maxPrint {
		p.printf("Maze too large to display\n")
		return
	}
	if p.err != nil {
		return
	}
	_, p.err = g.WriteTo(p.w)
}

// reportCase prints the verdict line and maze for one case when the report
// flags ask for it. Successes print only with PrintOnSuccess, or when the
// distance was wrong; failures print with PrintOnFailure; unknown answers
// print with PrintOnUnknown.
func (r *Runner) reportCase(run *suiteRun, g *maze.Grid, size int, class Classification, passes bool, want, got pathsearch.Result) error {
	rc := r.cfg.Report
	p := &reportWriter{w: r.out}
	distanceFailure := !passes && rc.PrintOnFailure && run.stats.Implemented()

	show := false
	switch class {
	case TruePositive:
		show = rc.PrintOnSuccess || distanceFailure
		if show {
			p.printf("SUCCESS - %s - Path found for maze of size %d (true positive)\n", run.name, size)
		}
	case FalseNegative:
		show = rc.PrintOnFailure
		if show {
			p.printf("FAILURE - %s - Path not found for maze of size %d (false negative)\n", run.name, size)
		}
	case TrueNegative:
		show = rc.PrintOnSuccess || distanceFailure
		if show {
			p.printf("SUCCESS - %s - Path not found for maze of size %d (true negative)\n", run.name, size)
		}
	case FalsePositive:
		show = rc.PrintOnFailure
		if show {
			p.printf("FAILURE - %s - Path found for maze of size %d (false positive)\n", run.name, size)
		}
	case NotImplemented:
		show = rc.PrintOnUnknown
		if show {
			p.printf("UNKNOWN - %s - No answer for maze of size %d\n", run.name, size)
		}
	}
	if !show {
		return nil
	}

	if !passes {
		p.printf("FAILURE - %s - %s has length = %d but the search returned %d\n",
			run.name, run.measure, want.Distance, got.Distance)
	}
	p.grid(g, rc.MaxPrint)
	return errors.Wrap(p.err, "harness: write case report")
}

// WriteSummary prints the per-suite block: classification counts (or a
// not-implemented notice), the distance tally for distance suites, a
// success line when everything passed and the elapsed time.
func WriteSummary(w io.Writer, s Summary, rc ReportConfig) error {
	p := &reportWriter{w: w}
	st := s.Stats

	p.printf("%s Summary of Results:\n%s\n", s.Suite, summaryRule)
	switch {
	case st.Implemented() && (!rc.SuppressOnSuccess || st.FalsePositive+st.FalseNegative != 0):
		p.printf("True Positives:  %5d, True Negatives:  %5d\n", st.TruePositive, st.TrueNegative)
		p.printf("False Positives: %5d, False Negatives: %5d\n", st.FalsePositive, st.FalseNegative)
	case !st.Implemented() && !rc.PrintOnUnknown:
		p.printf("NOT IMPLEMENTED - %s - This search is not yet implemented\n", s.Suite)
	}

	if s.Measure != "" && st.Implemented() && (!rc.SuppressOnSuccess || st.DistanceIncorrect != 0) {
		p.printf("Correctly identified the %s length in %d out of %d test cases\n",
			s.Measure, st.DistanceCorrect, st.DistanceCorrect+st.DistanceIncorrect)
	}
	if st.Passed() {
		p.printf("All test cases succeeded.\n")
	}
	p.printf("%s testing took %f seconds\n\n", s.Suite, s.Elapsed.Seconds())

	return errors.Wrap(p.err, "harness: write summary")
}
