package pathsearch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/mazelab/coord"
	"github.com/katalvlaran/mazelab/graph"
	"github.com/katalvlaran/mazelab/maze"
)

// Sentinel errors for search preconditions.
var (
	// ErrNilGrid indicates a nil *maze.Grid.
	ErrNilGrid = errors.New("pathsearch: grid is nil")
	// ErrNoFinish indicates a grid without any finish cell.
	ErrNoFinish = errors.New("pathsearch: grid has no finish cell")
	// ErrMultipleFinishes indicates a single-target search on a grid with
	// several finish cells.
	ErrMultipleFinishes = errors.New("pathsearch: grid has more than one finish cell")
)

// Outcome is the tri-state verdict of a search.
type Outcome uint8

const (
	// Unknown means no answer was computed. It is the zero value and is
	// never returned by a finished search.
	Unknown Outcome = iota
	// Found means a path exists; Result.Distance carries its length.
	Found
	// Impossible means no path exists.
	Impossible
)

// String returns the lower-case name of o.
func (o Outcome) String() string {
	switch o {
	case Unknown:
		return "unknown"
	case Found:
		return "found"
	case Impossible:
		return "impossible"
	}
	return "outcome(" + strconv.Itoa(int(o)) + ")"
}

// Distance sentinels.
const (
	// Infinite is the NearestFinish distance when no finish is reachable.
	Infinite = graph.Infinite
	// NoPath is the LongestSimplePath distance when no path exists.
	NoPath = maze.NoPath
)

// Result is a verdict plus the distance it refers to. Reachable always
// reports Distance 0.
type Result struct {
	Outcome  Outcome
	Distance int
}

// Option configures a search.
type Option func(*options)

type options struct {
	backend graph.Backend
	log     *slog.Logger
}

func defaultOptions() options {
	return options{
		backend: graph.List,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithBackend selects the edge storage of the graph built by Reachable and
// NearestFinish. Default graph.List.
func WithBackend(b graph.Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithLogger routes graph diagnostics to l. By default they are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// endpoints validates g and returns its start and finishes. With single
// set, exactly one finish is required.
func endpoints(g *maze.Grid, single bool) (coord.Key, []coord.Key, error) {
	if g == nil {
		return coord.Key{}, nil, ErrNilGrid
	}
	start, err := g.Start()
	if err != nil {
		return coord.Key{}, nil, err
	}
	fin := g.Finishes()
	switch {
	case len(fin) == 0:
		return coord.Key{}, nil, ErrNoFinish
	case single && len(fin) > 1:
		return coord.Key{}, nil, fmt.Errorf("%w: found %d", ErrMultipleFinishes, len(fin))
	}
	return start, fin, nil
}
