package maze

import (
	"errors"
	"math/rand"
)

// Sentinel errors for grid construction, parsing and generation.
var (
	// ErrSizeTooSmall indicates a size below the minimum of the requested maze kind.
	ErrSizeTooSmall = errors.New("maze: size too small")
	// ErrBadProbability indicates a walk bias outside [MinProbability, 100].
	ErrBadProbability = errors.New("maze: probability must be within [50, 100]")
	// ErrOutOfBounds indicates a coordinate outside the grid or a carve
	// endpoint outside its bounding rectangle.
	// It is raised as a panic.
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")
	// ErrEmptyGrid indicates grid text with no rows.
	ErrEmptyGrid = errors.New("maze: grid text is empty")
	// ErrNonSquare indicates grid text whose rows are not all of length size.
	ErrNonSquare = errors.New("maze: grid must be size×size")
	// ErrBadCell indicates a character outside {X, ' ', S, F}.
	ErrBadCell = errors.New("maze: unknown cell character")
	// ErrNoStart indicates a grid without a start cell.
	ErrNoStart = errors.New("maze: grid has no start cell")
	// ErrMultipleStarts indicates a grid with more than one start cell.
	ErrMultipleStarts = errors.New("maze: grid has more than one start cell")
)

// Cell is the state of one grid square, stored as its text character.
type Cell byte

const (
	Wall   Cell = 'X'
	Open   Cell = ' '
	Start  Cell = 'S'
	Finish Cell = 'F'
)

// Valid reports whether c is one of the four known cell states.
func (c Cell) Valid() bool {
	switch c {
	case Wall, Open, Start, Finish:
		return true
	}
	return false
}

// NoPath is the Longest value recorded when the simple-path walk boxed
// itself in.
const NoPath = -1

const (
	// DefaultProbability is the percentage of walk steps that head toward
	// the target on each axis.
	DefaultProbability = 70
	// MinProbability is the smallest accepted bias. Below it the walk drifts
	// away from its target and pins itself against the bounding box.
	MinProbability = 50

	minBasicSize       = 8
	minMultiFinishSize = 8
	minSimplePathSize  = 4
)

// BasicMaze is a single start, single finish maze. HasPath is the ground
// truth for reachability.
type BasicMaze struct {
	Grid    *Grid
	HasPath bool
}

// MultiFinishMaze has one start and one or more finishes. Shortest is the
// length of the shortest corridor carved to any finish.
type MultiFinishMaze struct {
	Grid     *Grid
	Shortest int
}

// SimplePathMaze has exactly one carved corridor. Longest is its length, or
// NoPath with HasPath=false when the walk could not reach the finish.
type SimplePathMaze struct {
	Grid    *Grid
	Longest int
	HasPath bool
}

// Option configures a Generator.
type Option func(*options)

type options struct {
	seed        int64
	rng         *rand.Rand
	probability int
}

func defaultOptions() options {
	return options{probability: DefaultProbability}
}

// WithSeed seeds the generator's private source. Zero selects the default
// seed. Ignored when WithRand is also given.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithRand makes the generator draw from r. The caller keeps ownership and
// may interleave its own draws.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithProbability sets the walk bias for basic and simple-path mazes, in
// [MinProbability, 100].
// Multi-finish corridors and the no-path wall strip always use 100.
func WithProbability(p int) Option {
	return func(o *options) { o.probability = p }
}
