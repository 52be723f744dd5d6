// Package graph defines the Backend selector, options and sentinel errors
// for the fixed-capacity Graph.
package graph

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
)

// Sentinel errors. Construction errors are returned by New; the rest are
// programming errors and reach the caller as panics wrapping the sentinel.
var (
	// ErrBadCapacity indicates capacity <= 0 at construction.
	ErrBadCapacity = errors.New("graph: capacity must be positive")
	// ErrBadBackend indicates an unknown Backend value.
	ErrBadBackend = errors.New("graph: unsupported backend")
	// ErrCapacityExceeded indicates AddVertex on a full graph.
	ErrCapacityExceeded = errors.New("graph: vertex capacity exceeded")
	// ErrEdgeRemovalUnsupported indicates SetEdge(a, b, false) on an existing
	// edge of a List-backed graph.
	ErrEdgeRemovalUnsupported = errors.New("graph: edge removal not supported by list backend")
)

// Infinite is the distance reported for pairs never set via SetDistance.
const Infinite = math.MaxInt

// Backend selects how edges are stored.
type Backend int

const (
	// Matrix stores edges in a dense capacity×capacity boolean matrix:
	// O(1) edge test and removal, O(V²) space.
	Matrix Backend = iota + 1
	// List stores per-vertex successor and predecessor index slices:
	// O(out-degree) edge test, O(E) space, no removal.
	List
)

// String returns "matrix", "list" or "backend(n)".
func (b Backend) String() string {
	switch b {
	case Matrix:
		return "matrix"
	case List:
		return "list"
	}
	return "backend(" + strconv.Itoa(int(b)) + ")"
}

// ParseBackend maps "matrix" or "list" to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "matrix":
		return Matrix, nil
	case "list":
		return List, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadBackend, s)
}

// Option configures a Graph at construction.
type Option func(*options)

type options struct {
	log *slog.Logger
}

func defaultOptions() options {
	return options{log: slog.Default()}
}

// WithLogger routes the graph's warnings (duplicate vertex, implicit
// insertion, no-op removal) to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
