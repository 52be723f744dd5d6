// Package table provides the bounded key→value lookup capability used by
// graph to map vertex keys to arena slots.
//
// Contract:
//   - Insert(k, v): store v under k; first insertion wins.
//   - Lookup(k):    O(1) amortized presence test and fetch.
//   - Capacity is fixed at construction; there is no removal.
package table

import (
	"errors"
	"fmt"
)

var (
	// ErrBadCapacity indicates a non-positive capacity at construction.
	ErrBadCapacity = errors.New("table: capacity must be positive")
	// ErrFull indicates an insert into a table already holding Cap() keys.
	ErrFull = errors.New("table: capacity exhausted")
	// ErrDuplicate indicates an insert of a key that is already present.
	ErrDuplicate = errors.New("table: duplicate key")
)

// Table is an insert-only associative container with bounded capacity.
type Table[K comparable, V any] interface {
	Insert(k K, v V) error
	Lookup(k K) (V, bool)
	Len() int
	Cap() int
}

// Bounded is the map-backed Table implementation.
type Bounded[K comparable, V any] struct {
	items    map[K]V
	capacity int
}

// NewBounded returns an empty table able to hold capacity keys.
// Complexity: O(capacity) for the preallocated map.
func NewBounded[K comparable, V any](capacity int) (*Bounded[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	return &Bounded[K, V]{items: make(map[K]V, capacity), capacity: capacity}, nil
}

// Insert stores v under k. An existing key keeps its first value and
// yields ErrDuplicate; a full table yields ErrFull.
func (t *Bounded[K, V]) Insert(k K, v V) error {
	if _, ok := t.items[k]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicate, k)
	}
	if len(t.items) >= t.capacity {
		return fmt.Errorf("%w: cap=%d", ErrFull, t.capacity)
	}
	t.items[k] = v
	return nil
}

// Lookup returns the value stored under k and whether it was present.
func (t *Bounded[K, V]) Lookup(k K) (V, bool) {
	v, ok := t.items[k]
	return v, ok
}

// Len reports the number of stored keys.
func (t *Bounded[K, V]) Len() int { return len(t.items) }

// Cap reports the fixed capacity.
func (t *Bounded[K, V]) Cap() int { return t.capacity }
