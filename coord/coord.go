// Package coord defines Key, the 2D integer coordinate used both as a maze
// cell address and as a graph vertex identity.
//
// Convention: X is the row index and Y the column index, so a grid renders
// one X per line. Keys are plain comparable values and can be used directly
// as Go map keys.
package coord

import "fmt"

// fibonacciMultiplier is 2^64 / φ, the multiplier of Knuth's
// multiplicative (Fibonacci) hashing.
const fibonacciMultiplier uint64 = 0x9E3779B97F4A7C15

// Key is an immutable (X, Y) coordinate. Equality is structural.
type Key struct {
	X, Y int
}

// New returns the Key (x, y).
func New(x, y int) Key {
	return Key{X: x, Y: y}
}

// Add returns the Key shifted by (dx, dy).
// Complexity: O(1).
func (k Key) Add(dx, dy int) Key {
	return Key{X: k.X + dx, Y: k.Y + dy}
}

// Neighbors4 returns the four orthogonal neighbors of k in the fixed order
// up, right, down, left. Bounds are not checked.
func (k Key) Neighbors4() [4]Key {
	return [4]Key{
		{X: k.X - 1, Y: k.Y},
		{X: k.X, Y: k.Y + 1},
		{X: k.X + 1, Y: k.Y},
		{X: k.X, Y: k.Y - 1},
	}
}

// Manhattan returns |k.X-o.X| + |k.Y-o.Y|.
func (k Key) Manhattan(o Key) int {
	return abs(k.X-o.X) + abs(k.Y-o.Y)
}

// Hash mixes both fields with Fibonacci multiplicative hashing.
// The key table is backed by a Go map and does not call it; it is
// not part of any equality contract.
// Complexity: O(1).
func (k Key) Hash() uint64 {
	h := uint64(uint32(k.X))<<32 | uint64(uint32(k.Y))
	h ^= h >> 29
	return h * fibonacciMultiplier
}

// String renders the key as "(x,y)".
func (k Key) String() string {
	return fmt.Sprintf("(%d,%d)", k.X, k.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
