// SPDX-License-Identifier: MIT

// Core types, options, and sentinel errors for gridgraph.

package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNilGrid indicates New was called without a grid.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrNilPredicate indicates New was called without a passability predicate.
	ErrNilPredicate = errors.New("gridgraph: passable predicate is nil")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: ±col, ±row.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonal neighbours.
	Conn8
)

// Options contains tunable parameters for grid analysis.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn=Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// offsets4 and offsets8 are (dCol, dRow) steps in a fixed clockwise order
// starting at row-1, which keeps traversal order deterministic.
var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)
