// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/cellgrid/grid"
)

// Graph views the cells of a grid.Grid[T] as vertices. Two cells are adjacent
// when they are neighbours under Conn; a cell is passable when the predicate
// accepts its current value. The Graph holds no copy of the cell values.
type Graph[T any] struct {
	g        *grid.Grid[T]
	passable func(T) bool
	conn     Connectivity
	offsets  [][2]int
}

// New wraps g. passable decides which cell values count as land.
// Returns ErrNilGrid or ErrNilPredicate on missing arguments.
// Complexity: O(1).
func New[T any](g *grid.Grid[T], passable func(T) bool, opts Options) (*Graph[T], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if passable == nil {
		return nil, ErrNilPredicate
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &Graph[T]{
		g:        g,
		passable: passable,
		conn:     opts.Conn,
		offsets:  offsets,
	}, nil
}

// Grid returns the underlying grid.
func (gg *Graph[T]) Grid() *grid.Grid[T] { return gg.g }

// Conn returns the connectivity the graph was built with.
func (gg *Graph[T]) Conn() Connectivity { return gg.conn }

// Passable reports whether c is inside the grid and its value satisfies the predicate.
// Complexity: O(1).
func (gg *Graph[T]) Passable(c grid.Cell) bool {
	v, err := gg.g.Get(c.Col, c.Row)
	if err != nil {
		return false
	}

	return gg.passable(v)
}

// Neighbors returns the in-grid neighbours of c under the graph's connectivity,
// regardless of passability, in a fixed clockwise order.
// Complexity: O(d).
func (gg *Graph[T]) Neighbors(c grid.Cell) []grid.Cell {
	out := make([]grid.Cell, 0, len(gg.offsets))
	for _, d := range gg.offsets {
		n := grid.Cell{Col: c.Col + d[0], Row: c.Row + d[1]}
		if gg.g.InRange(n.Col, n.Row) {
			out = append(out, n)
		}
	}

	return out
}

// index maps c to its row-major offset: Row*Columns + Col.
func (gg *Graph[T]) index(c grid.Cell) int {
	return c.Row*gg.g.Columns() + c.Col
}

// cell converts a row-major offset back to its address.
func (gg *Graph[T]) cell(i int) grid.Cell {
	cols := gg.g.Columns()
	return grid.Cell{Col: i % cols, Row: i / cols}
}
