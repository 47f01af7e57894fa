// SPDX-License-Identifier: MIT

package grid

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Contains reports whether the physical point (x,y) lies inside the grid:
// Left() ≤ x < Right() and Bottom() ≤ y < Top(). NaN is never contained.
func (g *Grid[T]) Contains(x, y float64) bool {
	return x >= g.origin.X && x < g.origin.X+g.width &&
		y >= g.origin.Y && y < g.origin.Y+g.height
}

// InRange reports whether (col,row) addresses a cell of the grid.
func (g *Grid[T]) InRange(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// CellAt maps the physical point (x,y) to the cell containing it.
//
// Implementation:
//   - Stage 1: reject points outside [Left,Right)×[Bottom,Top).
//   - Stage 2: col = floor((x-Left)/cellWidth), row = floor((y-Bottom)/cellHeight),
//     clamped to the grid.
//   - Stage 3: step by one cell while the point lies outside that cell's
//     CellBounds; rounding in the division can be off by one near an edge.
//
// Errors:
//   - ErrOutOfBounds (wrapped with the coordinates).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Grid[T]) CellAt(x, y float64) (Cell, error) {
	c, ok := g.locate(x, y)
	if !ok {
		return Cell{}, coordErrorf(ctxCellAt, x, y, ErrOutOfBounds)
	}

	return c, nil
}

// locate is CellAt without the error allocation.
func (g *Grid[T]) locate(x, y float64) (Cell, bool) {
	if !g.Contains(x, y) {
		return Cell{}, false
	}

	return Cell{Col: g.xAxis().index(x), Row: g.yAxis().index(y)}, true
}

// CellBounds returns the physical rectangle covered by cell (col,row).
// Min is inclusive and Max exclusive. Neighbouring cells share their edge
// exactly, the outer edges equal Left/Right/Bottom/Top, and Max-Min equals
// CellSize() up to rounding.
//
// Errors:
//   - ErrIndexOutOfRange (wrapped with the indices).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Grid[T]) CellBounds(col, row int) (r2.Box, error) {
	if !g.InRange(col, row) {
		return r2.Box{}, indexErrorf(ctxCellBounds, col, row, ErrIndexOutOfRange)
	}

	return g.bounds(col, row), nil
}

// bounds computes cell bounds without range checks.
func (g *Grid[T]) bounds(col, row int) r2.Box {
	ax, ay := g.xAxis(), g.yAxis()

	return r2.Box{
		Min: r2.Vec{X: ax.edge(col), Y: ay.edge(row)},
		Max: r2.Vec{X: ax.edge(col + 1), Y: ay.edge(row + 1)},
	}
}

// Index returns the row-major offset of (col,row) in the backing store.
func (g *Grid[T]) Index(col, row int) (int, error) {
	if !g.InRange(col, row) {
		return 0, indexErrorf(ctxIndex, col, row, ErrIndexOutOfRange)
	}

	return g.offset(col, row), nil
}

// CellOf converts a row-major offset back to its (col,row) address.
func (g *Grid[T]) CellOf(i int) (Cell, error) {
	if i < 0 || i >= len(g.cells) {
		return Cell{}, offsetErrorf(ctxCellOf, i, ErrIndexOutOfRange)
	}

	return Cell{Col: i % g.cols, Row: i / g.cols}, nil
}

// offset is the unchecked row-major index formula.
func (g *Grid[T]) offset(col, row int) int {
	return row*g.cols + col
}
