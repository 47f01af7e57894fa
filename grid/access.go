// SPDX-License-Identifier: MIT

package grid

import (
	"iter"

	"gonum.org/v1/gonum/spatial/r2"
)

// Get returns a copy of the value stored in cell (col,row).
func (g *Grid[T]) Get(col, row int) (T, error) {
	if !g.InRange(col, row) {
		var zero T
		return zero, indexErrorf(ctxGet, col, row, ErrIndexOutOfRange)
	}

	return g.cells[g.offset(col, row)], nil
}

// Ref returns a pointer to the value stored in cell (col,row) for in-place
// mutation. The pointer stays valid for the grid's lifetime.
func (g *Grid[T]) Ref(col, row int) (*T, error) {
	if !g.InRange(col, row) {
		return nil, indexErrorf(ctxRef, col, row, ErrIndexOutOfRange)
	}

	return &g.cells[g.offset(col, row)], nil
}

// Set replaces the value stored in cell (col,row).
func (g *Grid[T]) Set(col, row int, v T) error {
	if !g.InRange(col, row) {
		return indexErrorf(ctxSet, col, row, ErrIndexOutOfRange)
	}
	g.cells[g.offset(col, row)] = v

	return nil
}

// GetAt returns a copy of the value in the cell containing the physical point (x,y).
func (g *Grid[T]) GetAt(x, y float64) (T, error) {
	c, ok := g.locate(x, y)
	if !ok {
		var zero T
		return zero, coordErrorf(ctxGetAt, x, y, ErrOutOfBounds)
	}

	return g.cells[g.offset(c.Col, c.Row)], nil
}

// RefAt returns a pointer to the value in the cell containing (x,y).
func (g *Grid[T]) RefAt(x, y float64) (*T, error) {
	c, ok := g.locate(x, y)
	if !ok {
		return nil, coordErrorf(ctxRefAt, x, y, ErrOutOfBounds)
	}

	return &g.cells[g.offset(c.Col, c.Row)], nil
}

// SetAt replaces the value in the cell containing (x,y).
func (g *Grid[T]) SetAt(x, y float64, v T) error {
	c, ok := g.locate(x, y)
	if !ok {
		return coordErrorf(ctxSetAt, x, y, ErrOutOfBounds)
	}
	g.cells[g.offset(c.Col, c.Row)] = v

	return nil
}

// All yields every cell and a pointer to its value in row-major index order.
func (g *Grid[T]) All() iter.Seq2[Cell, *T] {
	return func(yield func(Cell, *T) bool) {
		i := 0
		for row := 0; row < g.rows; row++ {
			for col := 0; col < g.cols; col++ {
				if !yield(Cell{Col: col, Row: row}, &g.cells[i]) {
					return
				}
				i++
			}
		}
	}
}

// Cells returns the backing store in row-major order: cell (col,row) is at
// Index(col,row). The slice aliases the grid, so writes through it are writes
// to the cells. Its length is fixed; do not append to it.
func (g *Grid[T]) Cells() []T {
	return g.cells[:len(g.cells):len(g.cells)]
}

// ModifyAll calls fn once for every cell in row-major index order.
func (g *Grid[T]) ModifyAll(fn func(c Cell, v *T)) {
	for c, v := range g.All() {
		fn(c, v)
	}
}

// ModifyInRect calls fn for every cell overlapping q, with the same selection
// and order as IterOverlapping. It returns the number of cells visited.
func (g *Grid[T]) ModifyInRect(q r2.Box, fn func(c Cell, v *T), opts ...QueryOption) int {
	n := 0
	for c, v := range g.IterOverlapping(q, opts...) {
		fn(c, v)
		n++
	}

	return n
}
