// SPDX-License-Identifier: MIT

// Rectangle-overlap queries.
//
// Purpose:
//   - Select the cells whose bounds intersect a query rectangle with non-zero
//     area, touching only the cells inside the selected index block.
//   - Offer the selection three ways: an explicit cursor (Overlap), a
//     range-over-func sequence (IterOverlapping), and addresses only
//     (OverlappingCells).
//
// Selection rule:
//   - Clip q to Bounds(). An empty clip (inverted, degenerate, outside or NaN)
//     selects nothing.
//   - col0 is the column holding minX; col1 is the last column whose left edge
//     lies strictly below maxX. Rows likewise. A query edge lying exactly on a
//     cell edge does not select the neighbouring cell, which would only share a
//     zero-area edge. Edges are those reported by CellBounds.

package grid

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// CellRange returns the block of cells overlapping q, clipped to the grid.
// ok is false when nothing overlaps.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Grid[T]) CellRange(q r2.Box) (r Range, ok bool) {
	minX := math.Max(q.Min.X, g.origin.X)
	maxX := math.Min(q.Max.X, g.Right())
	minY := math.Max(q.Min.Y, g.origin.Y)
	maxY := math.Min(q.Max.Y, g.Top())
	// Negated form so NaN corners also produce an empty selection.
	if !(minX < maxX) || !(minY < maxY) {
		return Range{}, false
	}

	col0, col1 := g.xAxis().span(minX, maxX)
	row0, row1 := g.yAxis().span(minY, maxY)

	return Range{Col0: col0, Row0: row0, Col1: col1, Row1: row1}, true
}

// Overlap is a lazy cursor over the cells overlapping a query rectangle.
// It holds the grid pointer, the selected index block and its position; no
// cells are collected up front.
//
//	ov := g.Overlapping(q)
//	for ov.Next() {
//		c, v := ov.Cell(), ov.Value()
//		...
//	}
//
// An Overlap is not safe for concurrent use. Reset rewinds it.
type Overlap[T any] struct {
	g     *Grid[T]
	rng   Range
	empty bool
	desc  bool

	col, row int
	valid    bool
	done     bool
}

// Overlapping returns a cursor over the cells overlapping q. It never fails;
// a query outside the grid produces a cursor that yields nothing.
//
// Complexity:
//   - Time O(1) to build; each Next is O(1).
func (g *Grid[T]) Overlapping(q r2.Box, opts ...QueryOption) *Overlap[T] {
	rng, ok := g.CellRange(q)
	o := &Overlap[T]{
		g:     g,
		rng:   rng,
		empty: !ok,
		desc:  gatherQueryOptions(opts...).descending,
	}
	o.Reset()

	return o
}

// Reset rewinds the cursor to before the first cell.
func (o *Overlap[T]) Reset() {
	o.valid = false
	o.done = o.empty
	o.col = o.rng.Col0 - 1
	o.row = o.rng.Row0
	if o.desc {
		o.row = o.rng.Row1
	}
}

// Next advances to the next overlapping cell and reports whether there is one.
func (o *Overlap[T]) Next() bool {
	if o.done {
		return false
	}
	o.col++
	if o.col > o.rng.Col1 {
		o.col = o.rng.Col0
		if o.desc {
			o.row--
		} else {
			o.row++
		}
		if o.row < o.rng.Row0 || o.row > o.rng.Row1 {
			o.done = true
			o.valid = false
			return false
		}
	}
	o.valid = true

	return true
}

// Cell returns the address of the current cell. Only meaningful after Next
// returned true.
func (o *Overlap[T]) Cell() Cell {
	if !o.valid {
		return Cell{}
	}

	return Cell{Col: o.col, Row: o.row}
}

// Value returns a pointer to the current cell's value, or nil when the cursor
// is not positioned on a cell.
func (o *Overlap[T]) Value() *T {
	if !o.valid {
		return nil
	}

	return &o.g.cells[o.g.offset(o.col, o.row)]
}

// Range returns the selected index block; ok is false for an empty selection.
func (o *Overlap[T]) Range() (r Range, ok bool) {
	return o.rng, !o.empty
}

// Len returns the total number of cells the cursor visits from Reset to exhaustion.
func (o *Overlap[T]) Len() int {
	if o.empty {
		return 0
	}

	return o.rng.Len()
}

// IterOverlapping returns the cells overlapping q with pointers to their
// values, in row-major order (or with rows descending under RowsDescending).
// Each range over the returned sequence starts a fresh walk.
func (g *Grid[T]) IterOverlapping(q r2.Box, opts ...QueryOption) iter.Seq2[Cell, *T] {
	rng, ok := g.CellRange(q)
	desc := gatherQueryOptions(opts...).descending

	return func(yield func(Cell, *T) bool) {
		if !ok {
			return
		}
		g.walk(rng, desc, func(c Cell, i int) bool {
			return yield(c, &g.cells[i])
		})
	}
}

// OverlappingCells is IterOverlapping without the values.
func (g *Grid[T]) OverlappingCells(q r2.Box, opts ...QueryOption) iter.Seq[Cell] {
	rng, ok := g.CellRange(q)
	desc := gatherQueryOptions(opts...).descending

	return func(yield func(Cell) bool) {
		if !ok {
			return
		}
		g.walk(rng, desc, func(c Cell, _ int) bool {
			return yield(c)
		})
	}
}

// walk visits every cell of rng, passing its address and row-major offset,
// until fn returns false.
func (g *Grid[T]) walk(rng Range, desc bool, fn func(c Cell, i int) bool) {
	row, end, step := rng.Row0, rng.Row1+1, 1
	if desc {
		row, end, step = rng.Row1, rng.Row0-1, -1
	}
	for ; row != end; row += step {
		base := row * g.cols
		for col := rng.Col0; col <= rng.Col1; col++ {
			if !fn(Cell{Col: col, Row: row}, base+col) {
				return
			}
		}
	}
}
