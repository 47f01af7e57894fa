// SPDX-License-Identifier: MIT

// Grid storage (row-major) & construction.
//
// Purpose:
//   - Hold exactly cols*rows cells in one contiguous slice (offset = row*cols + col).
//   - Derive the per-cell size once; it never changes for the grid's lifetime.
//   - Guarantee that either a fully populated grid exists or an error is returned.
//
// Complexity quicksheet:
//   - New/NewFunc: O(C*R); accessors: O(1).

package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Grid is a fixed-topology spatial grid of cells holding values of type T.
//   - width,height are the physical extents (finite, > 0).
//   - cols,rows are the cell counts (>= 1).
//   - cell is the derived cell size (width/cols, height/rows).
//   - origin is the physical min corner of cell (0,0).
//   - cells is the row-major backing store (len == cols*rows, never reallocated).
type Grid[T any] struct {
	width, height float64
	cols, rows    int
	cell          r2.Vec
	origin        r2.Vec
	cells         []T
}

var _ fmt.Stringer = (*Grid[int])(nil)

// New creates a cols×rows grid covering width×height physical units and copies
// fill into every cell.
//
// Implementation:
//   - Stage 1: validate dimensions (see validateDims).
//   - Stage 2: resolve options (origin / centering).
//   - Stage 3: allocate the backing store and assign fill to each slot.
//
// Notes:
//   - fill is copied by Go assignment: for slices, maps or pointers every cell
//     shares the same referent. Use NewFunc when each cell needs its own.
//
// Errors:
//   - ErrInvalidDimension (wrapped) when width/height are not finite and > 0,
//     cols/rows are < 1, or cols*rows overflows int.
//
// Complexity:
//   - Time O(C*R), Space O(C*R).
func New[T any](width, height float64, cols, rows int, fill T, opts ...Option) (*Grid[T], error) {
	if err := validateDims(ctxNew, width, height, cols, rows); err != nil {
		return nil, err
	}
	g := allocate[T](width, height, cols, rows, gatherOptions(opts...))
	for i := range g.cells {
		g.cells[i] = fill
	}

	return g, nil
}

// NewFunc creates a cols×rows grid covering width×height physical units and
// populates it by calling gen once per cell in row-major index order.
//
// Errors:
//   - ErrInvalidDimension (wrapped) under the same conditions as New, or when gen is nil.
//
// Complexity:
//   - Time O(C*R) plus the cost of gen, Space O(C*R).
func NewFunc[T any](width, height float64, cols, rows int, gen func(c Cell) T, opts ...Option) (*Grid[T], error) {
	if err := validateDims(ctxNewFunc, width, height, cols, rows); err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, dimErrorf(ctxNewFunc, "gen", "nil")
	}
	g := allocate[T](width, height, cols, rows, gatherOptions(opts...))
	i := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.cells[i] = gen(Cell{Col: col, Row: row})
			i++
		}
	}

	return g, nil
}

// validateDims enforces the construction contract before anything is allocated.
func validateDims(method string, width, height float64, cols, rows int) error {
	switch {
	case isNonFinite(width) || width <= 0:
		return dimErrorf(method, "width", width)
	case isNonFinite(height) || height <= 0:
		return dimErrorf(method, "height", height)
	case cols < 1:
		return dimErrorf(method, "columns", cols)
	case rows < 1:
		return dimErrorf(method, "rows", rows)
	case cols > math.MaxInt/rows:
		return dimErrorf(method, "columns*rows", fmt.Sprintf("%d*%d", cols, rows))
	}

	return nil
}

// allocate builds a grid with a zeroed backing store; dimensions must be valid.
func allocate[T any](width, height float64, cols, rows int, o options) *Grid[T] {
	origin := o.origin
	if o.centered {
		origin = r2.Vec{X: -width / 2, Y: -height / 2}
	}

	return &Grid[T]{
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
		cell:   r2.Vec{X: width / float64(cols), Y: height / float64(rows)},
		origin: origin,
		cells:  make([]T, cols*rows),
	}
}

// Columns returns the column count.
func (g *Grid[T]) Columns() int { return g.cols }

// Rows returns the row count.
func (g *Grid[T]) Rows() int { return g.rows }

// Len returns the number of cells (Columns()*Rows()).
func (g *Grid[T]) Len() int { return len(g.cells) }

// Width returns the physical width.
func (g *Grid[T]) Width() float64 { return g.width }

// Height returns the physical height.
func (g *Grid[T]) Height() float64 { return g.height }

// CellSize returns the physical size of one cell as (width/cols, height/rows).
func (g *Grid[T]) CellSize() r2.Vec { return g.cell }

// CellWidth returns width/cols.
func (g *Grid[T]) CellWidth() float64 { return g.cell.X }

// CellHeight returns height/rows.
func (g *Grid[T]) CellHeight() float64 { return g.cell.Y }

// Origin returns the physical min corner of cell (0,0).
func (g *Grid[T]) Origin() r2.Vec { return g.origin }

// Left returns the smallest x covered by the grid (inclusive).
func (g *Grid[T]) Left() float64 { return g.origin.X }

// Right returns the x just past the last column (exclusive).
func (g *Grid[T]) Right() float64 { return g.origin.X + g.width }

// Bottom returns the smallest y covered by the grid (inclusive).
func (g *Grid[T]) Bottom() float64 { return g.origin.Y }

// Top returns the y just past the last row (exclusive).
func (g *Grid[T]) Top() float64 { return g.origin.Y + g.height }

// Bounds returns the physical rectangle covered by the grid.
// Min is inclusive, Max is exclusive.
func (g *Grid[T]) Bounds() r2.Box {
	return r2.Box{
		Min: g.origin,
		Max: r2.Vec{X: g.Right(), Y: g.Top()},
	}
}

// String summarizes the grid topology; cell contents are not rendered.
func (g *Grid[T]) String() string {
	return fmt.Sprintf("Grid[%dx%d cells, %gx%g units, origin (%g,%g)]",
		g.cols, g.rows, g.width, g.height, g.origin.X, g.origin.Y)
}
