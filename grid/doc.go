// SPDX-License-Identifier: MIT

// Package grid provides Grid[T], a fixed-size two-dimensional spatial grid that
// maps a continuous physical coordinate space onto a dense array of cells.
//
// What:
//
//   - Grid[T] covers the rectangle [origin, origin+size) in caller-defined units
//     with Columns()×Rows() equally sized cells, each holding one value of type T.
//   - CellAt maps a physical point to its cell in O(1); CellBounds maps a cell back
//     to the exact rectangle it covers.
//   - Overlapping / IterOverlapping enumerate only the cells whose bounds intersect
//     a query rectangle, lazily and in a fixed order.
//
// Why:
//
//   - Broad-phase collision: bucket entity handles per cell, then ask for the
//     cells under an AABB instead of testing every pair.
//   - Visibility culling and tilemaps: fetch the cells under a camera rectangle.
//
// Conventions (fixed for every Grid):
//
//   - Column grows with x, row grows with y. Row 0 is the row at the smallest y
//     (Bottom()); cell (0,0) has its min corner at Origin().
//   - Storage is row-major: cell (col,row) lives at index row*Columns()+col.
//   - Iteration is row-major too: rows ascending, columns ascending within a row.
//     RowsDescending() flips the row order for callers whose y axis points down.
//   - Cells are half-open: a point on the shared edge of two cells belongs to the
//     cell with the larger index. The upper edges Right() and Top() are outside.
//   - CellBounds is the single source of cell edges: CellAt always returns the
//     cell whose bounds hold the point, and overlap queries select by the same
//     edges, even when the cell size is not exactly representable.
//
// Rectangles and points are gonum's r2.Box and r2.Vec. A query r2.Box whose Min
// exceeds its Max on either axis is inverted and selects nothing; note that
// r2.NewBox canonicalizes its corners, so build the literal when that matters.
//
// Complexity:
//
//   - New / NewFunc: O(C×R) time and memory.
//   - CellAt, CellBounds, Get, Ref, Set: O(1).
//   - Overlap queries: O(1) setup plus O(k) for k yielded cells.
//   - Cells: O(1); the returned slice aliases the grid.
//
// Errors:
//
//   - ErrInvalidDimension: non-positive or non-finite size, zero columns/rows,
//     or a cell count that overflows int.
//   - ErrOutOfBounds: physical coordinate outside the grid rectangle.
//   - ErrIndexOutOfRange: (col,row) outside [0,Columns())×[0,Rows()).
//
// Overlap queries never fail: clipping, not rejection, is their policy.
//
// Concurrency: a Grid is a single-owner value with no internal locking. Do not
// mutate a cell through Ref or Set while an overlap cursor over the same grid is
// still in use.
package grid
