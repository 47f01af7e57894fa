// SPDX-License-Identifier: MIT

// Package cellgrid is a fixed-size 2D spatial grid for Go: a continuous
// coordinate space mapped onto a flat array of generic cells.
//
// What is in the box?
//
//	grid/       Grid[T]: O(1) point → cell lookup, cell → bounds, per-cell
//	            access, and lazy rectangle-overlap iteration (cursor or
//	            range-over-func).
//	gridgraph/  the cells of a Grid[T] seen as a graph: neighbours,
//	            connected regions, regions under a rectangle, and the
//	            cheapest bridge between two regions.
//	examples/   runnable programs: broad-phase collision buckets and a
//	            tilemap island bridge.
//
// Conventions:
//
//	Column grows with x, row grows with y, cell (0,0) sits at the origin
//	(the min corner). Cells are half-open: [left, right) × [bottom, top).
//	Rectangles and points are gonum spatial/r2 values.
//
// Quick ASCII example (100×50 units, 10×5 cells, query (5,5)-(25,15)):
//
//	row 1 │ ▓▓ ▓▓ ▓▓ .. ..
//	row 0 │ ▓▓ ▓▓ ▓▓ .. ..
//	      └───────────────
//	        c0 c1 c2 c3 c4
//
//	go get github.com/katalvlaran/cellgrid
package cellgrid
