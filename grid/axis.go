// SPDX-License-Identifier: MIT

// Per-axis edge arithmetic shared by CellAt, CellBounds and the overlap
// queries. Cell i on an axis covers [edge(i), edge(i+1)); floor division only
// seeds the search, and the result is corrected against the same edges that
// CellBounds reports, so lookup, bounds and selection always agree.

package grid

import "math"

// axis describes one dimension of a grid: n cells of nominal size starting at
// origin and ending exactly at origin+extent.
type axis struct {
	origin, size, extent float64
	n                    int
}

func (g *Grid[T]) xAxis() axis {
	return axis{origin: g.origin.X, size: g.cell.X, extent: g.width, n: g.cols}
}

func (g *Grid[T]) yAxis() axis {
	return axis{origin: g.origin.Y, size: g.cell.Y, extent: g.height, n: g.rows}
}

// edge returns the position of boundary i, 0 ≤ i ≤ n. Boundary 0 is the
// origin and boundary n is pinned to origin+extent.
func (a axis) edge(i int) float64 {
	if i >= a.n {
		return a.origin + a.extent
	}

	return a.origin + float64(i)*a.size
}

// index returns the cell i with edge(i) ≤ v < edge(i+1).
// Requires edge(0) ≤ v < edge(n).
func (a axis) index(v float64) int {
	i := clampIndex(int(math.Floor((v-a.origin)/a.size)), a.n)
	for i > 0 && v < a.edge(i) {
		i--
	}
	for i < a.n-1 && v >= a.edge(i+1) {
		i++
	}

	return i
}

// span returns the inclusive interval of cells whose extent overlaps [lo, hi)
// with non-zero length: first holds lo, last is the highest cell with
// edge(last) < hi. Requires edge(0) ≤ lo < hi ≤ edge(n).
func (a axis) span(lo, hi float64) (first, last int) {
	first = a.index(lo)
	last = clampIndex(int(math.Ceil((hi-a.origin)/a.size))-1, a.n)
	for last > first && hi <= a.edge(last) {
		last--
	}
	for last < a.n-1 && hi > a.edge(last+1) {
		last++
	}
	if last < first {
		last = first
	}

	return first, last
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}

	return i
}
