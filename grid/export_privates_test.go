// SPDX-License-Identifier: MIT

package grid

// Test bridge for grid_test: exposes the unexported per-axis edge arithmetic
// without widening the production API. Being a _test.go file, it is compiled
// only into the test binary.

// ExportedSpan runs axis.span on an axis of n cells of the given size
// starting at origin and ending at origin+extent.
func ExportedSpan(origin, size, extent float64, n int, lo, hi float64) (first, last int) {
	return axis{origin: origin, size: size, extent: extent, n: n}.span(lo, hi)
}

// ExportedEdge runs axis.edge on the same axis description.
func ExportedEdge(origin, size, extent float64, n, i int) float64 {
	return axis{origin: origin, size: size, extent: extent, n: n}.edge(i)
}

// ExportedClampIndex exposes clampIndex for white-box tests.
var ExportedClampIndex = clampIndex
