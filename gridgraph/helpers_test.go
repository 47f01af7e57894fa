package gridgraph

import (
	"testing"

	"github.com/katalvlaran/cellgrid/grid"
)

// fromRows builds a unit-cell grid where rows[r][c] is the value of cell (c,r).
func fromRows(t testing.TB, rows [][]int) *grid.Grid[int] {
	t.Helper()
	h, w := len(rows), len(rows[0])
	g, err := grid.NewFunc(float64(w), float64(h), w, h, func(c grid.Cell) int {
		return rows[c.Row][c.Col]
	})
	if err != nil {
		t.Fatalf("grid.NewFunc: %v", err)
	}

	return g
}

// land is the passability predicate used across the tests: any value ≥ 1.
func land(v int) bool { return v >= 1 }

// mustGraph wraps fromRows in a Graph with the given connectivity.
func mustGraph(t testing.TB, rows [][]int, conn Connectivity) *Graph[int] {
	t.Helper()
	gg, err := New(fromRows(t, rows), land, Options{Conn: conn})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return gg
}

func at(col, row int) grid.Cell { return grid.Cell{Col: col, Row: row} }
