// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Cell is the integer address of one grid cell.
type Cell struct {
	Col, Row int
}

// String renders the cell as "(col,row)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Range is an inclusive rectangular block of cell indices:
// every Cell with Col0 ≤ Col ≤ Col1 and Row0 ≤ Row ≤ Row1.
// A Range produced by CellRange is never empty and always lies inside the grid.
type Range struct {
	Col0, Row0 int
	Col1, Row1 int
}

// Columns returns the number of columns spanned by r.
func (r Range) Columns() int { return r.Col1 - r.Col0 + 1 }

// Rows returns the number of rows spanned by r.
func (r Range) Rows() int { return r.Row1 - r.Row0 + 1 }

// Len returns the number of cells in r.
func (r Range) Len() int { return r.Columns() * r.Rows() }

// Contains reports whether c lies inside r.
func (r Range) Contains(c Cell) bool {
	return c.Col >= r.Col0 && c.Col <= r.Col1 && c.Row >= r.Row0 && c.Row <= r.Row1
}
