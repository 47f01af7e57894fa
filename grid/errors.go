// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations. Public methods wrap them with the
// method name and the offending arguments; match with errors.Is.
var (
	// ErrInvalidDimension indicates a non-positive or non-finite physical size,
	// a non-positive column or row count, or a nil cell generator.
	ErrInvalidDimension = errors.New("grid: invalid dimension")

	// ErrOutOfBounds indicates a physical coordinate outside the grid rectangle.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrIndexOutOfRange indicates a (col,row) pair or flat index outside the grid.
	ErrIndexOutOfRange = errors.New("grid: index out of range")
)

// method tags used in error wrappers
const (
	ctxNew        = "New"
	ctxNewFunc    = "NewFunc"
	ctxCellAt     = "CellAt"
	ctxCellBounds = "CellBounds"
	ctxIndex      = "Index"
	ctxCellOf     = "CellOf"
	ctxGet        = "Get"
	ctxRef        = "Ref"
	ctxSet        = "Set"
	ctxGetAt      = "GetAt"
	ctxRefAt      = "RefAt"
	ctxSetAt      = "SetAt"
)

// indexErrorf wraps err with the method tag and the (col,row) that triggered it.
func indexErrorf(method string, col, row int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, col, row, err)
}

// coordErrorf wraps err with the method tag and the physical (x,y) that triggered it.
func coordErrorf(method string, x, y float64, err error) error {
	return fmt.Errorf("Grid.%s(%g,%g): %w", method, x, y, err)
}

// offsetErrorf wraps err with the method tag and the flat offset that triggered it.
func offsetErrorf(method string, i int, err error) error {
	return fmt.Errorf("Grid.%s(%d): %w", method, i, err)
}

// dimErrorf reports which constructor argument violated the dimension contract.
func dimErrorf(method, field string, value any) error {
	return fmt.Errorf("grid.%s: %s=%v: %w", method, field, value, ErrInvalidDimension)
}
