// SPDX-License-Identifier: MIT

// Functional configuration for Grid construction and overlap queries. Option
// values are applied in order (last writer wins); option constructors panic
// only on nonsensical arguments, which are programmer errors.

package grid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultOriginX is the x of the min corner of cell (0,0).
	DefaultOriginX = 0.0

	// DefaultOriginY is the y of the min corner of cell (0,0).
	DefaultOriginY = 0.0

	// DefaultCentered keeps the origin at (DefaultOriginX, DefaultOriginY).
	DefaultCentered = false

	// DefaultRowsDescending iterates rows from 0 upwards.
	DefaultRowsDescending = false
)

const panicOriginInvalid = "grid: WithOrigin: x and y must be finite"

// Option configures a Grid at construction time.
type Option func(*options)

// options holds the resolved construction settings.
type options struct {
	origin   r2.Vec
	centered bool
}

// WithOrigin places the min corner of cell (0,0) at (x, y).
// It panics when x or y is NaN or ±Inf. Overrides an earlier WithCentered.
func WithOrigin(x, y float64) Option {
	if isNonFinite(x) || isNonFinite(y) {
		panic(panicOriginInvalid)
	}

	return func(o *options) {
		o.origin = r2.Vec{X: x, Y: y}
		o.centered = false
	}
}

// WithCentered centres the grid on (0,0): the origin becomes
// (-width/2, -height/2), so the grid spans [-width/2, width/2) on x and
// [-height/2, height/2) on y. Overrides an earlier WithOrigin.
func WithCentered() Option {
	return func(o *options) { o.centered = true }
}

// gatherOptions applies user setters over the documented defaults.
func gatherOptions(user ...Option) options {
	o := options{
		origin:   r2.Vec{X: DefaultOriginX, Y: DefaultOriginY},
		centered: DefaultCentered,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// QueryOption configures a single overlap query.
type QueryOption func(*queryOptions)

type queryOptions struct {
	descending bool
}

// RowsDescending makes an overlap query visit rows from the highest index down
// to the lowest. Columns are still visited in ascending order within a row.
// Useful when rendering with a y axis that points down the screen.
func RowsDescending() QueryOption {
	return func(q *queryOptions) { q.descending = true }
}

func gatherQueryOptions(user ...QueryOption) queryOptions {
	q := queryOptions{descending: DefaultRowsDescending}
	for _, set := range user {
		if set != nil {
			set(&q)
		}
	}

	return q
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
