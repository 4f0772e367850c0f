// SPDX-License-Identifier: MIT
// Package gridgen - uniform ranges and Cartesian enumeration.

package gridgen

import (
	"fmt"
	"math"
)

// rangeSlack absorbs rounding in (Max-Min)/Step so an exact upper bound is kept.
const rangeSlack = 1e-9

// MaxPoints caps the number of grid points a single Generate call may emit.
const MaxPoints = math.MaxInt32

// Range is an inclusive, uniformly stepped interval shared by every axis.
type Range struct {
	Min, Max, Step float64
}

// Validate reports ErrBadRange for a non-positive step or non-finite bounds.
func (r Range) Validate() error {
	for _, v := range [...]float64{r.Min, r.Max, r.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite bound %v: %w", v, ErrBadRange)
		}
	}
	if r.Step <= 0 {
		return fmt.Errorf("step %v <= 0: %w", r.Step, ErrBadRange)
	}

	return nil
}

// Count is the number of values on one axis; 0 when Max < Min.
// The receiver must be valid.
func (r Range) Count() int {
	if r.Max < r.Min {
		return 0
	}

	return int(math.Floor((r.Max-r.Min)/r.Step+rangeSlack)) + 1
}

// Value returns the i-th axis value Min + i*Step.
func (r Range) Value(i int) float64 { return r.Min + float64(i)*r.Step }

// Points returns Count()^dims.
//
// Errors:
//   - ErrBadInputs for dims < 1, ErrBadRange when r is invalid or the grid
//     exceeds MaxPoints.
func (r Range) Points(dims int) (int, error) {
	if dims < 1 {
		return 0, ErrBadInputs
	}
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if (r.Max-r.Min)/r.Step >= MaxPoints {
		return 0, fmt.Errorf("axis of %v points exceeds %d: %w", (r.Max-r.Min)/r.Step, MaxPoints, ErrBadRange)
	}
	n := r.Count()
	total := 1
	for d := 0; d < dims; d++ {
		if n != 0 && total > MaxPoints/n {
			return 0, fmt.Errorf("%d^%d points exceeds %d: %w", n, dims, MaxPoints, ErrBadRange)
		}
		total *= n
	}

	return total, nil
}

// Enumerate calls visit once per grid point in lexicographic order, the first
// coordinate varying slowest. The slice passed to visit is reused between
// calls; copy it to retain it. A visit error stops the walk and is returned.
//
// Complexity: O(Count()^dims * dims).
func Enumerate(dims int, r Range, visit func(point []float64) error) error {
	if _, err := r.Points(dims); err != nil {
		return gridgenErrorf(opEnumerate, err)
	}

	point := make([]float64, dims)

	return walk(point, 0, r, r.Count(), visit)
}

// walk fixes coordinate d and recurses into d+1.
func walk(point []float64, d int, r Range, n int, visit func([]float64) error) error {
	if d == len(point) {
		return visit(point)
	}
	for i := 0; i < n; i++ {
		point[d] = r.Value(i)
		if err := walk(point, d+1, r, n, visit); err != nil {
			return err
		}
	}

	return nil
}
