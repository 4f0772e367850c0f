// SPDX-License-Identifier: MIT
// Package matrix: Gauss-Jordan inversion with partial pivoting.
//
// Purpose:
//   - Invert a square matrix by reducing a scratch copy C to the identity while
//     applying the same row operations to an identity I, which ends as C⁻¹.
//
// Numeric policy:
//   - IEEE double precision throughout; no tolerance band.
//   - A pivot is "zero" only when it compares equal to ZeroPivot. Such a
//     column means the matrix is singular and ErrSingular is returned.

package matrix

import (
	"fmt"
	"math"
)

// Inverse returns A⁻¹ via Gauss-Jordan elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquareOperand(m). Copy m into a private scratch C; build I_n.
//   - Stage 2 (forward): for each column k pick the row with the largest |C[i,k]|
//     among rows k..n-1 (first occurrence wins on ties). A zero pivot aborts with
//     ErrSingular. Swap it into row k of C and I, then eliminate every row below.
//   - Stage 3 (backward): for rows n-1..0, clear the entries right of the diagonal
//     using the already normalized rows below, then divide the row by its diagonal.
//   - Stage 4: return I.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, ErrNonSquare, ErrSingular (column index attached).
//
// Determinism:
//   - Fixed loop orders; the same input always yields bit-identical output.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for C and I.
//
// Notes:
//   - m is never mutated, even when it is a *Dense.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareOperand(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	work := src.cloneDense() // scratch C; discarded on return
	n := work.r
	inv, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	c, id := work.data, inv.data
	var (
		i, j, k, iMax int
		pivot, f      float64
	)

	// Forward elimination. Every column must yield a pivot, so the pivot row
	// always equals the column index.
	for k = 0; k < n; k++ {
		iMax = pivotRow(c, n, k)
		pivot = c[iMax*n+k]
		if pivot == ZeroPivot {
			return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if iMax != k {
			swapRows(c, n, k, iMax)
			swapRows(id, n, k, iMax)
		}
		for i = k + 1; i < n; i++ {
			f = c[i*n+k] / pivot
			if f == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				c[i*n+j] -= c[k*n+j] * f
				id[i*n+j] -= id[k*n+j] * f
			}
		}
	}

	// Backward elimination and normalization.
	for i = n - 1; i >= 0; i-- {
		for j = n - 1; j > i; j-- {
			f = c[i*n+j] // row j is already normalized
			if f == 0 {
				continue
			}
			for k = 0; k < n; k++ {
				id[i*n+k] -= f * id[j*n+k]
				c[i*n+k] -= f * c[j*n+k]
			}
		}
		pivot = c[i*n+i]
		for k = 0; k < n; k++ {
			id[i*n+k] /= pivot
			c[i*n+k] /= pivot
		}
	}

	return inv, nil
}

// pivotRow returns the row in k..n-1 with the largest |c[i,k]|. Ties keep
// the earliest row: a candidate must be strictly larger to replace it.
func pivotRow(c []float64, n, k int) int {
	best := k
	for i := k + 1; i < n; i++ {
		if math.Abs(c[best*n+k]) < math.Abs(c[i*n+k]) {
			best = i
		}
	}

	return best
}

// swapRows exchanges rows a and b of an n-column row-major buffer in place.
func swapRows(data []float64, n, a, b int) {
	ra := data[a*n : (a+1)*n]
	rb := data[b*n : (b+1)*n]
	for j := 0; j < n; j++ {
		ra[j], rb[j] = rb[j], ra[j]
	}
}
