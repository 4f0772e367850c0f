// SPDX-License-Identifier: MIT
// Package regression - normal-equation kernels.
//
// Purpose:
//   - Build the design matrix (intercept column + features).
//   - Solve B = (XᵗX)⁻¹XᵗY by composing matrix kernels; no loops of its own
//     beyond the design copy.

package regression

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/matrix"
)

// interceptValue fills the leading design column.
const interceptValue = 1.0

// DesignMatrix returns the N×(P+1) design matrix for an N×P feature matrix:
// column 0 is all ones, columns 1..P copy the features.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrBadShape.
//
// Complexity:
//   - Time O(N*P), Space O(N*P).
func DesignMatrix(features matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateOperand(features); err != nil {
		return nil, regressionErrorf(opDesign, err)
	}
	rows, cols := features.Rows(), features.Cols()
	x, err := matrix.NewDense(rows, cols+1)
	if err != nil {
		return nil, regressionErrorf(opDesign, err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		if err = x.Set(i, 0, interceptValue); err != nil {
			return nil, regressionErrorf(opDesign, err)
		}
		for j := 0; j < cols; j++ {
			if v, err = features.At(i, j); err != nil {
				return nil, regressionErrorf(opDesign, err)
			}
			if err = x.Set(i, j+1, v); err != nil {
				return nil, regressionErrorf(opDesign, err)
			}
		}
	}

	return x, nil
}

// Fit computes the OLS coefficient matrix B = (XᵗX)⁻¹XᵗY.
//
// Implementation:
//   - Stage 1: validate operands and X.Rows == Y.Rows.
//   - Stage 2: Xᵗ, XᵗX, (XᵗX)⁻¹, (XᵗX)⁻¹Xᵗ, then ·Y; each step allocates fresh.
//
// Inputs:
//   - x: N×K design matrix (include the ones column yourself, or use DesignMatrix).
//   - y: N×Q targets.
//
// Returns:
//   - K×Q coefficient matrix.
//
// Errors:
//   - matrix.ErrDimensionMismatch when the row counts differ.
//   - matrix.ErrSingular when XᵗX has no inverse (collinear features, N < K).
//
// Complexity:
//   - Time O(N*K^2 + K^3 + N*K*Q), Space O(N*K + K^2).
func Fit(x, y matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateOperand(x); err != nil {
		return nil, regressionErrorf(opFit, err)
	}
	if err := matrix.ValidateOperand(y); err != nil {
		return nil, regressionErrorf(opFit, err)
	}
	if x.Rows() != y.Rows() {
		return nil, regressionErrorf(opFit,
			fmt.Errorf("%d design rows vs %d target rows: %w", x.Rows(), y.Rows(), matrix.ErrDimensionMismatch))
	}

	xt, err := matrix.Transpose(x)
	if err != nil {
		return nil, regressionErrorf(opFit, err)
	}
	xtx, err := matrix.Mul(xt, x)
	if err != nil {
		return nil, regressionErrorf(opFit, err)
	}
	inv, err := matrix.Inverse(xtx)
	if err != nil {
		return nil, regressionErrorf(opFit, err)
	}
	proj, err := matrix.Mul(inv, xt)
	if err != nil {
		return nil, regressionErrorf(opFit, err)
	}
	b, err := matrix.Mul(proj, y)
	if err != nil {
		return nil, regressionErrorf(opFit, err)
	}

	return b, nil
}

// Predict returns X·B for design rows X.
//
// Errors:
//   - matrix.ErrDimensionMismatch when X.Cols != B.Rows (feature count differs
//     from training, intercept column included).
//
// Complexity:
//   - Time O(M*K*Q), Space O(M*Q).
func Predict(x, b matrix.Matrix) (matrix.Matrix, error) {
	y, err := matrix.Mul(x, b)
	if err != nil {
		return nil, regressionErrorf(opPredict, err)
	}

	return y, nil
}
