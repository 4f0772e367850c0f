// SPDX-License-Identifier: MIT
// Package regression: sentinel errors.
//
// Shape and singularity failures reuse the matrix sentinels
// (matrix.ErrDimensionMismatch, matrix.ErrSingular) so one errors.Is check
// works across both layers. Only model-lifecycle errors live here.

package regression

import (
	"errors"
	"fmt"
)

// ErrNotFitted is returned when a zero-value or nil Model is used for prediction.
var ErrNotFitted = errors.New("regression: model is not fitted")

// Operation tags for error wrapping.
const (
	opDesign    = "DesignMatrix"
	opFit       = "Fit"
	opPredict   = "Predict"
	opTrain     = "Train"
	opScore     = "Score"
	opResiduals = "Residuals"
)

// regressionErrorf wraps err with an operation tag. Use only when err != nil.
func regressionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
