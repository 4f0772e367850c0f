// SPDX-License-Identifier: MIT
// Package regression - Model: a fitted coefficient matrix plus the intercept
// policy and shapes it was trained with.

package regression

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvlearn/matrix"
)

// Model is an OLS fit. The zero value is not fitted; use Train.
// A Model is immutable after Train and safe for concurrent reads.
type Model struct {
	coef      matrix.Matrix // (P+1)×Q with intercept, P×Q without
	intercept bool
	features  int // P
	targets   int // Q
}

// Train fits a Model on an N×P feature matrix (no ones column) and N×Q targets.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrBadShape, matrix.ErrDimensionMismatch,
//     matrix.ErrSingular.
func Train(features, targets matrix.Matrix, opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateOperand(features); err != nil {
		return nil, regressionErrorf(opTrain, err)
	}

	x, err := design(features, o.intercept)
	if err != nil {
		return nil, regressionErrorf(opTrain, err)
	}
	b, err := Fit(x, targets)
	if err != nil {
		return nil, regressionErrorf(opTrain, err)
	}

	return &Model{
		coef:      b,
		intercept: o.intercept,
		features:  features.Cols(),
		targets:   targets.Cols(),
	}, nil
}

// design builds the design rows for features under the intercept policy.
func design(features matrix.Matrix, intercept bool) (matrix.Matrix, error) {
	if intercept {
		return DesignMatrix(features)
	}

	return features, nil
}

// fitted reports ErrNotFitted for nil or zero-value models.
func (m *Model) fitted() error {
	if m == nil || m.coef == nil {
		return ErrNotFitted
	}

	return nil
}

// Predict returns the M×Q predictions for an M×P feature matrix.
//
// Errors:
//   - ErrNotFitted, matrix.ErrDimensionMismatch when P differs from training.
func (m *Model) Predict(features matrix.Matrix) (matrix.Matrix, error) {
	if err := m.fitted(); err != nil {
		return nil, regressionErrorf(opPredict, err)
	}
	if err := matrix.ValidateOperand(features); err != nil {
		return nil, regressionErrorf(opPredict, err)
	}
	if features.Cols() != m.features {
		return nil, regressionErrorf(opPredict,
			fmt.Errorf("%d features, model has %d: %w", features.Cols(), m.features, matrix.ErrDimensionMismatch))
	}
	x, err := design(features, m.intercept)
	if err != nil {
		return nil, regressionErrorf(opPredict, err)
	}

	return Predict(x, m.coef)
}

// Coefficients returns a copy of B. With an intercept, row 0 holds the
// intercepts and row p+1 the weights of feature p.
func (m *Model) Coefficients() (matrix.Matrix, error) {
	if err := m.fitted(); err != nil {
		return nil, err
	}

	return m.coef.Clone(), nil
}

// HasIntercept reports whether the model was trained with a ones column.
func (m *Model) HasIntercept() bool { return m != nil && m.intercept }

// Features returns the number of input features P.
func (m *Model) Features() int {
	if m == nil {
		return 0
	}

	return m.features
}

// Targets returns the number of outputs Q.
func (m *Model) Targets() int {
	if m == nil {
		return 0
	}

	return m.targets
}

// Residuals returns targets − Predict(features).
func (m *Model) Residuals(features, targets matrix.Matrix) (matrix.Matrix, error) {
	pred, err := m.Predict(features)
	if err != nil {
		return nil, regressionErrorf(opResiduals, err)
	}
	res, err := matrix.Sub(targets, pred)
	if err != nil {
		return nil, regressionErrorf(opResiduals, err)
	}

	return res, nil
}

// Score returns the coefficient of determination R² for each target column.
// A constant target column has no variance; its score is NaN or -Inf.
//
// Complexity: O(M*(P+1)*Q) for the prediction plus O(M*Q) for the sums.
func (m *Model) Score(features, targets matrix.Matrix) ([]float64, error) {
	pred, err := m.Predict(features)
	if err != nil {
		return nil, regressionErrorf(opScore, err)
	}
	if err = matrix.ValidateBinarySameShape(pred, targets); err != nil {
		return nil, regressionErrorf(opScore, err)
	}

	scores := make([]float64, m.targets)
	var est, obs []float64
	for q := 0; q < m.targets; q++ {
		if est, err = column(pred, q); err != nil {
			return nil, regressionErrorf(opScore, err)
		}
		if obs, err = column(targets, q); err != nil {
			return nil, regressionErrorf(opScore, err)
		}
		scores[q] = stat.RSquaredFrom(est, obs, nil)
	}

	return scores, nil
}

// column copies column j of m.
func column(m matrix.Matrix, j int) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.RawCol(j)
	}
	out := make([]float64, m.Rows())
	var err error
	for i := range out {
		if out[i], err = m.At(i, j); err != nil {
			return nil, err
		}
	}

	return out, nil
}
