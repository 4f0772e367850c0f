// SPDX-License-Identifier: MIT
package regression_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvlearn/matrix"
	"github.com/katalvlaran/lvlearn/regression"
)

const tol = 1e-9

func dense(t *testing.T, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

func randDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = rng.Float64()*10 - 5
	}

	return dense(t, r, c, vals...)
}

func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func requireClose(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, tol, tol)
	require.NoError(t, err)
	require.True(t, ok, "got:\n%v\nwant:\n%v", got, want)
}

func TestDesignMatrix_PrependsOnes(t *testing.T) {
	x, err := regression.DesignMatrix(dense(t, 2, 2, 3, 4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, 3, x.Cols())
	assert.Equal(t, "[1, 3, 4]\n[1, 5, 6]\n", x.String())

	_, err = regression.DesignMatrix(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFit_LineThroughOrigin(t *testing.T) {
	// y = 2x observed at x = 1, 2, 3.
	x, err := regression.DesignMatrix(dense(t, 3, 1, 1, 2, 3))
	require.NoError(t, err)
	y := dense(t, 3, 1, 2, 4, 6)

	b, err := regression.Fit(x, y)
	require.NoError(t, err)
	require.Equal(t, 2, b.Rows())
	require.Equal(t, 1, b.Cols())
	assert.InDelta(t, 0.0, at(t, b, 0, 0), tol, "intercept")
	assert.InDelta(t, 2.0, at(t, b, 1, 0), tol, "slope")

	q, err := regression.DesignMatrix(dense(t, 1, 1, 4))
	require.NoError(t, err)
	pred, err := regression.Predict(q, b)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, at(t, pred, 0, 0), tol)
}

func TestFit_RecoversNoiselessCoefficients(t *testing.T) {
	const n, p, q = 12, 3, 2
	features := randDense(t, n, p, 7)
	x, err := regression.DesignMatrix(features)
	require.NoError(t, err)

	bTrue := dense(t, p+1, q,
		1.5, -2,
		0.5, 3,
		-1, 0.25,
		2, 0,
	)
	y, err := matrix.Mul(x, bTrue)
	require.NoError(t, err)

	b, err := regression.Fit(x, y)
	require.NoError(t, err)
	requireClose(t, bTrue, b)
}

func TestFit_MatchesGonumSimpleRegression(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	xs := make([]float64, 50)
	ys := make([]float64, 50)
	for i := range xs {
		xs[i] = float64(i) / 5
		ys[i] = 1 + 3*xs[i] + rng.NormFloat64()*0.1
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	m, err := regression.Train(dense(t, 50, 1, xs...), dense(t, 50, 1, ys...))
	require.NoError(t, err)
	b, err := m.Coefficients()
	require.NoError(t, err)
	assert.InDelta(t, alpha, at(t, b, 0, 0), 1e-8)
	assert.InDelta(t, beta, at(t, b, 1, 0), 1e-8)
}

func TestFit_Errors(t *testing.T) {
	x := dense(t, 3, 2, 1, 1, 1, 2, 1, 3)

	_, err := regression.Fit(x, dense(t, 2, 1, 1, 2))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Duplicate feature column → XᵗX is singular.
	collinear := dense(t, 3, 3, 1, 1, 1, 1, 2, 2, 1, 3, 3)
	_, err = regression.Fit(collinear, dense(t, 3, 1, 1, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrSingular)

	// Fewer observations than coefficients.
	_, err = regression.Fit(dense(t, 1, 2, 1, 2), dense(t, 1, 1, 3))
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = regression.Fit(x, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestPredict_DimensionMismatch(t *testing.T) {
	b := dense(t, 2, 1, 0, 2)
	_, err := regression.Predict(dense(t, 1, 3, 1, 4, 5), b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Equal(t, 1, strings.Count(err.Error(), "Predict:"), err.Error())
}

func TestModel_TrainPredictScore(t *testing.T) {
	features := randDense(t, 20, 2, 21)
	x, err := regression.DesignMatrix(features)
	require.NoError(t, err)
	y, err := matrix.Mul(x, dense(t, 3, 1, 4, -1, 0.5))
	require.NoError(t, err)

	m, err := regression.Train(features, y)
	require.NoError(t, err)
	assert.True(t, m.HasIntercept())
	assert.Equal(t, 2, m.Features())
	assert.Equal(t, 1, m.Targets())

	scores, err := m.Score(features, y)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.InDelta(t, 1.0, scores[0], tol)

	res, err := m.Residuals(features, y)
	require.NoError(t, err)
	zeros, err := matrix.ZerosLike(res)
	require.NoError(t, err)
	ok, err := matrix.AllClose(res, zeros, 0, 1e-8)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = m.Predict(dense(t, 1, 3, 1, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.NotContains(t, err.Error(), "Predict: Predict:")
}

func TestModel_WithoutIntercept(t *testing.T) {
	features := dense(t, 3, 1, 1, 2, 3)
	m, err := regression.Train(features, dense(t, 3, 1, 3, 5, 7), regression.WithoutIntercept())
	require.NoError(t, err)
	assert.False(t, m.HasIntercept())

	b, err := m.Coefficients()
	require.NoError(t, err)
	require.Equal(t, 1, b.Rows())
	// argmin Σ(y - kx)² = Σxy / Σx² = 34/14.
	assert.InDelta(t, 34.0/14.0, at(t, b, 0, 0), tol)
}

func TestModel_ConstantTargetHasNoFiniteScore(t *testing.T) {
	features := dense(t, 3, 1, 1, 2, 3)
	y := dense(t, 3, 1, 5, 5, 5)
	m, err := regression.Train(features, y)
	require.NoError(t, err)
	scores, err := m.Score(features, y)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(scores[0]) || math.IsInf(scores[0], -1), "score %v", scores[0])
}

func TestModel_NotFitted(t *testing.T) {
	var m regression.Model
	_, err := m.Predict(dense(t, 1, 1, 1))
	assert.ErrorIs(t, err, regression.ErrNotFitted)

	var nilModel *regression.Model
	_, err = nilModel.Coefficients()
	assert.ErrorIs(t, err, regression.ErrNotFitted)
	assert.Equal(t, 0, nilModel.Features())
}
