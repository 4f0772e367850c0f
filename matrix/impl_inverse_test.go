// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlearn/matrix"
)

func TestInverse_Known2x2(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{4, 7, 2, 6})
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	CompareClose(t, NewFilledDense(t, 2, 2, []float64{0.6, -0.7, -0.2, 0.4}), inv)
}

func TestInverse_NeedsPivoting(t *testing.T) {
	// A zero in the leading position fails without row swaps.
	m := NewFilledDense(t, 3, 3, []float64{
		0, 1, 0,
		1, 0, 0,
		0, 0, 2,
	})
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	CompareClose(t, NewFilledDense(t, 3, 3, []float64{
		0, 1, 0,
		1, 0, 0,
		0, 0, 0.5,
	}), inv)
}

func TestInverse_Identity(t *testing.T) {
	inv, err := matrix.Inverse(IdentityDense(t, 4))
	require.NoError(t, err)
	CompareExact(t, toRows(t, IdentityDense(t, 4)), inv)
}

func TestInverse_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8} {
		m := RandFilledDense(t, n, n, int64(100+n))

		inv, err := matrix.Inverse(m)
		require.NoError(t, err, "n=%d", n)

		prod, err := matrix.Mul(m, inv)
		require.NoError(t, err)
		CompareClose(t, IdentityDense(t, n), prod)

		back, err := matrix.Inverse(inv)
		require.NoError(t, err)
		CompareClose(t, m, back)
	}
}

func TestInverse_MatchesGonum(t *testing.T) {
	const n = 6
	m := RandFilledDense(t, n, n, 42)
	rows := toRows(t, m)
	flat := make([]float64, 0, n*n)
	for _, r := range rows {
		flat = append(flat, r...)
	}

	var want mat.Dense
	require.NoError(t, want.Inverse(mat.NewDense(n, n, flat)))

	got, err := matrix.Inverse(m)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		assert.True(t, floats.EqualApprox(mat.Row(nil, i, &want), toRows(t, got)[i], 1e-9), "row %d", i)
	}
}

func TestInverse_FallbackMatchesDense(t *testing.T) {
	m := RandFilledDense(t, 4, 4, 7)
	fast, err := matrix.Inverse(m)
	require.NoError(t, err)
	slow, err := matrix.Inverse(hide{m})
	require.NoError(t, err)
	CompareExact(t, toRows(t, fast), slow)
}

func TestInverse_DoesNotMutateInput(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{0, 2, 3, 4})
	_, err := matrix.Inverse(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 2}, {3, 4}}, m)
}

func TestInverse_Singular(t *testing.T) {
	cases := map[string][]float64{
		"zero row":       {1, 2, 0, 0},
		"dependent rows": {1, 2, 2, 4},
		"zero column":    {0, 1, 0, 3},
		"all zero":       {0, 0, 0, 0},
	}
	for name, vals := range cases {
		t.Run(name, func(t *testing.T) {
			inv, err := matrix.Inverse(NewFilledDense(t, 2, 2, vals))
			assert.Nil(t, inv)
			assert.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestInverse_ShapeErrors(t *testing.T) {
	_, err := matrix.Inverse(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Inverse(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Inverse(&matrix.Dense{})
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestPivotRow_TieKeepsEarliestRow(t *testing.T) {
	cases := []struct {
		name string
		data []float64 // 3×3 row-major
		k    int
		want int
	}{
		{"equal magnitude opposite sign", []float64{1, 0, 0, -1, 0, 0, 0.5, 0, 0}, 0, 0},
		{"three-way tie", []float64{-2, 0, 0, 2, 0, 0, -2, 0, 0}, 0, 0},
		{"strictly larger later", []float64{2, 0, 0, -3, 0, 0, 3, 0, 0}, 0, 1},
		{"search starts at k", []float64{9, 0, 0, 0, 4, 0, 0, -4, 0}, 1, 1},
		{"zero column", []float64{0, 0, 0, 0, 0, 0, 0, 0, 0}, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matrix.ExportedPivotRow(tc.data, 3, tc.k))
		})
	}
}
