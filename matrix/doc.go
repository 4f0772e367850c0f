// Package matrix is the dense linear-algebra engine behind lvlearn.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 container with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Transpose, Mul, Add and Sub as pure kernels that never mutate operands.
//   - Inverse via Gauss-Jordan elimination with partial pivoting; a column
//     without a non-zero pivot yields ErrSingular.
//   - Fprint for a plain whitespace-separated grid, and AllClose for
//     tolerance comparisons.
//
// Errors are package sentinels wrapped with an operation tag, so callers
// branch with errors.Is(err, matrix.ErrDimensionMismatch) and friends.
//
// See the examples in this package for usage patterns.
package matrix
