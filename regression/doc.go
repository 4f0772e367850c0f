// Package regression fits multivariate linear models by ordinary least squares.
//
// Given N observations with P features and Q targets, Fit solves the normal
// equations
//
//	B = (XᵗX)⁻¹ XᵗY
//
// where X is the N×(P+1) design matrix whose first column is all ones (the
// intercept). Predict applies B to new design rows. Model wraps both steps,
// keeps the intercept policy in one place and reports per-target R².
//
// All computation goes through the matrix package: Transpose, Mul and the
// Gauss-Jordan Inverse. A rank-deficient XᵗX surfaces as matrix.ErrSingular;
// incompatible shapes surface as matrix.ErrDimensionMismatch.
//
// Usage:
//
//	m, err := regression.Train(features, targets)
//	if err != nil { ... }
//	pred, err := m.Predict(newFeatures)
package regression
