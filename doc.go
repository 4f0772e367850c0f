// Package lvlearn fits linear models by ordinary least squares on a small,
// dependency-light dense matrix engine.
//
// 🚀 What is lvlearn?
//
//	A pure-Go toolkit that brings together:
//		• Dense matrices: Transpose, Mul and Gauss-Jordan Inverse with partial pivoting
//		• Regression: B = (XᵗX)⁻¹XᵗY, prediction, residuals and R² per output
//		• Data files: a whitespace table format, optionally zstd / s2 / lz4 compressed
//		• Synthetic data: uniform input grids evaluated on eight analytic functions
//
// ✨ Why choose lvlearn?
//
//   - Explicit errors – dimension mismatch, singular systems and malformed
//     input are sentinel errors, never silent garbage
//   - Deterministic – no global state, no hidden goroutines
//   - Small surface – a handful of functions per package
//
// Packages:
//
//	matrix/     — Dense type, Transpose/Mul/Inverse, validators, plain-text output
//	regression/ — DesignMatrix, Fit, Predict and the Model wrapper
//	dataset/    — table parser, row writer, compressed file streams
//	gridgen/    — function table, range enumeration, row generation, CLI args
//	cmd/learn, cmd/learngen — the two command-line tools
//
// Quick example (y = 2x):
//
//	$ printf '3 1 1\n1 2\n2 4\n3 6\n1\n4\n' > learn.dat
//	$ learn -quiet
//	8
//
//	go get github.com/katalvlaran/lvlearn
package lvlearn
