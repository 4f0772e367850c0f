// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (white-box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose unexported helpers to matrix_test only, without widening the
//     production API. The file is a _test.go file, so it never ships.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with Options. If a field is added,
//     extend snapshotOf (TestDefaultOptions_Documented catches drift).

var (
	// ExportedSwapRows exposes the row exchange used by Inverse.
	ExportedSwapRows = swapRows
	// ExportedPivotRow exposes the partial-pivot search used by Inverse.
	ExportedPivotRow = pivotRow
	// ExportedAsDense exposes the *Dense coercion used by the kernels.
	ExportedAsDense = asDense
)

// OptionsSnapshot is a read-only copy of the effective Options.
type OptionsSnapshot struct {
	ValidateNaNInf bool
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf}
}

// NewOptionsSnapshot_TestOnly returns the documented defaults.
func NewOptionsSnapshot_TestOnly() OptionsSnapshot { return snapshotOf(defaultOptions()) }

// GatherOptionsSnapshot_TestOnly applies opts on top of the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}
