// SPDX-License-Identifier: MIT
// Package gridgen - the fixed function table.

package gridgen

import "fmt"

// Function selects one of the built-in analytic functions by index.
type Function int

const (
	Identity     Function = iota // x0
	Increment                    // x0 + 1
	Double                       // 2·x0
	Square                       // x0²
	Sum2                         // x0 + x1
	Product2                     // x0·x1
	Sum3                         // x0 + x1 + x2
	WeightedSum5                 // x0 + 2x1 + 3x2 + 4x3 + 5x4
)

type functionSpec struct {
	name  string
	arity int
	eval  func(x []float64) float64
}

var functionTable = [...]functionSpec{
	Identity:  {"identity", 1, func(x []float64) float64 { return x[0] }},
	Increment: {"increment", 1, func(x []float64) float64 { return x[0] + 1 }},
	Double:    {"double", 1, func(x []float64) float64 { return 2 * x[0] }},
	Square:    {"square", 1, func(x []float64) float64 { return x[0] * x[0] }},
	Sum2:      {"sum2", 2, func(x []float64) float64 { return x[0] + x[1] }},
	Product2:  {"product2", 2, func(x []float64) float64 { return x[0] * x[1] }},
	Sum3:      {"sum3", 3, func(x []float64) float64 { return x[0] + x[1] + x[2] }},
	WeightedSum5: {"weightedsum5", 5, func(x []float64) float64 {
		return x[0] + 2*x[1] + 3*x[2] + 4*x[3] + 5*x[4]
	}},
}

// NumFunctions is the size of the function table.
const NumFunctions = len(functionTable)

// ParseFunction validates an integer index.
func ParseFunction(idx int) (Function, error) {
	f := Function(idx)
	if !f.Valid() {
		return 0, fmt.Errorf("index %d not in 0..%d: %w", idx, NumFunctions-1, ErrUnknownFunction)
	}

	return f, nil
}

// Valid reports whether f names a table entry.
func (f Function) Valid() bool { return f >= 0 && int(f) < NumFunctions }

// Arity is the number of leading inputs f reads, or 0 for an invalid f.
func (f Function) Arity() int {
	if !f.Valid() {
		return 0
	}

	return functionTable[f].arity
}

func (f Function) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Function(%d)", int(f))
	}

	return functionTable[f].name
}

// Eval applies f to inputs. Extra inputs beyond Arity are ignored.
//
// Errors:
//   - ErrUnknownFunction, ErrArity when len(inputs) < f.Arity().
func (f Function) Eval(inputs []float64) (float64, error) {
	if !f.Valid() {
		return 0, gridgenErrorf(opEval, fmt.Errorf("%d: %w", int(f), ErrUnknownFunction))
	}
	spec := functionTable[f]
	if len(inputs) < spec.arity {
		return 0, gridgenErrorf(opEval,
			fmt.Errorf("%s needs %d inputs, got %d: %w", spec.name, spec.arity, len(inputs), ErrArity))
	}

	return spec.eval(inputs), nil
}
