// SPDX-License-Identifier: MIT
// Package gridgen: sentinel errors.

package gridgen

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFunction is returned for a function index outside the table.
	ErrUnknownFunction = errors.New("gridgen: unknown function index")

	// ErrArity is returned when a function needs more inputs than supplied.
	ErrArity = errors.New("gridgen: not enough inputs for function")

	// ErrBadRange is returned for a non-positive step or non-finite bounds.
	ErrBadRange = errors.New("gridgen: invalid range")

	// ErrBadInputs is returned when the input count is below 1.
	ErrBadInputs = errors.New("gridgen: input count must be at least 1")

	// ErrUsage is returned for missing or unparsable command-line arguments.
	ErrUsage = errors.New("gridgen: usage")
)

// Operation tags for error wrapping.
const (
	opEval      = "Eval"
	opEnumerate = "Enumerate"
	opGenerate  = "Generate"
	opParseArgs = "ParseArgs"
)

// gridgenErrorf wraps err with an operation tag. Use only when err != nil.
func gridgenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
