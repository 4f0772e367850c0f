// SPDX-License-Identifier: MIT
// Package dataset: sentinel errors.

package dataset

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is returned when a stream does not parse as the declared table shape.
var ErrMalformedInput = errors.New("dataset: malformed input")

// Operation tags for error wrapping.
const (
	opParse      = "Parse"
	opWrite      = "WriteMatrix"
	opWriteTable = "WriteTable"
	opOpen       = "Open"
	opCreate     = "Create"
)

// datasetErrorf wraps err with an operation tag. Use only when err != nil.
func datasetErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// malformedf builds an ErrMalformedInput with a positional detail.
func malformedf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrMalformedInput)
}
