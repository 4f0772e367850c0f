// SPDX-License-Identifier: MIT
// Package matrix — plain-text grid output.
//
// Format:
//   - One line per row, values separated by a single space, no header.
//   - Values use the shortest %g form at DefaultPrintPrecision significant digits,
//     so 7.999999999999998 prints as 8 and 0.1 stays 0.1.

package matrix

import (
	"bufio"
	"io"
	"strconv"
)

// DefaultPrintPrecision is the number of significant digits used by Fprint.
const DefaultPrintPrecision = 6

// FormatValue renders v with DefaultPrintPrecision significant digits.
func FormatValue(v float64) string {
	return FormatValuePrecision(v, DefaultPrintPrecision)
}

// FormatValuePrecision renders v with prec significant digits ('g' verb).
// prec < 0 selects the shortest representation that round-trips.
func FormatValuePrecision(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'g', prec, 64)
	if s == "-0" {
		return "0"
	}

	return s
}

// Fprint writes m as a whitespace-separated grid to w.
// Complexity: O(r*c).
func Fprint(w io.Writer, m Matrix) error {
	return FprintPrecision(w, m, DefaultPrintPrecision)
}

// FprintPrecision is Fprint with an explicit number of significant digits.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, or the first write error from w.
func FprintPrecision(w io.Writer, m Matrix, prec int) error {
	if err := ValidateOperand(m); err != nil {
		return matrixErrorf(opFprint, err)
	}

	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opFprint, err)
			}
			if j > 0 {
				_ = bw.WriteByte(' ')
			}
			_, _ = bw.WriteString(FormatValuePrecision(v, prec))
		}
		_ = bw.WriteByte('\n')
	}
	if err = bw.Flush(); err != nil {
		return matrixErrorf(opFprint, err)
	}

	return nil
}
