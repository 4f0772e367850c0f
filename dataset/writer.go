// SPDX-License-Identifier: MIT
// Package dataset - RowWriter: buffered space-separated numeric rows.

package dataset

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/lvlearn/matrix"
)

// RowWriter emits one line per row with values separated by a single space.
// The first write error sticks; later calls are no-ops that return it.
type RowWriter struct {
	bw  *bufio.Writer
	err error
}

// NewRowWriter wraps w in a buffered RowWriter. Call Flush when done.
func NewRowWriter(w io.Writer) *RowWriter {
	return &RowWriter{bw: bufio.NewWriter(w)}
}

// WriteRow writes vals formatted with matrix.FormatValue.
func (rw *RowWriter) WriteRow(vals ...float64) error {
	for i, v := range vals {
		rw.sep(i)
		rw.put(matrix.FormatValue(v))
	}

	return rw.end()
}

// WriteCounts writes integer header fields such as "<rows> <inputs> <outputs>".
func (rw *RowWriter) WriteCounts(vals ...int) error {
	for i, v := range vals {
		rw.sep(i)
		rw.put(strconv.Itoa(v))
	}

	return rw.end()
}

// Flush writes any buffered data to the underlying writer.
func (rw *RowWriter) Flush() error {
	if rw.err != nil {
		return rw.err
	}
	rw.err = rw.bw.Flush()

	return rw.err
}

func (rw *RowWriter) sep(i int) {
	if i > 0 && rw.err == nil {
		rw.err = rw.bw.WriteByte(' ')
	}
}

func (rw *RowWriter) put(s string) {
	if rw.err == nil {
		_, rw.err = rw.bw.WriteString(s)
	}
}

func (rw *RowWriter) end() error {
	if rw.err == nil {
		rw.err = rw.bw.WriteByte('\n')
	}

	return rw.err
}

// WriteMatrix writes m as a headerless grid, one row per line.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrBadShape, or the first write error.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateOperand(m); err != nil {
		return datasetErrorf(opWrite, err)
	}

	rw := NewRowWriter(w)
	row := make([]float64, m.Cols())
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := range row {
			if row[j], err = m.At(i, j); err != nil {
				return datasetErrorf(opWrite, err)
			}
		}
		if err = rw.WriteRow(row...); err != nil {
			return datasetErrorf(opWrite, err)
		}
	}
	if err = rw.Flush(); err != nil {
		return datasetErrorf(opWrite, err)
	}

	return nil
}

// WriteTable serializes t in the format Parse reads. Values are rounded to
// matrix.DefaultPrintPrecision significant digits.
func WriteTable(w io.Writer, t *Table) error {
	rw := NewRowWriter(w)
	_ = rw.WriteCounts(t.Entries, t.Inputs, t.Outputs)
	for i := 0; i < t.Entries; i++ {
		row := make([]float64, 0, t.Inputs+t.Outputs)
		row = append(row, t.TrainX[i*t.Inputs:(i+1)*t.Inputs]...)
		row = append(row, t.TrainY[i*t.Outputs:(i+1)*t.Outputs]...)
		_ = rw.WriteRow(row...)
	}
	_ = rw.WriteCounts(t.QueryCount)
	for i := 0; i < t.QueryCount; i++ {
		_ = rw.WriteRow(t.Queries[i*t.Inputs : (i+1)*t.Inputs]...)
	}
	if err := rw.Flush(); err != nil {
		return datasetErrorf(opWriteTable, err)
	}

	return nil
}
