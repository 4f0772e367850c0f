// SPDX-License-Identifier: MIT
// Package dataset - Table: the parsed training/prediction file.

package dataset

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvlearn/matrix"
)

// DefaultPath is the table read by the learn tool when no file is named.
const DefaultPath = "learn.dat"

// Table holds one parsed file. Buffers are row-major and never alias.
type Table struct {
	Entries    int // training rows N
	Inputs     int // features per row P
	Outputs    int // targets per row Q
	QueryCount int // prediction rows M, may be 0

	TrainX  []float64 // N×P
	TrainY  []float64 // N×Q
	Queries []float64 // M×P
}

// tokens walks whitespace-separated words and tracks their ordinal for errors.
type tokens struct {
	sc *bufio.Scanner
	n  int
}

func (t *tokens) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}

		return "", malformedf("token %d (%s): unexpected end of input", t.n+1, what)
	}
	t.n++

	return t.sc.Text(), nil
}

func (t *tokens) count(what string, min int) (int, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, malformedf("token %d (%s): %q is not an integer", t.n, what, s)
	}
	if v < min {
		return 0, malformedf("token %d (%s): %d < %d", t.n, what, v, min)
	}

	return v, nil
}

// appendValues reads n finite numbers and appends them to dst. Buffers grow
// only as tokens arrive, so a header with huge counts fails on the first
// missing token instead of allocating up front.
func (t *tokens) appendValues(dst []float64, n int, what string) ([]float64, error) {
	for i := 0; i < n; i++ {
		s, err := t.next(what)
		if err != nil {
			return dst, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return dst, malformedf("token %d (%s): %q is not a finite number", t.n, what, s)
		}
		dst = append(dst, v)
	}

	return dst, nil
}

// Parse reads a complete table from r.
//
// Errors:
//   - ErrMalformedInput on a short read, a non-numeric token, counts below
//     their minimum (entries, inputs and outputs ≥ 1; predictions ≥ 0),
//     counts whose cell total does not fit an int, or tokens after the last
//     query row.
//   - Any read error from r, unwrapped beneath the operation tag.
//
// Complexity: O(N*(P+Q) + M*P).
func Parse(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	tk := &tokens{sc: sc}

	var (
		t   Table
		err error
	)
	if t.Entries, err = tk.count("entry count", 1); err != nil {
		return nil, datasetErrorf(opParse, err)
	}
	if t.Inputs, err = tk.count("input count", 1); err != nil {
		return nil, datasetErrorf(opParse, err)
	}
	if t.Outputs, err = tk.count("output count", 1); err != nil {
		return nil, datasetErrorf(opParse, err)
	}
	if t.Entries > math.MaxInt/(t.Inputs+t.Outputs) {
		return nil, datasetErrorf(opParse, malformedf("%d rows of %d values overflow", t.Entries, t.Inputs+t.Outputs))
	}

	for i := 0; i < t.Entries; i++ {
		if t.TrainX, err = tk.appendValues(t.TrainX, t.Inputs, "training input"); err != nil {
			return nil, datasetErrorf(opParse, err)
		}
		if t.TrainY, err = tk.appendValues(t.TrainY, t.Outputs, "training output"); err != nil {
			return nil, datasetErrorf(opParse, err)
		}
	}

	if t.QueryCount, err = tk.count("prediction count", 0); err != nil {
		return nil, datasetErrorf(opParse, err)
	}
	if t.QueryCount > math.MaxInt/t.Inputs {
		return nil, datasetErrorf(opParse, malformedf("%d rows of %d values overflow", t.QueryCount, t.Inputs))
	}
	for i := 0; i < t.QueryCount; i++ {
		if t.Queries, err = tk.appendValues(t.Queries, t.Inputs, "prediction input"); err != nil {
			return nil, datasetErrorf(opParse, err)
		}
	}

	if sc.Scan() {
		return nil, datasetErrorf(opParse, malformedf("token %d: trailing %q", tk.n+1, sc.Text()))
	}
	if err = sc.Err(); err != nil {
		return nil, datasetErrorf(opParse, err)
	}

	return &t, nil
}

// TrainingInputs returns the N×P feature matrix.
func (t *Table) TrainingInputs() (*matrix.Dense, error) {
	return matrix.NewDenseFrom(t.Entries, t.Inputs, t.TrainX)
}

// TrainingOutputs returns the N×Q target matrix.
func (t *Table) TrainingOutputs() (*matrix.Dense, error) {
	return matrix.NewDenseFrom(t.Entries, t.Outputs, t.TrainY)
}

// QueryInputs returns the M×P prediction inputs, or (nil, nil) when M is 0.
func (t *Table) QueryInputs() (*matrix.Dense, error) {
	if t.QueryCount == 0 {
		return nil, nil
	}

	return matrix.NewDenseFrom(t.QueryCount, t.Inputs, t.Queries)
}

// Fingerprint is a 64-bit xxHash of the table shape and every value, in file
// order. Tables that parse to the same numbers share a fingerprint regardless
// of whitespace, number spelling or compression.
func (t *Table) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		_, _ = d.Write(buf[:])
	}
	for _, n := range [...]int{t.Entries, t.Inputs, t.Outputs, t.QueryCount} {
		put(uint64(n))
	}
	for _, vals := range [...][]float64{t.TrainX, t.TrainY, t.Queries} {
		for _, v := range vals {
			put(math.Float64bits(v))
		}
	}

	return d.Sum64()
}
