// SPDX-License-Identifier: MIT
// Package gridgen - row generation.

package gridgen

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvlearn/dataset"
)

// Config describes one generation run.
type Config struct {
	Inputs    int        // grid dimensionality
	Range     Range      // shared by every axis
	Functions []Function // one output column each, in order
	Header    bool       // emit a complete table (header + trailing 0)
}

// Validate checks every field before any output is produced.
//
// Errors:
//   - ErrBadInputs, ErrBadRange (also for an empty grid when Header is set,
//     since a table needs at least one row), ErrUnknownFunction, ErrUsage when
//     no function is selected, ErrArity when a function needs more than Inputs.
func (c Config) Validate() error {
	points, err := c.Range.Points(c.Inputs)
	if err != nil {
		return err
	}
	if c.Header && points == 0 {
		return fmt.Errorf("empty grid (max %v < min %v) cannot form a table: %w", c.Range.Max, c.Range.Min, ErrBadRange)
	}
	if len(c.Functions) == 0 {
		return fmt.Errorf("no function selected: %w", ErrUsage)
	}
	for _, f := range c.Functions {
		if !f.Valid() {
			return fmt.Errorf("%d: %w", int(f), ErrUnknownFunction)
		}
		if f.Arity() > c.Inputs {
			return fmt.Errorf("%s needs %d inputs, have %d: %w", f, f.Arity(), c.Inputs, ErrArity)
		}
	}

	return nil
}

// Generate writes one row per grid point to w: the inputs followed by one
// output per function. Nothing is written when cfg is invalid.
func Generate(w io.Writer, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return gridgenErrorf(opGenerate, err)
	}

	rw := dataset.NewRowWriter(w)
	if cfg.Header {
		points, _ := cfg.Range.Points(cfg.Inputs)
		if err := rw.WriteCounts(points, cfg.Inputs, len(cfg.Functions)); err != nil {
			return gridgenErrorf(opGenerate, err)
		}
	}

	row := make([]float64, cfg.Inputs+len(cfg.Functions))
	err := Enumerate(cfg.Inputs, cfg.Range, func(point []float64) error {
		copy(row, point)
		for k, f := range cfg.Functions {
			v, err := f.Eval(point)
			if err != nil {
				return err
			}
			row[cfg.Inputs+k] = v
		}

		return rw.WriteRow(row...)
	})
	if err != nil {
		return gridgenErrorf(opGenerate, err)
	}

	if cfg.Header {
		if err = rw.WriteCounts(0); err != nil {
			return gridgenErrorf(opGenerate, err)
		}
	}

	if err = rw.Flush(); err != nil {
		return gridgenErrorf(opGenerate, err)
	}

	return nil
}
