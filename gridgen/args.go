// SPDX-License-Identifier: MIT
// Package gridgen - command-line parsing for the generator tool.

package gridgen

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

// minPositionals is output_file, input_count, range_min, range_max,
// range_step and at least one function index.
const minPositionals = 6

// Usage is printed by the generator tool on a usage error.
const Usage = `usage: learngen [-header] output_file input_count range_min range_max range_step function_index...

Writes one row per point of the grid [range_min, range_max] (inclusive, step
range_step) in input_count dimensions: the inputs followed by one output per
function. A ".zst", ".s2" or ".lz4" output_file is compressed.

Functions:
  0 identity      x0
  1 increment     x0 + 1
  2 double        2*x0
  3 square        x0*x0
  4 sum2          x0 + x1
  5 product2      x0*x1
  6 sum3          x0 + x1 + x2
  7 weightedsum5  x0 + 2*x1 + 3*x2 + 4*x3 + 5*x4

Flags:
  -header  also write the "<rows> <inputs> <outputs>" header and a trailing 0,
           producing a file the learn tool reads directly
`

// Args is a parsed generator command line.
type Args struct {
	Output string
	Config
}

// ParseArgs parses the generator command line (without the program name).
//
// Errors:
//   - ErrUsage for unknown flags, fewer than six positionals or unparsable
//     numbers; ErrUnknownFunction for an index outside the table.
func ParseArgs(args []string) (Args, error) {
	fs := flag.NewFlagSet("learngen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	header := fs.Bool("header", false, "write a table header and trailing prediction count")
	if err := fs.Parse(args); err != nil {
		return Args{}, gridgenErrorf(opParseArgs, fmt.Errorf("%v: %w", err, ErrUsage))
	}

	pos := fs.Args()
	if len(pos) < minPositionals {
		return Args{}, gridgenErrorf(opParseArgs,
			fmt.Errorf("insufficient argument count (%d < %d): %w", len(pos), minPositionals, ErrUsage))
	}

	a := Args{Output: pos[0]}
	a.Header = *header

	var err error
	if a.Inputs, err = strconv.Atoi(pos[1]); err != nil {
		return Args{}, usagef("input_count %q is not an integer", pos[1])
	}
	bounds := [3]*float64{&a.Range.Min, &a.Range.Max, &a.Range.Step}
	names := [3]string{"range_min", "range_max", "range_step"}
	for i, dst := range bounds {
		if *dst, err = strconv.ParseFloat(pos[2+i], 64); err != nil {
			return Args{}, usagef("%s %q is not a number", names[i], pos[2+i])
		}
	}

	a.Functions = make([]Function, 0, len(pos)-5)
	for _, s := range pos[5:] {
		idx, err := strconv.Atoi(s)
		if err != nil {
			return Args{}, usagef("function_index %q is not an integer", s)
		}
		f, err := ParseFunction(idx)
		if err != nil {
			return Args{}, gridgenErrorf(opParseArgs, err)
		}
		a.Functions = append(a.Functions, f)
	}

	return a, nil
}

func usagef(format string, args ...interface{}) error {
	return gridgenErrorf(opParseArgs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrUsage))
}
