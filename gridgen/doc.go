// SPDX-License-Identifier: MIT

// Package gridgen produces synthetic training data for the regression tool.
//
// Every point of a uniform Cartesian grid is visited (each coordinate runs
// over Min, Min+Step, ... ≤ Max) and one or more fixed analytic functions are
// evaluated on it. Each grid point becomes one row: the inputs followed by the
// function outputs.
//
// Grid values are computed as Min + i*Step from an integer index, so long
// ranges do not drift the way repeated addition does. The number of points per
// axis is floor((Max-Min)/Step + 1e-9) + 1; the small slack keeps an upper
// bound such as 0.3 reachable from 0 in steps of 0.1.
//
// Functions are a closed enumeration (see Function). Each declares the number
// of inputs it reads, and Generate rejects a request whose input count is
// smaller than any selected function's arity before it writes a single byte.
//
// With Config.Header set, the output is a complete table for dataset.Parse:
// a "<rows> <inputs> <outputs>" header, the rows, and a trailing prediction
// count of 0.
package gridgen
