// SPDX-License-Identifier: MIT

// Package dataset reads regression tables and writes prediction grids.
//
// A table is plain whitespace-delimited text:
//
//	<entry_count> <input_count> <output_count>
//	<inputs...> <outputs...>        repeated entry_count times
//	<prediction_count>
//	<inputs...>                     repeated prediction_count times
//
// Parse keeps training inputs, training outputs and query inputs in three
// independent buffers, so nothing is overwritten between the fit and the
// prediction phase. The intercept column is never stored in the file; it is
// added by regression.DesignMatrix.
//
// Open and Create pick a stream codec from the file extension:
// ".zst" (Zstandard), ".lz4" (LZ4 frame) or plain text otherwise.
package dataset
