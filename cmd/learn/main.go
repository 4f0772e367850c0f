// SPDX-License-Identifier: MIT

// Command learn fits an ordinary-least-squares model to a training table and
// prints predictions for its query rows.
//
// Usage:
//
//	learn [-precision n] [-quiet] [file]
//
// file defaults to learn.dat and may be ".zst", ".s2" or ".lz4" compressed.
// Predictions go to stdout, one row per query; the training R² of each output
// is logged to stderr unless -quiet is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/lvlearn/dataset"
	"github.com/katalvlaran/lvlearn/matrix"
	"github.com/katalvlaran/lvlearn/regression"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("learn: ")

	precision := flag.Int("precision", matrix.DefaultPrintPrecision, "significant digits per predicted value")
	quiet := flag.Bool("quiet", false, "do not log training scores")
	flag.Parse()

	path := dataset.DefaultPath
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	if err := run(os.Stdout, path, *precision, *quiet); err != nil {
		log.Fatalf("%s: %v", path, err)
	}
}

func run(out io.Writer, path string, precision int, quiet bool) error {
	tbl, err := dataset.ReadFile(path)
	if err != nil {
		return err
	}
	if !quiet {
		log.Printf("%d rows, %d inputs, %d outputs, %d queries (%s, table %016x)",
			tbl.Entries, tbl.Inputs, tbl.Outputs, tbl.QueryCount, dataset.CompressionFor(path), tbl.Fingerprint())
	}

	x, err := tbl.TrainingInputs()
	if err != nil {
		return err
	}
	y, err := tbl.TrainingOutputs()
	if err != nil {
		return err
	}
	model, err := regression.Train(x, y)
	if err != nil {
		return err
	}

	if !quiet {
		scores, err := model.Score(x, y)
		if err != nil {
			return err
		}
		for q, s := range scores {
			log.Printf("output %d: R² = %s", q, matrix.FormatValue(s))
		}
	}

	queries, err := tbl.QueryInputs()
	if err != nil || queries == nil {
		return err
	}
	pred, err := model.Predict(queries)
	if err != nil {
		return err
	}
	if err = matrix.FprintPrecision(out, pred, precision); err != nil {
		return fmt.Errorf("write predictions: %w", err)
	}

	return nil
}
