// SPDX-License-Identifier: MIT

// Command learngen writes synthetic training rows for learn.
//
//	learngen [-header] output_file input_count range_min range_max range_step function_index...
//
// Run without arguments for the function list.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/lvlearn/dataset"
	"github.com/katalvlaran/lvlearn/gridgen"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("learngen: ")

	args, err := gridgen.ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, gridgen.ErrUsage) {
			fmt.Fprintf(os.Stderr, "%v\n\n%s", err, gridgen.Usage)
			os.Exit(1)
		}
		log.Fatal(err)
	}

	if err = run(args); err != nil {
		log.Fatalf("%s: %v", args.Output, err)
	}
}

func run(args gridgen.Args) error {
	// Validate first so a bad request does not leave an empty file behind.
	if err := args.Config.Validate(); err != nil {
		return err
	}

	w, err := dataset.Create(args.Output)
	if err != nil {
		return err
	}
	if err = gridgen.Generate(w, args.Config); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}
