package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ortemap/ortemap/internal/config"
	"github.com/ortemap/ortemap/internal/dataset"
	"github.com/ortemap/ortemap/internal/render"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Input  string `short:"i" long:"in" description:"Input GeoJSON file path. Reads from stdin if empty"`
	Output string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	Format string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
}

// Report is the derived view of a dataset: what the map would show.
type Report struct {
	Summary render.Summary       `json:"summary" yaml:"summary"`
	Legend  []render.LegendEntry `json:"legend" yaml:"legend"`
	Places  int                  `json:"places" yaml:"places"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Read Input
	var inputData []byte
	var err error

	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
			os.Exit(1)
		}
	} else {
		inputData, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	records, err := dataset.Decode(bytes.NewReader(inputData))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding dataset: %v\n", err)
		os.Exit(1)
	}

	colors := render.NewColorAssigner(config.DefaultPalette)
	counts := render.Aggregate(records)

	report := Report{
		Summary: counts.Summarize(),
		Legend:  counts.Legend(colors),
		Places:  len(records),
	}

	// marshal
	var outputData []byte
	if opts.Format == "yaml" {
		outputData, err = yaml.Marshal(report)
	} else {
		outputData, err = json.MarshalIndent(report, "", "  ")
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling report: %v\n", err)
		os.Exit(1)
	}

	if opts.Output != "" {
		err = os.WriteFile(opts.Output, outputData, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Inspected %d places in %d regions\n", report.Places, report.Summary.TotalRegions)
	} else {
		fmt.Println(string(outputData))
	}
}
