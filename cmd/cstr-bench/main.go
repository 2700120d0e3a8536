// Command cstr-bench measures string-operation latency over a corpus.
package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"strings"
	"time"

	"cstr-go/pkg/benchmark"
	"cstr-go/pkg/corpus"
	"cstr-go/pkg/log"
)

// Version information - will be set at build time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var (
	componentFlag     string
	iterationsFlag    int
	lineSizeFlag      int
	needleFlag        string
	corpusFlag        string
	outputFlag        string
	allComponentsFlag bool
	helpFlag          bool
)

func init() {
	flag.StringVar(&componentFlag, "component", "search", "Component to benchmark (search, split, join, slice, case, hash)")
	flag.IntVar(&iterationsFlag, "iterations", 1000, "Number of iterations to run")
	flag.IntVar(&lineSizeFlag, "linesize", 1024, "Synthetic line size in bytes when no corpus is given")
	flag.StringVar(&needleFlag, "needle", "the", "Substring used by the search component")
	flag.StringVar(&corpusFlag, "corpus", "", "Corpus file (plain or .zst); empty for synthetic input")
	flag.StringVar(&outputFlag, "output", "", "Output file for results (CSV format)")
	flag.BoolVar(&allComponentsFlag, "allcomponents", false, "Run benchmarks for all components")
	flag.BoolVar(&helpFlag, "help", false, "Show help")

	flag.Parse()

	if helpFlag {
		printUsage()
		os.Exit(0)
	}
}

func printUsage() {
	fmt.Printf("cstr-go Benchmark Tool %s (built %s)\n\n", Version, BuildTime)
	fmt.Println("Usage: cstr-bench [options]")
	fmt.Println("\nOptions:")
	flag.PrintDefaults()

	fmt.Println("\nExamples:")
	fmt.Println("  cstr-bench --component search --iterations 10000")
	fmt.Println("  cstr-bench --component split --corpus words.txt.zst")
	fmt.Println("  cstr-bench --allcomponents --output results.csv")
}

func parseComponent(compStr string) (benchmark.Component, error) {
	switch strings.ToLower(compStr) {
	case "search":
		return benchmark.ComponentSearch, nil
	case "split":
		return benchmark.ComponentSplit, nil
	case "join":
		return benchmark.ComponentJoin, nil
	case "slice":
		return benchmark.ComponentSlice, nil
	case "case":
		return benchmark.ComponentCase, nil
	case "hash":
		return benchmark.ComponentHash, nil
	default:
		return 0, fmt.Errorf("unknown component: %s", compStr)
	}
}

func main() {
	fmt.Printf("cstr-go Benchmark Tool %s (built %s)\n\n", Version, BuildTime)
	log.SetStd()

	opts := benchmark.DefaultOptions()
	opts.Iterations = iterationsFlag
	opts.LineSize = lineSizeFlag
	opts.Needle = needleFlag

	if corpusFlag != "" {
		lines, err := corpus.Load(corpusFlag)
		if err != nil {
			stdlog.Fatalf("Failed to load corpus: %v", err)
		}
		stdlog.Printf("Loaded %d corpus lines from %s", len(lines), corpusFlag)
		opts.Lines = lines
	}

	var results []*benchmark.Results

	if allComponentsFlag {
		stdlog.Println("Running benchmarks for all components...")
		all, err := benchmark.RunAll(opts)
		if err != nil {
			stdlog.Printf("Some benchmarks failed: %v", err)
		}
		results = append(results, all...)
		for _, r := range results {
			benchmark.PrintResults(r)
		}
	} else {
		component, err := parseComponent(componentFlag)
		if err != nil {
			stdlog.Fatalf("Invalid component: %v", err)
		}
		opts.Component = component

		stdlog.Printf("Running benchmark for %s...", component)
		startTime := time.Now()
		result, err := benchmark.Run(opts)
		if err != nil {
			stdlog.Fatalf("Benchmark failed: %v", err)
		}
		stdlog.Printf("Benchmark completed in %v", time.Since(startTime))

		benchmark.PrintResults(result)
		results = append(results, result)
	}

	if outputFlag != "" && len(results) > 0 {
		if err := benchmark.WriteCSV(outputFlag, results); err != nil {
			stdlog.Fatalf("Failed to save results: %v", err)
		}
		stdlog.Printf("Results saved to %s", outputFlag)
	}
}
