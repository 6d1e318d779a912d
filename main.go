package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"fasta_analyzer_go/benchmark"
	"fasta_analyzer_go/config"
	"fasta_analyzer_go/fasta_overview"
	"fasta_analyzer_go/kmer_analyzer"
	"fasta_analyzer_go/orf_finder"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`FASTA Analyzer - Custom Help Menu
Usage:
  fasta_analyzer <tool> [options]

Tools:
  fasta_overview	Record count, longest/shortest sequences, length statistics
  orf_finder		Longest/shortest open reading frames by frame or sequence
  kmer_analyzer		Most frequent k-mers and repeat occurrences

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information
  --config FILE		YAML settings file (kmer_size, reading_frame, workers, log_level)

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Logs run time and memory usage`,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("FASTA Analyzer - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tFASTA Analyzer:\t\t%s\n", config.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tFASTA Overview:\t\t%s\n", config.FASTA_Overview)
	fmt.Printf("\tORF Finder:\t\t%s\n", config.ORF_Finder)
	fmt.Printf("\tKmer Analyzer:\t\t%s\n", config.Kmer_Analyzer)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)
	fmt.Println("")
	os.Exit(0)
}

// Main controller
func main() {
	if len(os.Args) < 2 {
		printCustomHelp()
	}
	if len(os.Args) < 3 {
		if arg := os.Args[1]; arg == "-h" || arg == "-help" || arg == "--help" {
			printCustomHelp()
		}
	}
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" || arg == "--version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	configPath, toolArgs := config.SplitConfigFlag(os.Args[2:])

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" || arg == "--benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	settings, err := config.LoadSettings(configPath)
	if err != nil {
		log.Fatal("could not load settings", "err", err)
	}
	level, err := log.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatal("invalid log_level", "value", settings.LogLevel)
	}
	log.SetLevel(level)

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "fasta_overview":
			fasta_overview.Run(cleanedArgs)
		case "orf_finder":
			orf_finder.Run(cleanedArgs, settings)
		case "kmer_analyzer":
			kmer_analyzer.Run(cleanedArgs, settings)
		default:
			log.Fatal("unknown tool", "tool", toolName)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("fasta_analyzer %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
