package fasta_overview

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	"fasta_analyzer_go/sequence_store"
)

// Run executes the fasta_overview command.
func Run(args []string) {
	err := run(args, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal("fasta_overview failed", "err", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("fasta_overview", flag.ContinueOnError)
	inFile := fs.String("in_file", "", "Input FASTA file")
	recordCount := fs.Bool("record_count", false, "Report the number of records")
	longest := fs.Bool("longest_seq", false, "Report the longest sequence(s)")
	shortest := fs.Bool("shortest_seq", false, "Report the shortest sequence(s)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unrecognized arguments: %v", fs.Args())
	}
	if *inFile == "" {
		return fmt.Errorf("--in_file is required")
	}

	store, err := sequence_store.Load(*inFile)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	defer w.Flush()

	all := !*recordCount && !*longest && !*shortest
	fmt.Fprintf(w, "input file = %s\n", *inFile)
	if all || *recordCount {
		fmt.Fprintf(w, "record count = %d\n", RecordCount(store))
	}
	if all || *longest {
		res, ok, err := LongestSequences(store)
		if err != nil {
			return err
		}
		printExtremal(w, "longest", res, ok)
	}
	if all || *shortest {
		res, ok, err := ShortestSequences(store)
		if err != nil {
			return err
		}
		printExtremal(w, "shortest", res, ok)
	}
	if all {
		s, err := Summarize(store)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "----------")
		fmt.Fprintf(w, "total bases = %d\n", s.TotalBases)
		fmt.Fprintf(w, "mean length = %.2f\n", s.MeanLength)
		fmt.Fprintf(w, "length std dev = %.2f\n", s.StdDevLength)
		fmt.Fprintf(w, "median length = %.0f\n", s.MedianLength)
		fmt.Fprintf(w, "mean GC content = %.2f%%\n", s.MeanGC)
	}
	return nil
}

func printExtremal(w io.Writer, kind string, res ExtremalResult, ok bool) {
	fmt.Fprintln(w, "----------")
	if !ok {
		fmt.Fprintf(w, "%s sequence = none (no records)\n", kind)
		return
	}
	fmt.Fprintf(w, "%s sequence = %d\n", kind, res.Length)
	fmt.Fprintf(w, "%s sequence count = %d\n", kind, res.Count)
	fmt.Fprintf(w, "%s sequence ids:\n", kind)
	for _, id := range res.IDs {
		fmt.Fprintln(w, id)
	}
}
