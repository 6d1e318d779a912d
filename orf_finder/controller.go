package orf_finder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	"fasta_analyzer_go/config"
	"fasta_analyzer_go/sequence_store"
)

// Run executes the orf_finder command.
func Run(args []string, settings config.Settings) {
	err := run(args, settings, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal("orf_finder failed", "err", err)
	}
}

func run(args []string, settings config.Settings, stdout io.Writer) error {
	fs := flag.NewFlagSet("orf_finder", flag.ContinueOnError)

	inFile := fs.String("in_file", "", "Input FASTA file")
	frameFlag := fs.Int("frame", settings.ReadingFrame, "Reading frame: 1, 2, 3, or 0 for all frames")
	shortest := fs.Bool("shortest", false, "Report the shortest ORF instead of the longest")
	seqID := fs.String("seq_id", "", "Report the longest ORF of a single sequence")
	list := fs.Bool("list", false, "List every ORF found")
	plotFile := fs.String("plot", "", "Write an SVG histogram of ORF lengths to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unrecognized arguments: %v", fs.Args())
	}
	if *inFile == "" {
		return fmt.Errorf("--in_file is required")
	}

	frame := ReadingFrame(*frameFlag)
	if err := frame.Validate(); err != nil {
		return err											// Reject before touching the file
	}

	store, err := sequence_store.Load(*inFile)
	if err != nil {
		return err
	}
	log.Debug("loaded sequences", "file", *inFile, "records", store.Len())

	agg := Aggregator{Workers: settings.Workers}
	w := bufio.NewWriter(stdout)
	defer w.Flush()

	if *seqID != "" {
		length, resolved, err := agg.LongestORFInSequence(store, *seqID, frame)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "longest ORF in %s = %d (frame %d)\n", *seqID, length, resolved)
		return nil
	}

	if *list || *plotFile != "" {
		hits, err := agg.AllORFs(store, frame)
		if err != nil {
			return err
		}
		if *list {
			fmt.Fprintln(w, "Sequence\tFrame\tStart\tStop\tLength")
			for _, h := range hits {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", h.SequenceID, h.Frame, h.Start, h.Stop, h.Length)
			}
		}
		if *plotFile != "" {
			if err := writePlot(*plotFile, hits); err != nil {
				return err
			}
			log.Info("wrote ORF length plot", "file", *plotFile, "orfs", len(hits))
		}
		if *list {
			return nil
		}
	}

	kind := "longest"
	hit, ok, err := agg.LongestORF(store, frame)
	if *shortest {
		kind = "shortest"
		hit, ok, err = agg.ShortestORF(store, frame)
	}
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(w, "No ORFs found (frame %d)\n", frame)
		return nil
	}
	fmt.Fprintf(w, "%s ORF = %d (sequence %s, frame %d, start %d)\n", kind, hit.Length, hit.SequenceID, hit.Frame, hit.Start)
	return nil
}

func writePlot(path string, hits []ORFHit) error {
	svg, err := ORFLengthHistogramSVG(hitLengths(hits), 0)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(svg), 0o644)
}
