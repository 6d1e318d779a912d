package kmer_analyzer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	"fasta_analyzer_go/config"
	"fasta_analyzer_go/sequence_store"
)

// Run executes the kmer_analyzer command.
// Without a query flag it reports the most frequent k-mer of the file.
func Run(args []string, settings config.Settings) {
	err := run(args, settings, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal("kmer_analyzer failed", "err", err)
	}
}

func run(args []string, settings config.Settings, stdout io.Writer) error {
	fs := flag.NewFlagSet("kmer_analyzer", flag.ContinueOnError)

	inFile := fs.String("in_file", "", "FASTA file input")
	kValue := fs.Int("k_mer", settings.KmerSize, "K-mer length")
	allTies := fs.Bool("all", false, "Report every k-mer tied for most frequent")
	repeat := fs.String("repeat", "", "Count occurrences of this k-mer in every sequence")
	seqID := fs.String("seq_id", "", "Report the k-mer table of a single sequence")
	positions := fs.Bool("positions", false, "With -seq_id, list 1-based positions instead of counts")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unrecognized arguments: %v", fs.Args())
	}
	if *inFile == "" {
		return fmt.Errorf("--in_file is required")
	}
	if *kValue < 1 {
		return fmt.Errorf("--k_mer must be positive, got %d", *kValue)
	}

	store, err := sequence_store.Load(*inFile)
	if err != nil {
		return err
	}
	log.Debug("loaded sequences", "file", *inFile, "records", store.Len())

	w := bufio.NewWriter(stdout)
	defer w.Flush()

	switch {
	case *repeat != "":
		perSeq, err := OccurrencesAcrossStore(store, *repeat)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "Sequence\tCount")
		total := 0
		for _, id := range store.IDs() {
			fmt.Fprintf(w, "%s\t%d\n", id, perSeq[id])
			total += perSeq[id]
		}
		fmt.Fprintf(w, "Total\t%d\n", total)

	case *seqID != "":
		seq, err := store.Get(*seqID)
		if err != nil {
			return err
		}
		if *positions {
			kp := LocateKmers(seq, *kValue)
			fmt.Fprintln(w, "K-mer\tPositions")
			for _, kmer := range kp.Kmers {
				fmt.Fprintf(w, "%s\t%s\n", kmer, joinInts(kp.Positions[kmer]))
			}
			return nil
		}
		kc := CountKmers(seq, *kValue)
		sorted := append([]string(nil), kc.Kmers...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return kc.Counts[sorted[i]] > kc.Counts[sorted[j]]
		})
		total := kc.Total()
		fmt.Fprintln(w, "K-mer\tCount\tRelative_Freq(%)")
		for _, kmer := range sorted {
			pct := float64(kc.Counts[kmer]) / float64(total) * 100
			fmt.Fprintf(w, "%s\t%d\t%.2f\n", kmer, kc.Counts[kmer], pct)
		}

	case *allTies:
		kmers, count, err := AllMostFrequentKmers(store, *kValue)
		if err != nil {
			return err
		}
		if len(kmers) == 0 {
			fmt.Fprintf(w, "No %d-mers found\n", *kValue)
			return nil
		}
		fmt.Fprintf(w, "most frequent %d-mer count = %d\n", *kValue, count)
		for _, kmer := range kmers {
			fmt.Fprintln(w, kmer)
		}

	default:
		best, ok, err := MostFrequentKmer(store, *kValue)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(w, "No %d-mers found\n", *kValue)
			return nil
		}
		fmt.Fprintf(w, "most frequent %d-mer = %s (count %d)\n", *kValue, best.Kmer, best.Count)
	}
	return nil
}

func joinInts(values []int) string {
	var b []byte
	for i, v := range values {
		if i > 0 {
			b = append(b, ',')
		}
		b = fmt.Appendf(b, "%d", v)
	}
	return string(b)
}
