package fasta_overview

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// SequenceSource is the read-only store view the overview needs.
type SequenceSource interface {
	Len() int
	SortedIDs() []string
	Get(id string) (string, error)
}

// ExtremalResult is the shortest or longest sequence length in a store and
// every sequence id of that length, in ascending id order.
type ExtremalResult struct {
	Length int
	Count  int
	IDs    []string
}

// RecordCount returns the number of sequences in store.
func RecordCount(store SequenceSource) int {
	return store.Len()
}

// ShortestSequences finds the minimum sequence length and the ids tied at it.
// ok is false for an empty store.
func ShortestSequences(store SequenceSource) (ExtremalResult, bool, error) {
	return extremalLengths(store, func(l, best int) bool { return l < best })
}

// LongestSequences finds the maximum sequence length and the ids tied at it.
func LongestSequences(store SequenceSource) (ExtremalResult, bool, error) {
	return extremalLengths(store, func(l, best int) bool { return l > best })
}

// extremalLengths walks ids in ascending order. A strictly better length
// restarts the tie list; an equal one joins it.
func extremalLengths(store SequenceSource, better func(l, best int) bool) (ExtremalResult, bool, error) {
	var res ExtremalResult
	found := false
	for _, id := range store.SortedIDs() {
		seq, err := store.Get(id)
		if err != nil {
			return ExtremalResult{}, false, err
		}
		l := len(seq)
		switch {
		case !found || better(l, res.Length):
			res.Length = l
			res.IDs = []string{id}
			found = true
		case l == res.Length:
			res.IDs = append(res.IDs, id)
		}
	}
	res.Count = len(res.IDs)
	return res, found, nil
}

// Summary holds length and composition statistics for a whole store.
type Summary struct {
	Records      int
	TotalBases   int
	MeanLength   float64
	StdDevLength float64 // 0 with fewer than two records
	MedianLength float64
	MeanGC       float64 // percentage, over non-empty sequences
}

// Summarize computes Summary for store. An empty store yields a zero Summary.
func Summarize(store SequenceSource) (Summary, error) {
	ids := store.SortedIDs()
	s := Summary{Records: len(ids)}
	if len(ids) == 0 {
		return s, nil
	}

	lengths := make([]float64, 0, len(ids))
	var gcValues []float64
	for _, id := range ids {
		seq, err := store.Get(id)
		if err != nil {
			return Summary{}, err
		}
		s.TotalBases += len(seq)
		lengths = append(lengths, float64(len(seq)))
		if len(seq) > 0 {
			gcValues = append(gcValues, gcPercent(seq))
		}
	}

	s.MeanLength = stat.Mean(lengths, nil)
	if len(lengths) > 1 {
		s.StdDevLength = stat.StdDev(lengths, nil)
	}
	sort.Float64s(lengths)											// Quantile needs sorted input
	s.MedianLength = stat.Quantile(0.5, stat.Empirical, lengths, nil)
	if len(gcValues) > 0 {
		s.MeanGC = stat.Mean(gcValues, nil)
	}
	return s, nil
}

// gcPercent is the share of G and C bases in seq, case-insensitively.
func gcPercent(seq string) float64 {
	gc := 0
	for _, b := range strings.ToUpper(seq) {
		if b == 'G' || b == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(seq)) * 100
}
