package kmer_analyzer

import (
	"strings"
)

// KmerCounts maps each k-mer of a sequence to its occurrence count.
// Kmers lists the keys in the order they were first seen.
type KmerCounts struct {
	Kmers  []string
	Counts map[string]int
}

// KmerPositions maps each k-mer of a sequence to its 1-based start positions.
// Kmers lists the keys in the order they were first seen.
type KmerPositions struct {
	Kmers     []string
	Positions map[string][]int
}

// Total is the number of windows counted.
func (kc KmerCounts) Total() int {
	total := 0
	for _, c := range kc.Counts {
		total += c
	}
	return total
}

// windows calls fn for every lower-cased window of length n starting at
// 0 .. len(seq)-n-1. The window ending on the last base is not visited.
func windows(seq string, n int, fn func(i int, kmer string)) {
	if n < 1 {
		return
	}
	dna := strings.ToLower(seq)
	for i := 0; i < len(dna)-n; i++ {
		fn(i, dna[i:i+n])
	}
}

// CountKmers counts overlapping windows of length n in seq.
func CountKmers(seq string, n int) KmerCounts {
	kc := KmerCounts{Counts: make(map[string]int)}
	windows(seq, n, func(_ int, kmer string) {
		if _, seen := kc.Counts[kmer]; !seen {
			kc.Kmers = append(kc.Kmers, kmer)
		}
		kc.Counts[kmer]++
	})
	return kc
}

// LocateKmers records where each overlapping window of length n starts in seq.
func LocateKmers(seq string, n int) KmerPositions {
	kp := KmerPositions{Positions: make(map[string][]int)}
	windows(seq, n, func(i int, kmer string) {
		if _, seen := kp.Positions[kmer]; !seen {
			kp.Kmers = append(kp.Kmers, kmer)
		}
		kp.Positions[kmer] = append(kp.Positions[kmer], i+1)
	})
	return kp
}

// OccurrencesInSequence counts kmer in seq, case-insensitively, with the
// same window rules as CountKmers.
func OccurrencesInSequence(seq, kmer string) int {
	if kmer == "" {
		return 0
	}
	return CountKmers(seq, len(kmer)).Counts[strings.ToLower(kmer)]
}
