package orf_finder

import "strings"

// CodonSet is a set of lower-case codons.
type CodonSet map[string]bool

// NewCodonSet builds a set from codons in any case.
func NewCodonSet(codons ...string) CodonSet {
	set := make(CodonSet, len(codons))
	for _, c := range codons {
		set[strings.ToLower(c)] = true
	}
	return set
}

var (
	StartCodons = NewCodonSet("ATG")
	StopCodons  = NewCodonSet("TAA", "TAG", "TGA")
)

// NextCodon scans seq in steps of 3 from offset and returns the 0-based
// position of the first codon in codons. Partial codons at the end of seq
// are never matched.
func NextCodon(seq string, offset int, codons CodonSet) (int, bool) {
	if offset < 0 {
		offset = 0
	}
	for i := offset; i+3 <= len(seq); i += 3 {
		if codons[strings.ToLower(seq[i:i+3])] {
			return i, true
		}
	}
	return -1, false
}

// CodonPositions returns every in-frame position from offset holding a codon in codons.
func CodonPositions(seq string, offset int, codons CodonSet) []int {
	var positions []int
	for {
		i, ok := NextCodon(seq, offset, codons)
		if !ok {
			return positions
		}
		positions = append(positions, i)
		offset = i + 3
	}
}
