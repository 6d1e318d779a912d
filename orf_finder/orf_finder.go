package orf_finder

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidReadingFrame is returned for frames outside {0, 1, 2, 3}, and for
// AllFrames where a single frame is required.
var ErrInvalidReadingFrame = errors.New("invalid reading frame")

// ReadingFrame is 1, 2 or 3, or AllFrames.
type ReadingFrame int

// AllFrames asks for frames 1, 2 and 3 to be scanned and reduced to one result.
const AllFrames ReadingFrame = 0

// Validate accepts 0 through 3.
func (f ReadingFrame) Validate() error {
	if f < AllFrames || f > 3 {
		return fmt.Errorf("%w: %d (allowed: 0, 1, 2, 3)", ErrInvalidReadingFrame, int(f))
	}
	return nil
}

// frames expands AllFrames into 1, 2, 3.
func (f ReadingFrame) frames() []ReadingFrame {
	if f == AllFrames {
		return []ReadingFrame{1, 2, 3}
	}
	return []ReadingFrame{f}
}

// ORF is a start codon paired with the first in-frame stop codon after it.
// Start and Stop are 1-based and relative to the start of the reading frame.
type ORF struct {
	Start  int
	Stop   int
	Length int // Stop + 3 - Start, always a multiple of 3
}

// ExtractORFs finds the ORFs of seq in a single reading frame, sorted by
// ascending length with ties kept in scan order.
//
// After each ORF the search for the next start codon resumes right after the
// previous start codon, so ORFs may nest. Scanning stops at the first start
// codon that has no downstream stop codon; later start codons in the frame
// are not considered.
func ExtractORFs(seq string, frame ReadingFrame) ([]ORF, error) {
	if frame < 1 || frame > 3 {
		return nil, fmt.Errorf("%w: %d (allowed: 1, 2, 3)", ErrInvalidReadingFrame, int(frame))
	}

	offset := int(frame) - 1
	if offset > len(seq) {
		offset = len(seq)
	}
	dna := seq[offset:]									// Positions below are relative to the frame

	var orfs []ORF
	cursor, ok := NextCodon(dna, 0, StartCodons)
	for ok {
		stop, found := NextCodon(dna, cursor+3, StopCodons)
		if !found {
			break
		}
		orfs = append(orfs, ORF{
			Start:  cursor + 1,
			Stop:   stop + 1,
			Length: stop + 3 - cursor,
		})
		cursor, ok = NextCodon(dna, cursor+3, StartCodons)
	}

	sort.SliceStable(orfs, func(i, j int) bool {
		return orfs[i].Length < orfs[j].Length
	})
	return orfs, nil
}
