package orf_finder

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SequenceSource is the read-only view of a sequence store the aggregator needs.
type SequenceSource interface {
	SortedIDs() []string
	Get(id string) (string, error)
}

// ORFHit is an ORF together with the sequence and frame it was found in.
type ORFHit struct {
	SequenceID string
	Frame      ReadingFrame
	ORF
}

// Aggregator runs ExtractORFs over a whole store. Extraction for each
// (sequence, frame) pair runs concurrently on up to Workers goroutines;
// results are always folded in ascending sequence id, then frame 1, 2, 3,
// so ties resolve the same way regardless of scheduling.
type Aggregator struct {
	Workers int // <= 0 means runtime.NumCPU()
}

type frameResult struct {
	id    string
	frame ReadingFrame
	orfs  []ORF
}

func (a Aggregator) workers() int {
	if a.Workers > 0 {
		return a.Workers
	}
	return runtime.NumCPU()
}

// scan extracts ORFs for every sequence and requested frame, returned in fold order.
func (a Aggregator) scan(store SequenceSource, frame ReadingFrame) ([]frameResult, error) {
	if err := frame.Validate(); err != nil {
		return nil, err
	}
	frames := frame.frames()
	ids := store.SortedIDs()
	results := make([]frameResult, len(ids)*len(frames))

	seqs := make([]string, len(ids))
	for i, id := range ids {
		seq, err := store.Get(id)
		if err != nil {
			return nil, err
		}
		seqs[i] = seq
	}

	var g errgroup.Group
	g.SetLimit(a.workers())
	for i, id := range ids {
		id := id // per-iteration copy (go 1.21 loop semantics)
		seq := seqs[i]
		for j, f := range frames {
			f := f
			slot := i*len(frames) + j
			g.Go(func() error {
				orfs, err := ExtractORFs(seq, f)
				if err != nil {
					return fmt.Errorf("sequence %s frame %d: %w", id, f, err)
				}
				results[slot] = frameResult{id: id, frame: f, orfs: orfs}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// extremalORF folds the shortest (or longest) ORF of every sequence/frame
// into a single winner. Only a strictly better length replaces the current
// winner, so the first one seen wins ties.
func (a Aggregator) extremalORF(store SequenceSource, frame ReadingFrame, shortest bool) (ORFHit, bool, error) {
	results, err := a.scan(store, frame)
	if err != nil {
		return ORFHit{}, false, err
	}

	var best ORFHit
	found := false
	for _, r := range results {
		if len(r.orfs) == 0 {
			continue
		}
		candidate := r.orfs[len(r.orfs)-1]
		if shortest {
			candidate = r.orfs[0]
		}
		better := candidate.Length > best.Length
		if shortest {
			better = candidate.Length < best.Length
		}
		if !found || better {
			best = ORFHit{SequenceID: r.id, Frame: r.frame, ORF: candidate}
			found = true
		}
	}
	return best, found, nil
}

// ShortestORF returns the shortest ORF in store for frame (AllFrames scans
// 1, 2 and 3). ok is false when no sequence has an ORF.
func (a Aggregator) ShortestORF(store SequenceSource, frame ReadingFrame) (hit ORFHit, ok bool, err error) {
	return a.extremalORF(store, frame, true)
}

// LongestORF is ShortestORF's counterpart.
func (a Aggregator) LongestORF(store SequenceSource, frame ReadingFrame) (hit ORFHit, ok bool, err error) {
	return a.extremalORF(store, frame, false)
}

// ShortestORFLength returns only the length of ShortestORF.
func (a Aggregator) ShortestORFLength(store SequenceSource, frame ReadingFrame) (int, bool, error) {
	hit, ok, err := a.ShortestORF(store, frame)
	return hit.Length, ok, err
}

// LongestORFLength returns only the length of LongestORF.
func (a Aggregator) LongestORFLength(store SequenceSource, frame ReadingFrame) (int, bool, error) {
	hit, ok, err := a.LongestORF(store, frame)
	return hit.Length, ok, err
}

// AllORFs lists every ORF in store, grouped by sequence id then frame, each
// group in ExtractORFs order.
func (a Aggregator) AllORFs(store SequenceSource, frame ReadingFrame) ([]ORFHit, error) {
	results, err := a.scan(store, frame)
	if err != nil {
		return nil, err
	}
	var hits []ORFHit
	for _, r := range results {
		for _, orf := range r.orfs {
			hits = append(hits, ORFHit{SequenceID: r.id, Frame: r.frame, ORF: orf})
		}
	}
	return hits, nil
}

// LongestORFInSequence returns the length of the longest ORF of sequence id in
// frame, or 0 when that frame holds fewer than two ORFs. For AllFrames every
// frame is evaluated and the largest length is returned with the frame that
// produced it; ties go to the lowest frame.
func (a Aggregator) LongestORFInSequence(store SequenceSource, id string, frame ReadingFrame) (int, ReadingFrame, error) {
	if err := frame.Validate(); err != nil {
		return 0, 0, err
	}
	seq, err := store.Get(id)
	if err != nil {
		return 0, 0, err
	}

	bestLen := 0
	var bestFrame ReadingFrame
	for _, f := range frame.frames() {
		orfs, err := ExtractORFs(seq, f)
		if err != nil {
			return 0, 0, err
		}
		length := 0
		if len(orfs) >= 2 {
			length = orfs[len(orfs)-1].Length
		}
		if bestFrame == 0 || length > bestLen {
			bestLen = length
			bestFrame = f
		}
	}
	return bestLen, bestFrame, nil
}
