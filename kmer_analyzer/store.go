package kmer_analyzer

// SequenceSource is the read-only store view used by the store-wide queries.
type SequenceSource interface {
	IDs() []string
	Get(id string) (string, error)
}

// Repeat is a k-mer and how often it occurred in one sequence.
type Repeat struct {
	Kmer  string
	Count int
}

// each visits the sequences of store in store order.
func each(store SequenceSource, fn func(id, seq string)) error {
	for _, id := range store.IDs() {
		seq, err := store.Get(id)
		if err != nil {
			return err
		}
		fn(id, seq)
	}
	return nil
}

// MostFrequentKmer returns the k-mer of length n with the highest count in
// any single sequence. Sequences are visited in store order and k-mers in
// first-seen order; a later k-mer must strictly exceed the best count to
// replace it. ok is false when no sequence yields a window.
func MostFrequentKmer(store SequenceSource, n int) (best Repeat, ok bool, err error) {
	err = each(store, func(_, seq string) {
		kc := CountKmers(seq, n)
		for _, kmer := range kc.Kmers {
			if c := kc.Counts[kmer]; !ok || c > best.Count {
				best = Repeat{Kmer: kmer, Count: c}
				ok = true
			}
		}
	})
	if err != nil {
		return Repeat{}, false, err
	}
	return best, ok, nil
}

// AllMostFrequentKmers is MostFrequentKmer keeping every k-mer tied for the
// highest count, in the order they reached it. A k-mer is listed once even
// when it ties in several sequences.
func AllMostFrequentKmers(store SequenceSource, n int) ([]string, int, error) {
	var kmers []string
	listed := make(map[string]bool)
	bestCount := 0

	err := each(store, func(_, seq string) {
		kc := CountKmers(seq, n)
		for _, kmer := range kc.Kmers {
			c := kc.Counts[kmer]
			switch {
			case c > bestCount:
				bestCount = c
				kmers = []string{kmer}
				listed = map[string]bool{kmer: true}
			case c == bestCount && !listed[kmer]:
				kmers = append(kmers, kmer)
				listed[kmer] = true
			}
		}
	})
	if err != nil {
		return nil, 0, err
	}
	return kmers, bestCount, nil
}

// OccurrencesAcrossStore counts kmer in every sequence of store, keyed by id.
func OccurrencesAcrossStore(store SequenceSource, kmer string) (map[string]int, error) {
	result := make(map[string]int)
	err := each(store, func(id, seq string) {
		result[id] = OccurrencesInSequence(seq, kmer)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// TotalOccurrences sums OccurrencesAcrossStore.
func TotalOccurrences(store SequenceSource, kmer string) (int, error) {
	perSeq, err := OccurrencesAcrossStore(store, kmer)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range perSeq {
		total += c
	}
	return total, nil
}
