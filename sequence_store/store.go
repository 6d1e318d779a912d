// Package sequence_store holds the sequences loaded from a FASTA file.
// Analysis tools read from a Store but never modify it.
package sequence_store

import (
	"errors"
	"fmt"
	"sort"

	common "fasta_analyzer_go/utils"
)

// ErrUnknownSequenceID is returned when a lookup names an id the store does not hold.
var ErrUnknownSequenceID = errors.New("unknown sequence id")

// Store is an insertion-ordered mapping from sequence id to nucleotide string.
type Store struct {
	ids  []string
	seqs map[string]string
}

func New() *Store {
	return &Store{seqs: make(map[string]string)}
}

// FromMap builds a store from m, ordering ids lexicographically since map
// iteration order carries no meaning.
func FromMap(m map[string]string) *Store {
	s := New()
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		s.Add(id, m[id])
	}
	return s
}

// Load reads a plain or gzip-compressed FASTA file into a new store.
func Load(path string) (*Store, error) {
	s := New()
	err := common.StreamFasta(path, func(id, seq string) error {
		s.Add(id, seq)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return s, nil
}

// Add stores seq under id. Re-adding an id replaces its sequence but keeps
// the position of its first insertion.
func (s *Store) Add(id, seq string) {
	if _, ok := s.seqs[id]; !ok {
		s.ids = append(s.ids, id)
	}
	s.seqs[id] = seq
}

// Get returns the sequence for id.
func (s *Store) Get(id string) (string, error) {
	seq, ok := s.seqs[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSequenceID, id)
	}
	return seq, nil
}

// Len is the number of records.
func (s *Store) Len() int {
	return len(s.ids)
}

// IDs returns the ids in insertion order.
func (s *Store) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// SortedIDs returns the ids in ascending lexicographic order.
func (s *Store) SortedIDs() []string {
	out := s.IDs()
	sort.Strings(out)
	return out
}
