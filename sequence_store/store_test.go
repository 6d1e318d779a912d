package sequence_store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStoreOrdering(t *testing.T) {
	s := New()
	s.Add("zeta", "AC")
	s.Add("alpha", "ACGT")
	s.Add("zeta", "ACG")

	if s.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", s.Len())
	}
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"zeta", "alpha"}) {
		t.Errorf("IDs() = %v", got)
	}
	if got := s.SortedIDs(); !reflect.DeepEqual(got, []string{"alpha", "zeta"}) {
		t.Errorf("SortedIDs() = %v", got)
	}
	if seq, _ := s.Get("zeta"); seq != "ACG" {
		t.Errorf("expected replaced sequence ACG, got %q", seq)
	}
}

func TestStoreUnknownID(t *testing.T) {
	s := FromMap(map[string]string{"seq1": "AAAA"})
	if _, err := s.Get("seq9"); !errors.Is(err, ErrUnknownSequenceID) {
		t.Fatalf("expected ErrUnknownSequenceID, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dna.fasta")
	data := ">seq2 desc\nAAAAA\n>seq1\nAA\nAA\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"seq2", "seq1"}) {
		t.Errorf("IDs() = %v", got)
	}
	if seq, _ := s.Get("seq1"); seq != "AAAA" {
		t.Errorf("seq1 = %q", seq)
	}
}
