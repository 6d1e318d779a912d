package orf_finder

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"fasta_analyzer_go/sequence_store"
)

func testStore() *sequence_store.Store {
	return sequence_store.FromMap(map[string]string{
		"s1": "ATGGGTATGGGGTGA",
		"s2": "ATGAAATAG",
		"s3": "CCC",
	})
}

func TestExtremalORF(t *testing.T) {
	tests := []struct {
		name     string
		store    *sequence_store.Store
		frame    ReadingFrame
		shortest bool
		want     ORFHit
		wantOK   bool
	}{
		{
			"longest frame 1",
			testStore(), 1, false,
			ORFHit{"s1", 1, ORF{1, 13, 15}}, true,
		},
		{
			"shortest frame 1 keeps first of tie",
			testStore(), 1, true,
			ORFHit{"s1", 1, ORF{7, 13, 9}}, true,
		},
		{
			"all frames",
			testStore(), AllFrames, false,
			ORFHit{"s1", 1, ORF{1, 13, 15}}, true,
		},
		{
			"frame with no ORFs",
			testStore(), 2, false,
			ORFHit{}, false,
		},
		{
			// a is folded (frames 1, 2, 3) before b
			"ties resolved by id before frame",
			sequence_store.FromMap(map[string]string{"b": "ATGAAATAG", "a": "AATGAAATAG"}), AllFrames, false,
			ORFHit{"a", 2, ORF{1, 7, 9}}, true,
		},
		{
			"empty store",
			sequence_store.New(), AllFrames, true,
			ORFHit{}, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := Aggregator{Workers: 2}
			var got ORFHit
			var ok bool
			var err error
			if tt.shortest {
				got, ok, err = agg.ShortestORF(tt.store, tt.frame)
			} else {
				got, ok, err = agg.LongestORF(tt.store, tt.frame)
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("got %+v, %v; want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExtremalORFLength(t *testing.T) {
	agg := Aggregator{}
	if l, ok, err := agg.LongestORFLength(testStore(), AllFrames); err != nil || !ok || l != 15 {
		t.Errorf("LongestORFLength = %d, %v, %v; want 15", l, ok, err)
	}
	if l, ok, err := agg.ShortestORFLength(testStore(), 1); err != nil || !ok || l != 9 {
		t.Errorf("ShortestORFLength = %d, %v, %v; want 9", l, ok, err)
	}
	if _, ok, err := agg.ShortestORFLength(testStore(), 3); err != nil || ok {
		t.Errorf("expected not found for frame 3, got ok=%v err=%v", ok, err)
	}
}

func TestAggregatorInvalidFrame(t *testing.T) {
	agg := Aggregator{}
	if _, _, err := agg.LongestORF(testStore(), 5); !errors.Is(err, ErrInvalidReadingFrame) {
		t.Errorf("LongestORF: expected ErrInvalidReadingFrame, got %v", err)
	}
	if _, err := agg.AllORFs(testStore(), -1); !errors.Is(err, ErrInvalidReadingFrame) {
		t.Errorf("AllORFs: expected ErrInvalidReadingFrame, got %v", err)
	}
	if _, _, err := agg.LongestORFInSequence(testStore(), "s1", 4); !errors.Is(err, ErrInvalidReadingFrame) {
		t.Errorf("LongestORFInSequence: expected ErrInvalidReadingFrame, got %v", err)
	}
}

func TestAllORFs(t *testing.T) {
	hits, err := Aggregator{}.AllORFs(testStore(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []ORFHit{
		{"s1", 1, ORF{7, 13, 9}},
		{"s1", 1, ORF{1, 13, 15}},
		{"s2", 1, ORF{1, 7, 9}},
	}
	if !reflect.DeepEqual(hits, want) {
		t.Errorf("AllORFs = %v, want %v", hits, want)
	}
}

func TestFoldOrderIndependentOfWorkers(t *testing.T) {
	records := make(map[string]string)
	for i := 0; i < 40; i++ {
		records[fmt.Sprintf("seq%02d", i)] = strings.Repeat("C", i%3) + "ATGAAATAG"
	}
	store := sequence_store.FromMap(records)

	var first ORFHit
	for _, workers := range []int{1, 3, 16} {
		hit, ok, err := Aggregator{Workers: workers}.LongestORF(store, AllFrames)
		if err != nil || !ok {
			t.Fatalf("workers=%d: ok=%v err=%v", workers, ok, err)
		}
		if workers == 1 {
			first = hit
			continue
		}
		if hit != first {
			t.Errorf("workers=%d gave %+v, workers=1 gave %+v", workers, hit, first)
		}
	}
	if first.SequenceID != "seq00" || first.Frame != 1 {
		t.Errorf("expected seq00 frame 1 to win the tie, got %+v", first)
	}
}

func TestLongestORFInSequence(t *testing.T) {
	store := sequence_store.FromMap(map[string]string{
		"s1":    "ATGGGTATGGGGTGA",
		"s2":    "ATGAAATAG",
		"frame": "CATGATGAAATAG",
	})
	tests := []struct {
		name      string
		id        string
		frame     ReadingFrame
		wantLen   int
		wantFrame ReadingFrame
	}{
		{"two ORFs in frame", "s1", 1, 15, 1},
		{"single ORF reports zero", "s2", 1, 0, 1},
		{"all frames", "s1", AllFrames, 15, 1},
		{"all frames picks frame 2", "frame", AllFrames, 12, 2},
		{"all frames nothing qualifies", "s2", AllFrames, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length, frame, err := Aggregator{}.LongestORFInSequence(store, tt.id, tt.frame)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if length != tt.wantLen || frame != tt.wantFrame {
				t.Errorf("got (%d, frame %d), want (%d, frame %d)", length, frame, tt.wantLen, tt.wantFrame)
			}
		})
	}

	if _, _, err := (Aggregator{}).LongestORFInSequence(store, "missing", 1); !errors.Is(err, sequence_store.ErrUnknownSequenceID) {
		t.Errorf("expected ErrUnknownSequenceID, got %v", err)
	}
}
