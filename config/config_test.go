package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if s.KmerSize != 2 || s.ReadingFrame != 0 || s.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", s)
	}
	if s.Workers <= 0 {
		t.Errorf("expected positive worker default, got %d", s.Workers)
	}
}

func TestLoadSettingsFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := "kmer_size: 4\nreading_frame: 2\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FASTA_ANALYZER_READING_FRAME", "3")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if s.KmerSize != 4 {
		t.Errorf("kmer_size = %d, want 4", s.KmerSize)
	}
	if s.ReadingFrame != 3 {
		t.Errorf("reading_frame = %d, want env override 3", s.ReadingFrame)
	}
	if s.LogLevel != "debug" {
		t.Errorf("log_level = %q", s.LogLevel)
	}
}

func TestLoadSettingsRejectsBadKmer(t *testing.T) {
	t.Setenv("FASTA_ANALYZER_KMER_SIZE", "0")
	if _, err := LoadSettings(""); err == nil {
		t.Fatal("expected error for kmer_size 0")
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestSplitConfigFlag(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantPath string
		wantRest []string
	}{
		{"absent", []string{"--in_file=a.fa"}, "", []string{"--in_file=a.fa"}},
		{"equals form", []string{"--config=c.yaml", "--frame=2"}, "c.yaml", []string{"--frame=2"}},
		{"separate value", []string{"--frame=1", "--config", "c.yaml"}, "c.yaml", []string{"--frame=1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, rest := SplitConfigFlag(tt.args)
			if path != tt.wantPath || !reflect.DeepEqual(rest, tt.wantRest) {
				t.Errorf("SplitConfigFlag(%v) = %q, %v", tt.args, path, rest)
			}
		})
	}
}
