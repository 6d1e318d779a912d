package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executable
	Main_version = "v1.0.0"

	// Modular tools
	Benchmark      = "v1.1.0"
	FASTA_Overview = "v1.0.0"
	Kmer_Analyzer  = "v1.0.0"
	ORF_Finder     = "v1.0.0"
)
