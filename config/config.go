// Package config holds version constants and the settings shared by every
// tool. Settings come from defaults, an optional YAML file and
// FASTA_ANALYZER_* environment variables, in increasing precedence; tool
// flags then override them.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Settings are the tool-wide defaults.
type Settings struct {
	// k-mer size used by kmer_analyzer when -k_mer is not given
	KmerSize int `mapstructure:"kmer_size"`

	// reading frame used by orf_finder when -frame is not given (0 = all)
	ReadingFrame int `mapstructure:"reading_frame"`

	// goroutines used for per-sequence ORF extraction
	Workers int `mapstructure:"workers"`

	// debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`
}

// LoadSettings builds Settings. path may be empty, in which case only
// defaults and the environment are consulted.
func LoadSettings(path string) (Settings, error) {
	v := viper.New()
	v.SetDefault("kmer_size", 2)
	v.SetDefault("reading_frame", 0)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("FASTA_ANALYZER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	if s.KmerSize <= 0 {
		return Settings{}, fmt.Errorf("kmer_size must be positive, got %d", s.KmerSize)
	}
	return s, nil
}

// SplitConfigFlag removes a global --config flag (either "--config=path" or
// "--config path") from args and returns its value with the remaining args.
func SplitConfigFlag(args []string) (string, []string) {
	var path string
	var rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case strings.HasPrefix(arg, "--config="):
			path = strings.TrimPrefix(arg, "--config=")
		case arg == "--config" && i+1 < len(args):
			path = args[i+1]
			i++
		default:
			rest = append(rest, arg)
		}
	}
	return path, rest
}
