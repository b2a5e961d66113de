// config.go
//
// CLI flag parsing for the wordle binary. Every flag has an environment
// variable default (WORDLE_*) applied before parsing, so a .env file
// loaded at startup can stand in for repeated flags.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// config collects the settings for one session.
type config struct {
	Words      string // secret-word list path; empty selects the embedded default
	Dictionary string // allowed-guess list path; empty selects the embedded default
	Length     int    // letters per word
	MaxGuesses int    // accepted guesses per round
	Strict     bool   // enforce constraints against the previous guess
	NoColor    bool   // force plain rendering
}

// parseConfig parses args (without the program name) into a config.
// Underscores in flag names are normalized to dashes, so the historical
// --max_guesses spelling keeps working.
func parseConfig(args []string) (config, error) {
	var cfg config

	fs := pflag.NewFlagSet("wordle", pflag.ContinueOnError)
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	fs.StringVar(&cfg.Words, "words", envOr("WORDLE_WORDS_FILE", ""),
		"list of secret words for games (embedded default when empty)")
	fs.StringVar(&cfg.Dictionary, "dictionary", envOr("WORDLE_DICTIONARY_FILE", ""),
		"list of valid words for guesses (embedded default when empty)")
	fs.IntVar(&cfg.Length, "length", envIntOr("WORDLE_LENGTH", 5),
		"length of word to guess")
	fs.IntVar(&cfg.MaxGuesses, "max-guesses", envIntOr("WORDLE_MAX_GUESSES", 6),
		"maximum number of guesses")
	fs.BoolVar(&cfg.Strict, "strict", false,
		"new guesses must honor the marks of the previous guess")
	fs.BoolVar(&cfg.NoColor, "no-color", false,
		"disable colored output")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.Length < 2 {
		return config{}, fmt.Errorf("--length must be at least 2, got %d", cfg.Length)
	}
	if cfg.MaxGuesses < 2 {
		return config{}, fmt.Errorf("--max-guesses must be at least 2, got %d", cfg.MaxGuesses)
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
