// internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Load the secret-word pool and the guess dictionary from
//     newline-delimited files, or fall back to embedded defaults.
//   - Filter entries to the configured length; mismatches are dropped
//     silently.
//   - Maintain a lookup set for guesses (pool ∪ dictionary) and supply
//     uniform random selection from the pool.
//
// Word lists:
//   - "pool": candidate secret words, one is drawn per round.
//   - "dictionary": valid guesses (always includes the pool).
//
// Constraints:
//   • Entries are normalized to lowercase; only ASCII a-z survive.
//   • An empty filtered pool is a load error.

package words

import (
	"bufio"
	crand "crypto/rand"
	_ "embed"
	"encoding/binary"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

// --- embedded tiny defaults (the game runs even with no files configured) ---

//go:embed default_words.txt
var embeddedPool string

//go:embed default_dictionary.txt
var embeddedDictionary string

// Lists bundles the filtered secret-word pool with the allowed-guess set.
type Lists struct {
	Length  int
	pool    []string
	allowed map[string]struct{}
}

// Load reads the pool and dictionary files, filters both to length, and
// builds the allowed set as pool ∪ dictionary. An empty path selects the
// embedded default for that list. Returns an error for an unreadable file
// or when no pool words of the requested length remain.
func Load(poolPath, dictPath string, length int) (*Lists, error) {
	var pool, dict []string
	var err error

	if poolPath != "" {
		pool, err = readWordFile(poolPath, length)
	} else {
		pool = normalizeLines(embeddedPool, length)
	}
	if err != nil {
		return nil, err
	}
	if dictPath != "" {
		dict, err = readWordFile(dictPath, length)
	} else {
		dict = normalizeLines(embeddedDictionary, length)
	}
	if err != nil {
		return nil, err
	}

	if len(pool) == 0 {
		return nil, fmt.Errorf("words: no %d-letter words in the secret-word list", length)
	}

	allowed := make(map[string]struct{}, len(pool)+len(dict))
	for _, w := range pool {
		allowed[w] = struct{}{}
	}
	for _, w := range dict {
		allowed[w] = struct{}{}
	}
	return &Lists{Length: length, pool: pool, allowed: allowed}, nil
}

// readWordFile loads one word per line from a file, lowercases, trims, and
// keeps only valid alphabetic words of the requested length.
func readWordFile(path string, length int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == length && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string into a slice of
// valid lowercase words of the requested length.
func normalizeLines(s string, length int) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == length && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Random returns a uniformly chosen pool word from the given source.
// The source is injected so tests can seed it deterministically.
func (l *Lists) Random(rng *rand.Rand) string {
	return l.pool[rng.Intn(len(l.pool))]
}

// IsAllowed reports whether w is a valid guess (pool ∪ dictionary).
func (l *Lists) IsAllowed(w string) bool {
	_, ok := l.allowed[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (pool, allowed).
func (l *Lists) Stats() (poolCount int, allowedCount int) {
	return len(l.pool), len(l.allowed)
}

// NewSource returns a math/rand source seeded from crypto/rand, so each
// session draws a different secret without the caller managing seeds.
func NewSource() *rand.Rand {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return rand.New(rand.NewSource(int64(binary.BigEndian.Uint64(b[:]))))
}
