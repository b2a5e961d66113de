// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark: per-letter result of a guess (exact/present/absent).
//   - State: coarse round state (playing/won/lost).
//   - Round: state for a single in-progress or finished round.

package game

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "absent":  letter does not exist in the answer at all.
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// State is the coarse lifecycle of a round.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Dictionary reports whether a word is an acceptable guess.
// The words package provides the file-backed implementation.
type Dictionary interface {
	IsAllowed(word string) bool
}

// Round holds the state of a single game session.
type Round struct {
	Answer     string   // The solution word (always lowercase).
	MaxGuesses int      // Maximum number of accepted guesses allowed.
	Strict     bool     // Enforce constraints against the previous guess.
	Guesses    []string // Accepted guesses so far (lowercased).
	History    [][]Mark // Marks for each accepted guess, same order.
	Finished   bool     // True once the round is over (won or lost).
	Won        bool     // True if the round finished with a win.

	dict Dictionary
}
