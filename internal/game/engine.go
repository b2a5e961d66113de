// internal/game/engine.go
//
// Core game engine for a single round.
// Responsibilities:
//   - Create new rounds with configurable length and guess limit.
//   - Validate guesses (length, alphabetic, dictionary membership, strict
//     constraints) without consuming an attempt on rejection.
//   - Score accepted guesses using the classic two-pass algorithm.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Word lists are provided by the words package via the Dictionary
//     interface; the engine never touches files.
//   - A rejection is an ordinary error: the caller prints it and re-prompts.
//     Only ErrRoundFinished means the round can no longer accept guesses.

package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRoundFinished is returned by Play once the round is won or lost.
var ErrRoundFinished = errors.New("round is already finished")

// New constructs a round for the given answer. The answer is lowercased;
// its length fixes the accepted guess length. A nil dict accepts any word,
// which the tests use to drive the state machine directly.
func New(answer string, maxGuesses int, dict Dictionary) *Round {
	return &Round{
		Answer:     strings.ToLower(answer),
		MaxGuesses: maxGuesses,
		Guesses:    []string{},
		dict:       dict,
	}
}

// Length returns the configured word length.
func (r *Round) Length() int { return len(r.Answer) }

// State reports the round's coarse lifecycle.
func (r *Round) State() State {
	if r.Finished {
		if r.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Remaining returns the number of attempts left.
func (r *Round) Remaining() int { return r.MaxGuesses - len(r.Guesses) }

// Play validates and scores a guess, mutating the round state.
// Returns the per-letter marks, the new state, or an error.
//
// Validation rules (rejections, attempt NOT consumed):
//   - Guess must be exactly Length() letters, alphabetic a-z.
//   - Guess must be in the dictionary.
//   - In strict mode, the guess must honor the previous guess's marks.
//
// State transitions:
//   - If all marks are Exact → Finished = true, Won = true.
//   - Else if the number of accepted guesses reaches MaxGuesses →
//     Finished = true (loss).
func (r *Round) Play(guess string) ([]Mark, State, error) {
	if r.Finished {
		return nil, r.State(), ErrRoundFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if !isAlpha(guess) {
		return nil, r.State(), errors.New("guess contains non-alphabetic characters")
	}
	if len(guess) != len(r.Answer) {
		return nil, r.State(), fmt.Errorf("guess must be a %d letter word", len(r.Answer))
	}
	if r.dict != nil && !r.dict.IsAllowed(guess) {
		return nil, r.State(), errors.New("not in the dictionary")
	}
	if r.Strict {
		if err := r.checkStrict(guess); err != nil {
			return nil, r.State(), err
		}
	}

	marks := Score(r.Answer, guess)
	r.Guesses = append(r.Guesses, guess)
	r.History = append(r.History, marks)

	if allExact(marks) {
		r.Finished, r.Won = true, true
	} else if len(r.Guesses) >= r.MaxGuesses {
		r.Finished = true
	}
	return marks, r.State(), nil
}

// checkStrict enforces the constraints of strict mode against the previous
// accepted guess:
//   - The guess must differ from the previous guess.
//   - Positions previously marked Exact must keep their letter.
//   - Letters previously marked Present must appear somewhere in the guess.
func (r *Round) checkStrict(guess string) error {
	if len(r.Guesses) == 0 {
		return nil
	}
	previous := r.Guesses[len(r.Guesses)-1]
	marks := r.History[len(r.History)-1]

	if guess == previous {
		return errors.New("guess matches your previous guess")
	}
	misplaced := make(map[byte]bool)
	for i := range previous {
		switch marks[i] {
		case MarkExact:
			if guess[i] != previous[i] {
				return errors.New("correctly placed letters cannot be changed")
			}
		case MarkPresent:
			misplaced[previous[i]] = true
		}
	}
	for i := 0; i < len(guess); i++ {
		delete(misplaced, guess[i])
	}
	if len(misplaced) > 0 {
		return errors.New("out-of-place letters must be used in your new guess")
	}
	return nil
}

// Score implements the standard two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches.
//   - Count remaining (non-exact) answer letters by letter index.
//
// Pass 2:
//   - For each non-exact guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise mark Absent.
//
// This ensures correct behavior with repeated letters in both answer and
// guess. Inputs must be equal-length lowercase a-z strings.
func Score(answer, guess string) []Mark {
	n := len(guess)
	res := make([]Mark, n)

	// Letter frequency for the non-exact positions (a-z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkExact
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkExact {
			continue
		}
		j := int(guess[i] - 'a')
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// isAlpha checks that a string consists only of lowercase a-z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// allExact returns true if all marks are MarkExact.
func allExact(m []Mark) bool {
	for _, x := range m {
		if x != MarkExact {
			return false
		}
	}
	return true
}
