// internal/cli/loop.go
//
// The interactive game loop.
// Responsibilities:
//   - Draw a secret word, run one round of prompt → validate → score →
//     render until the round is won, lost, or abandoned.
//   - Offer another round after each finished one and keep session tallies.
//   - Treat EOF on input like the stop word, so piped input and Ctrl-D end
//     the session cleanly.
//
// Input and output are plain io.Reader/io.Writer so tests can drive the
// whole session from string buffers.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/jjudes/wordle/internal/game"
	"github.com/jjudes/wordle/internal/stats"
	"github.com/jjudes/wordle/internal/words"
)

// Options configures an interactive session.
type Options struct {
	Lists      *words.Lists
	MaxGuesses int
	Strict     bool
	NoColor    bool

	// Rand draws the secret for each round; nil means a fresh
	// crypto-seeded source.
	Rand *rand.Rand

	// Now is the clock used for elapsed-time reports; nil means time.Now.
	Now func() time.Time
}

// Loop runs interactive rounds until the player stops.
type Loop struct {
	in         *bufio.Scanner
	out        io.Writer
	render     *Renderer
	lists      *words.Lists
	maxGuesses int
	strict     bool
	rng        *rand.Rand
	now        func() time.Time
	recorder   *stats.Recorder
}

// New constructs a Loop reading guesses from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Loop {
	rng := opts.Rand
	if rng == nil {
		rng = words.NewSource()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Loop{
		in:         bufio.NewScanner(in),
		out:        out,
		render:     NewRenderer(out, opts.NoColor),
		lists:      opts.Lists,
		maxGuesses: opts.MaxGuesses,
		strict:     opts.Strict,
		rng:        rng,
		now:        now,
		recorder:   stats.NewRecorder(),
	}
}

// Run plays rounds until the player declines another or input runs out,
// then prints the session summary.
func (l *Loop) Run() error {
	l.render.Intro(l.lists.Length, l.maxGuesses)
	for {
		if eof := l.playRound(); eof {
			break
		}
		l.render.PlayAgain()
		line, ok := l.readLine()
		if !ok || !strings.EqualFold(strings.TrimSpace(line), "y") {
			break
		}
		fmt.Fprintln(l.out)
	}
	l.render.Summary(l.recorder.Snapshot())
	return nil
}

// playRound runs a single round. It reports true when input is exhausted,
// which ends the session without a play-again prompt.
func (l *Loop) playRound() (eof bool) {
	answer := l.lists.Random(l.rng)
	round := game.New(answer, l.maxGuesses, l.lists)
	round.Strict = l.strict
	start := l.now()

	l.render.EmptyGrid(round.Length())
	for {
		l.render.Prompt()
		line, ok := l.readLine()
		if !ok {
			fmt.Fprintln(l.out)
			l.render.Quit(answer, l.now().Sub(start))
			l.recorder.RecordQuit(l.now().Sub(start))
			return true
		}
		guess := stripWhitespace(line)
		if guess == stopWord {
			l.render.Quit(answer, l.now().Sub(start))
			l.recorder.RecordQuit(l.now().Sub(start))
			return false
		}

		marks, state, err := round.Play(guess)
		if err != nil {
			l.render.Reject(err)
			continue
		}
		l.render.Grid(round.Guesses[len(round.Guesses)-1], marks)

		switch state {
		case game.StateWon:
			elapsed := l.now().Sub(start)
			l.render.Win(answer, len(round.Guesses), elapsed)
			l.recorder.RecordWin(len(round.Guesses), elapsed)
			return false
		case game.StateLost:
			elapsed := l.now().Sub(start)
			l.render.Loss(answer, elapsed)
			l.recorder.RecordLoss(elapsed)
			return false
		}
	}
}

// readLine reads the next input line. ok is false at EOF or read error.
func (l *Loop) readLine() (line string, ok bool) {
	if !l.in.Scan() {
		return "", false
	}
	return l.in.Text(), true
}

// stripWhitespace scrubs all whitespace from a guess, mirroring how lines
// are cleaned before validation.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
