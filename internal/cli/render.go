// internal/cli/render.go
//
// Terminal rendering for the interactive game.
// Responsibilities:
//   - Intro banner with the rules and the color legend.
//   - Bordered guess grid: exact letters green, present letters yellow,
//     absent letters plain bold.
//   - Result and rejection messages, elapsed-time report.
//
// Styling goes through a lipgloss renderer bound to the output writer, so
// color degrades automatically for non-TTY writers, and a plain mark row
// (`=` exact, `?` present, `.` absent) is added whenever the profile has
// no color at all.

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jjudes/wordle/internal/game"
	"github.com/jjudes/wordle/internal/stats"
)

// stopWord ends the current round when entered as a guess.
const stopWord = "!"

type Renderer struct {
	out io.Writer
	lip *lipgloss.Renderer

	exact   lipgloss.Style
	present lipgloss.Style
	letter  lipgloss.Style
	banner  lipgloss.Style
}

// NewRenderer builds a Renderer for out. With noColor the color profile is
// forced to ASCII regardless of what the writer supports.
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	lip := lipgloss.NewRenderer(out)
	if noColor {
		lip.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		out:     out,
		lip:     lip,
		exact:   lip.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		present: lip.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		letter:  lip.NewStyle().Bold(true),
		banner:  lip.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
	}
}

// plain reports whether the output cannot carry color, in which case the
// grid needs an explicit mark row.
func (r *Renderer) plain() bool { return r.lip.ColorProfile() == termenv.Ascii }

// Intro prints the welcome banner and the rules for the configured
// dimensions.
func (r *Renderer) Intro(length, maxGuesses int) {
	rule := strings.Repeat("-", 40)
	fmt.Fprintln(r.out, r.banner.Render("Welcome to Wordle!"))
	fmt.Fprintln(r.out, rule)
	fmt.Fprintf(r.out, "The goal is to guess a secret %d letter word.\n", length)
	fmt.Fprintf(r.out, "Each turn you may guess any %d letter word from the dictionary.\n", length)
	if r.plain() {
		fmt.Fprintln(r.out, "Letters in the right place are marked '=' below the grid.")
		fmt.Fprintln(r.out, "Letters in the word but out of place are marked '?'.")
	} else {
		fmt.Fprintf(r.out, "Letters in the right place are shown %s.\n", r.exact.Render("green"))
		fmt.Fprintf(r.out, "Letters in the word but out of place are shown %s.\n", r.present.Render("yellow"))
	}
	fmt.Fprintf(r.out, "You get %d guesses. Enter %s at any time to give up.\n", maxGuesses, stopWord)
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out)
}

// EmptyGrid prints the blank grid row shown before the first guess.
func (r *Renderer) EmptyGrid(length int) {
	boundary := strings.Repeat("+---", length) + "+"
	row := strings.Repeat("|   ", length) + "|"
	fmt.Fprintf(r.out, "%s\n%s\n%s\n", boundary, row, boundary)
}

// Grid prints one bordered grid row for an accepted guess, with each
// letter styled by its mark.
func (r *Renderer) Grid(guess string, marks []game.Mark) {
	boundary := strings.Repeat("+---", len(marks)) + "+"

	var row strings.Builder
	for i, m := range marks {
		letter := string(guess[i])
		switch m {
		case game.MarkExact:
			letter = r.exact.Render(letter)
		case game.MarkPresent:
			letter = r.present.Render(letter)
		default:
			letter = r.letter.Render(letter)
		}
		row.WriteString("| " + letter + " ")
	}
	row.WriteString("|")

	fmt.Fprintf(r.out, "%s\n%s\n%s\n", boundary, row.String(), boundary)
	if r.plain() {
		var markRow strings.Builder
		for _, m := range marks {
			switch m {
			case game.MarkExact:
				markRow.WriteString("  = ")
			case game.MarkPresent:
				markRow.WriteString("  ? ")
			default:
				markRow.WriteString("  . ")
			}
		}
		fmt.Fprintln(r.out, markRow.String())
	}
}

// Prompt asks for the next guess. No trailing newline so input stays on
// the same line.
func (r *Renderer) Prompt() { fmt.Fprint(r.out, "Enter your guess: ") }

// Reject explains why a guess was not accepted.
func (r *Renderer) Reject(err error) {
	msg := err.Error()
	if msg != "" {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	fmt.Fprintf(r.out, "%s. Try again!\n\n", msg)
}

// Win prints the victory message for a round.
func (r *Renderer) Win(answer string, guesses int, elapsed time.Duration) {
	fmt.Fprintf(r.out, "Congratulations! You correctly guessed the secret word %s with %d guesses!\n",
		r.exact.Render(answer), guesses)
	r.elapsed(elapsed)
}

// Loss prints the out-of-guesses message and reveals the answer.
func (r *Renderer) Loss(answer string, elapsed time.Duration) {
	fmt.Fprintf(r.out, "Good try! The secret word was %s.\n", r.exact.Render(answer))
	r.elapsed(elapsed)
}

// Quit prints the gave-up message and reveals the answer.
func (r *Renderer) Quit(answer string, elapsed time.Duration) {
	fmt.Fprintf(r.out, "Thanks for playing! The secret word was %s.\n", r.exact.Render(answer))
	r.elapsed(elapsed)
}

// PlayAgain asks whether to start another round.
func (r *Renderer) PlayAgain() { fmt.Fprint(r.out, "Play again? [y/N] ") }

// Summary prints the session tallies once the player stops.
func (r *Renderer) Summary(s stats.Snapshot) {
	if s.Played <= 1 {
		return
	}
	fmt.Fprintf(r.out, "\nRounds played: %d (won %d, lost %d, abandoned %d)\n",
		s.Played, s.Won, s.Lost, s.Quit)
	for guesses := 1; guesses <= maxDistributionKey(s.Distribution); guesses++ {
		if n := s.Distribution[guesses]; n > 0 {
			fmt.Fprintf(r.out, "  won in %d: %d\n", guesses, n)
		}
	}
	fmt.Fprintf(r.out, "Total time: %s\n", formatElapsed(s.Total))
}

func (r *Renderer) elapsed(d time.Duration) {
	fmt.Fprintf(r.out, "Time elapsed: %s\n", formatElapsed(d))
}

// formatElapsed reports seconds below a minute, minutes above.
func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1f seconds", d.Seconds())
	}
	return fmt.Sprintf("%.1f minutes", d.Minutes())
}

func maxDistributionKey(dist map[int]int) int {
	max := 0
	for k := range dist {
		if k > max {
			max = k
		}
	}
	return max
}
