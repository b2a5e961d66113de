package game

import (
	"errors"
	"testing"
)

// dictSet is a minimal Dictionary for tests.
type dictSet map[string]bool

func (d dictSet) IsAllowed(w string) bool { return d[w] }

func marksEqual(a, b []Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScore(t *testing.T) {
	e, p, a := MarkExact, MarkPresent, MarkAbsent
	cases := []struct {
		name   string
		answer string
		guess  string
		want   []Mark
	}{
		{"all exact", "crane", "crane", []Mark{e, e, e, e, e}},
		{"all absent", "crane", "pilot", []Mark{a, a, a, a, a}},
		{"duplicate letters not double counted", "allow", "lolly",
			[]Mark{p, p, e, a, a}},
		{"present and exact mix", "abbey", "babes",
			[]Mark{p, p, e, e, a}},
		{"repeated guess letter beyond answer count", "crane", "eeeee",
			[]Mark{a, a, a, a, e}},
		{"shorter words", "go", "og", []Mark{p, p}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.answer, tc.guess)
			if len(got) != len(tc.answer) {
				t.Fatalf("feedback length = %d, want %d", len(got), len(tc.answer))
			}
			if !marksEqual(got, tc.want) {
				t.Errorf("Score(%q, %q) = %v, want %v", tc.answer, tc.guess, got, tc.want)
			}
		})
	}
}

func TestPlayRejections(t *testing.T) {
	dict := dictSet{"crane": true, "pilot": true}
	cases := []struct {
		name  string
		guess string
	}{
		{"too short", "cane"},
		{"too long", "cranes"},
		{"empty", ""},
		{"non alphabetic", "cr4ne"},
		{"not in dictionary", "zzzzz"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := New("crane", 6, dict)
			_, state, err := r.Play(tc.guess)
			if err == nil {
				t.Fatalf("Play(%q) accepted, want rejection", tc.guess)
			}
			if state != StatePlaying {
				t.Errorf("state = %v, want %v", state, StatePlaying)
			}
			if len(r.Guesses) != 0 || r.Remaining() != 6 {
				t.Errorf("rejection consumed an attempt: guesses=%d remaining=%d",
					len(r.Guesses), r.Remaining())
			}
		})
	}
}

func TestPlayNormalizesInput(t *testing.T) {
	r := New("CRANE", 6, dictSet{"crane": true})
	marks, state, err := r.Play("  CrAnE ")
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if state != StateWon {
		t.Errorf("state = %v, want %v", state, StateWon)
	}
	if !allExact(marks) {
		t.Errorf("marks = %v, want all exact", marks)
	}
}

func TestStateTransitions(t *testing.T) {
	t.Run("loss after max guesses", func(t *testing.T) {
		r := New("crane", 2, nil)
		if _, state, err := r.Play("pilot"); err != nil || state != StatePlaying {
			t.Fatalf("first guess: state=%v err=%v", state, err)
		}
		_, state, err := r.Play("brick")
		if err != nil {
			t.Fatalf("second guess: %v", err)
		}
		if state != StateLost || !r.Finished || r.Won {
			t.Errorf("state=%v finished=%v won=%v, want lost", state, r.Finished, r.Won)
		}
	})

	t.Run("win on last guess beats loss", func(t *testing.T) {
		r := New("crane", 2, nil)
		_, _, _ = r.Play("pilot")
		_, state, err := r.Play("crane")
		if err != nil {
			t.Fatalf("winning guess: %v", err)
		}
		if state != StateWon || !r.Won {
			t.Errorf("state=%v won=%v, want win", state, r.Won)
		}
	})

	t.Run("immediate win", func(t *testing.T) {
		r := New("crane", 6, nil)
		_, state, err := r.Play("crane")
		if err != nil || state != StateWon {
			t.Fatalf("state=%v err=%v, want immediate win", state, err)
		}
	})

	t.Run("finished round rejects play", func(t *testing.T) {
		r := New("crane", 6, nil)
		_, _, _ = r.Play("crane")
		if _, _, err := r.Play("crane"); !errors.Is(err, ErrRoundFinished) {
			t.Errorf("err = %v, want ErrRoundFinished", err)
		}
	})
}

func TestStrictMode(t *testing.T) {
	// First guess "caste" against "crate" marks c/t/e exact and a present.
	setup := func() *Round {
		r := New("crate", 6, nil)
		r.Strict = true
		if _, _, err := r.Play("caste"); err != nil {
			t.Fatalf("setup guess: %v", err)
		}
		return r
	}

	t.Run("repeat of previous guess rejected", func(t *testing.T) {
		r := setup()
		if _, _, err := r.Play("caste"); err == nil {
			t.Error("repeated guess accepted")
		}
	})

	t.Run("changing an exact letter rejected", func(t *testing.T) {
		r := setup()
		if _, _, err := r.Play("brake"); err == nil {
			t.Error("guess dropping a pinned letter accepted")
		}
	})

	t.Run("dropping a present letter rejected", func(t *testing.T) {
		r := setup()
		if _, _, err := r.Play("chute"); err == nil {
			t.Error("guess omitting a present letter accepted")
		}
	})

	t.Run("conforming guess accepted", func(t *testing.T) {
		r := setup()
		if _, state, err := r.Play("crate"); err != nil || state != StateWon {
			t.Errorf("state=%v err=%v, want win", state, err)
		}
	})

	t.Run("rejections do not consume attempts", func(t *testing.T) {
		r := setup()
		_, _, _ = r.Play("caste")
		_, _, _ = r.Play("chute")
		if len(r.Guesses) != 1 {
			t.Errorf("guesses = %d, want 1", len(r.Guesses))
		}
	})

	t.Run("first guess unconstrained", func(t *testing.T) {
		r := New("crate", 6, nil)
		r.Strict = true
		if _, _, err := r.Play("pilot"); err != nil {
			t.Errorf("first guess rejected: %v", err)
		}
	})
}
