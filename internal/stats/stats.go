// internal/stats/stats.go
//
// In-process tally of finished rounds. This is a lightweight recorder used
// for the end-of-session summary; nothing is written to disk and state is
// lost when the process exits.
//
// Characteristics:
//   - Counts wins, losses, and abandoned rounds, plus a distribution of
//     winning guess counts.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes
//     exclusive).

package stats

import (
	"sync"
	"time"
)

// Recorder accumulates round results for the running session.
type Recorder struct {
	mu           sync.RWMutex
	won          int
	lost         int
	quit         int
	distribution map[int]int // winning rounds keyed by guesses used
	total        time.Duration
}

// Snapshot is a point-in-time copy of the recorder's tallies.
type Snapshot struct {
	Played       int
	Won          int
	Lost         int
	Quit         int
	Distribution map[int]int
	Total        time.Duration
}

// NewRecorder constructs an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{distribution: make(map[int]int)}
}

// RecordWin tallies a won round with the number of guesses it took.
func (r *Recorder) RecordWin(guesses int, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.won++
	r.distribution[guesses]++
	r.total += elapsed
}

// RecordLoss tallies a round that ran out of guesses.
func (r *Recorder) RecordLoss(elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lost++
	r.total += elapsed
}

// RecordQuit tallies a round the player abandoned.
func (r *Recorder) RecordQuit(elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quit++
	r.total += elapsed
}

// Snapshot returns a copy of the current tallies.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dist := make(map[int]int, len(r.distribution))
	for k, v := range r.distribution {
		dist[k] = v
	}
	return Snapshot{
		Played:       r.won + r.lost + r.quit,
		Won:          r.won,
		Lost:         r.lost,
		Quit:         r.quit,
		Distribution: dist,
		Total:        r.total,
	}
}
