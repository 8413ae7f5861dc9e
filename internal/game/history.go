package game

import "github.com/vovakirdan/rps-arcade/internal/rps"

// maxHistory bounds the rounds kept for the history view.
const maxHistory = 100

// Entry is one finished round with the score right after it.
type Entry struct {
	N        int // 1-based round number within the session
	Round    rps.Round
	Player   int
	Computer int
}

// History is an in-memory ring of finished rounds. It is never persisted.
type History struct {
	limit   int
	total   int
	entries []Entry
}

// NewHistory creates a history keeping at most limit rounds.
func NewHistory(limit int) *History {
	return &History{limit: max(limit, 1)}
}

// Add appends a round, dropping the oldest once the limit is reached.
func (h *History) Add(r rps.Round, player, computer int) {
	h.total++
	if len(h.entries) == h.limit {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, Entry{N: h.total, Round: r, Player: player, Computer: computer})
}

// Entries returns a copy of the kept rounds, oldest first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Total counts every round added, including dropped ones.
func (h *History) Total() int {
	return h.total
}

// Tally counts wins, losses and draws among the kept rounds.
func (h *History) Tally() (wins, losses, draws int) {
	for _, e := range h.entries {
		switch e.Round.Outcome {
		case rps.Win:
			wins++
		case rps.Lose:
			losses++
		default:
			draws++
		}
	}
	return wins, losses, draws
}
