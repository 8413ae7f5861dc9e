package rps

import "github.com/vovakirdan/rps-arcade/internal/core"

// Target wins bounds, matching the original spinner.
const (
	MinTarget     = 1
	MaxTarget     = 100
	DefaultTarget = 3
)

// Scoreboard keeps the running match score. It lives for one process;
// scores are never persisted.
type Scoreboard struct {
	player   int
	computer int
	target   int
}

// NewScoreboard creates a scoreboard with the given target (clamped).
func NewScoreboard(target int) *Scoreboard {
	b := &Scoreboard{}
	b.SetTarget(target)
	return b
}

// Record applies a round outcome: win scores for the player, lose for
// the computer, draw for nobody. Nothing is recorded once the match is over.
func (b *Scoreboard) Record(o Outcome) {
	if b.MatchOver() {
		return
	}
	switch o {
	case Win:
		b.player++
	case Lose:
		b.computer++
	}
}

// SetTarget changes the number of wins needed, clamped to [1, 100].
func (b *Scoreboard) SetTarget(n int) {
	b.target = core.Clamp(n, MinTarget, MaxTarget)
}

// Player returns the player's score.
func (b *Scoreboard) Player() int { return b.player }

// Computer returns the computer's score.
func (b *Scoreboard) Computer() int { return b.computer }

// Target returns the number of wins needed to take the match.
func (b *Scoreboard) Target() int { return b.target }

// Leader returns the higher of the two scores.
func (b *Scoreboard) Leader() int { return max(b.player, b.computer) }

// MatchOver reports whether either side has reached the target.
func (b *Scoreboard) MatchOver() bool {
	return b.player >= b.target || b.computer >= b.target
}

// PlayerReachedTarget reports whether the player has won the match.
func (b *Scoreboard) PlayerReachedTarget() bool {
	return b.player >= b.target
}

// Winner returns Win or Lose once the match is over; ok is false before.
func (b *Scoreboard) Winner() (o Outcome, ok bool) {
	switch {
	case b.player >= b.target:
		return Win, true
	case b.computer >= b.target:
		return Lose, true
	}
	return Draw, false
}

// Reset zeroes both scores and keeps the target.
func (b *Scoreboard) Reset() {
	b.player = 0
	b.computer = 0
}
