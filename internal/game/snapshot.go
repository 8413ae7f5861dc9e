package game

import "github.com/vovakirdan/rps-arcade/internal/surface"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick          uint64
	Phase         surface.Phase
	Frame         int
	PlayerScore   int
	ComputerScore int
	Target        int
	Rounds        int
	RevealPending bool
	Celebrating   bool
	Particles     int
	TicksLeft     int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:          g.tick,
		Phase:         g.surf.Phase(),
		Frame:         g.anim.Frame(),
		PlayerScore:   g.board.Player(),
		ComputerScore: g.board.Computer(),
		Target:        g.board.Target(),
		Rounds:        g.history.Total(),
		RevealPending: g.reveal.IsRunning(),
		Celebrating:   g.field.IsRunning(),
		Particles:     g.field.ParticleCount(),
		TicksLeft:     g.field.RemainingTicks(),
	}
}
