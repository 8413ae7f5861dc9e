// Package battle drives the pre-reveal shake animation of a round.
package battle

import (
	"math"
	"time"

	"github.com/vovakirdan/rps-arcade/internal/rps"
)

const (
	// TotalFrames is the frame budget of one battle animation.
	TotalFrames = 60
	// FrameInterval is how often the scheduler ticks the animator.
	FrameInterval = 16 * time.Millisecond
	// FreezeAt is the normalized time after which the shake stops and
	// the contestants hold their final pose.
	FreezeAt = 0.75
	// BaseAmplitude is the shake amplitude at t=0 in logical pixels.
	BaseAmplitude = 40.0
)

// Animator counts battle frames. It is a clock driver: while running,
// each Tick advances one frame until the budget is spent.
type Animator struct {
	frame    int
	ready    bool
	running  bool
	player   rps.Choice
	computer rps.Choice
}

// NewAnimator creates an idle animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// Start begins a new battle between the two choices. A running battle
// is abandoned first.
func (a *Animator) Start(player, computer rps.Choice) {
	a.Stop()
	a.frame = 0
	a.ready = false
	a.player = player
	a.computer = computer
	a.running = true
}

// Tick advances one frame. On reaching TotalFrames the animator stops
// itself and marks the result ready; later ticks change nothing.
func (a *Animator) Tick() {
	if !a.running {
		return
	}
	a.frame++
	if a.frame >= TotalFrames {
		a.frame = TotalFrames
		a.ready = true
		a.running = false
	}
}

// Stop halts frame advancement and keeps the current frame.
func (a *Animator) Stop() {
	a.running = false
}

// Reset returns the animator to its idle state.
func (a *Animator) Reset() {
	a.Stop()
	a.frame = 0
	a.ready = false
	a.player = 0
	a.computer = 0
}

// IsRunning reports whether frames are still being advanced.
func (a *Animator) IsRunning() bool { return a.running }

// Frame returns the current frame in [0, TotalFrames].
func (a *Animator) Frame() int { return a.frame }

// ResultReady reports whether the frame budget has been spent.
func (a *Animator) ResultReady() bool { return a.ready }

// Choices returns the contestants of the current battle.
func (a *Animator) Choices() (player, computer rps.Choice) {
	return a.player, a.computer
}

// Progress is the normalized time frame/TotalFrames.
func (a *Animator) Progress() float64 {
	return float64(a.frame) / TotalFrames
}

// Shaking reports whether the contestants are in the shake phase.
func (a *Animator) Shaking() bool {
	return a.frame > 0 && !a.ready && a.Progress() < FreezeAt
}

// Offset is the vertical displacement for the current frame, zero once
// the shake has frozen.
func (a *Animator) Offset(base float64) float64 {
	if !a.Shaking() {
		return 0
	}
	return Displacement(a.Progress(), base)
}

// Displacement computes the shake curve: a sine whose phase grows with
// t² and whose amplitude grows linearly from base to 2·base.
func Displacement(t, base float64) float64 {
	if t >= FreezeAt || t < 0 {
		return 0
	}
	phase := 6 * t * t
	amp := base * (1 + t)
	return amp * math.Sin(phase*math.Pi)
}
