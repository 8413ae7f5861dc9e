// Package fx is the celebration particle engine: confetti, sparks and
// fireworks advanced one tick at a time and owned by a single Field.
package fx

import (
	"github.com/vovakirdan/rps-arcade/internal/core"
	"github.com/vovakirdan/rps-arcade/internal/draw"
)

// Gravity added to vy on every particle tick.
const Gravity = 0.12

// Rand is the randomness the engine draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Particle is the shared state of confetti and sparks. A particle is alive
// while Life > 0; each Update integrates velocity and spends one life.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   core.Color
	Life    int
	MaxLife int
	Size    int
}

// Alive reports whether the particle still has life left.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Ratio is the remaining-life fraction clamped to [0, 1].
func (p *Particle) Ratio() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(float64(p.Life)/float64(p.MaxLife), 0, 1)
}

// Alpha is the draw opacity, 255 at full life fading linearly to 0.
func (p *Particle) Alpha() uint8 {
	return uint8(255 * p.Ratio())
}

func (p *Particle) step() {
	p.X += p.VX
	p.Y += p.VY
	p.VY += Gravity
	p.Life--
}

func pick(rng Rand) core.Color {
	return core.Palette[rng.Intn(len(core.Palette))]
}

// Confetti is a slowly falling disc.
type Confetti struct {
	Particle
}

// Ambient confetti timing: 5 s of 40 ms ticks.
const (
	ambientDurationMs = 5000
	TickIntervalMs    = 40
)

// NewAmbientConfetti creates a small burst particle with a strong upward
// kick and a lifetime of about five seconds.
func NewAmbientConfetti(x, y float64, rng Rand) *Confetti {
	c := &Confetti{Particle{
		X:     x,
		Y:     y,
		VX:    (rng.Float64() - 0.5) * 30,
		VY:    -24 - rng.Float64()*24,
		Color: pick(rng),
	}}
	variance := int(rng.Float64()*40) - 20
	c.MaxLife = max(10, ambientDurationMs/TickIntervalMs+variance)
	c.Life = c.MaxLife
	c.Size = 18 + int(rng.Float64()*14)
	return c
}

// NewCelebrationConfetti creates confetti with caller-chosen lifetime and
// size. vxMul spreads horizontal speed around zero; vyBase bounds the
// initial upward speed.
func NewCelebrationConfetti(x, y float64, life, size int, vxMul, vyBase float64, rng Rand) *Confetti {
	c := &Confetti{Particle{
		X:     x,
		Y:     y,
		VX:    (rng.Float64() - 0.5) * vxMul,
		VY:    -(rng.Float64() * vyBase),
		Color: pick(rng),
	}}
	c.MaxLife = max(10, life)
	c.Life = c.MaxLife
	c.Size = max(4, size)
	return c
}

// Update advances the confetti by one tick.
func (c *Confetti) Update() {
	c.step()
}

// Draw paints the confetti as a disc whose bounding box starts at (X, Y).
func (c *Confetti) Draw(cv draw.Canvas) {
	r := float64(c.Size) / 2
	cv.FillCircle(c.X+r, c.Y+r, r, c.Color, c.Alpha())
}

// Spark drag factors applied after gravity each tick.
const (
	sparkDragX = 0.995
	sparkDragY = 0.998
)

// Spark is firework debris: gravity plus air drag.
type Spark struct {
	Particle
}

// NewSpark creates a spark with the given velocity and lifetime.
func NewSpark(x, y, vx, vy float64, life int, c core.Color) Spark {
	return Spark{Particle{X: x, Y: y, VX: vx, VY: vy, Color: c, Life: life, MaxLife: life}}
}

// Update advances the spark by one tick.
func (s *Spark) Update() {
	s.step()
	s.VX *= sparkDragX
	s.VY *= sparkDragY
}

// Radius shrinks linearly with remaining life, never below 2.
func (s *Spark) Radius() int {
	return max(2, int(4*s.Ratio()))
}

// Draw paints the spark as a small disc centered on (X, Y).
func (s *Spark) Draw(cv draw.Canvas) {
	cv.FillCircle(s.X, s.Y, float64(s.Radius()), s.Color, s.Alpha())
}
