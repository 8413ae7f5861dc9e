package fx

import (
	"math"

	"github.com/vovakirdan/rps-arcade/internal/core"
	"github.com/vovakirdan/rps-arcade/internal/draw"
)

const (
	rocketGravity = 0.18
	rocketRadius  = 3

	minSparks   = 18
	sparkSpread = 36
	upwardBias  = -1.0
)

// Firework is a rocket that rises until its ascent stalls, then bursts
// into sparks exactly once. It owns its sparks.
type Firework struct {
	X, Y     float64
	VY       float64
	Color    core.Color
	exploded bool
	sparks   []Spark
	rng      Rand
}

// NewFirework launches a rocket from (x, y) with a random upward speed.
func NewFirework(x, y float64, rng Rand) *Firework {
	return &Firework{
		X:     x,
		Y:     y,
		VY:    -(8 + rng.Float64()*6),
		Color: pick(rng),
		rng:   rng,
	}
}

// Exploded reports whether the rocket has burst.
func (f *Firework) Exploded() bool {
	return f.exploded
}

// Sparks returns the live sparks. The slice is owned by the firework.
func (f *Firework) Sparks() []Spark {
	return f.sparks
}

// Finished reports whether the firework has burst and all sparks are gone.
func (f *Firework) Finished() bool {
	return f.exploded && len(f.sparks) == 0
}

// Update ascends the rocket, or advances and evicts sparks after the burst.
// The burst happens on the tick where the ascent speed reaches zero; the
// new sparks first move on the following tick.
func (f *Firework) Update() {
	if !f.exploded {
		f.Y += f.VY
		f.VY += rocketGravity
		if f.VY >= 0 {
			f.explode()
		}
		return
	}

	live := f.sparks[:0]
	for i := range f.sparks {
		f.sparks[i].Update()
		if f.sparks[i].Alive() {
			live = append(live, f.sparks[i])
		}
	}
	clear(f.sparks[len(live):])
	f.sparks = live
}

func (f *Firework) explode() {
	if f.exploded {
		return
	}
	f.exploded = true

	count := minSparks + int(f.rng.Float64()*sparkSpread)
	base := 2.5 + f.rng.Float64()*3.5
	f.sparks = make([]Spark, 0, count)
	for i := 0; i < count; i++ {
		angle := f.rng.Float64() * 2 * math.Pi
		speed := base * (0.6 + f.rng.Float64()*1.4)
		vx := math.Cos(angle) * speed
		vy := math.Sin(angle)*speed + upwardBias
		life := 30 + int(f.rng.Float64()*60)
		c := core.RGB(
			jitter(f.Color.R, f.rng),
			jitter(f.Color.G, f.rng),
			jitter(f.Color.B, f.rng),
		)
		f.sparks = append(f.sparks, NewSpark(f.X, f.Y, vx, vy, life, c))
	}
}

// jitter moves a channel by up to ±20, clamped to a byte.
func jitter(v uint8, rng Rand) uint8 {
	return uint8(core.Clamp(int(v)+int(rng.Float64()*40-20), 0, 255))
}

// Draw paints the rocket head, or every spark after the burst.
func (f *Firework) Draw(cv draw.Canvas) {
	if !f.exploded {
		cv.FillCircle(f.X, f.Y, rocketRadius, f.Color, 255)
		return
	}
	for i := range f.sparks {
		f.sparks[i].Draw(cv)
	}
}
