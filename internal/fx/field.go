package fx

import "github.com/vovakirdan/rps-arcade/internal/draw"

// Config tunes a celebration session.
type Config struct {
	DurationMs     int     // Celebration length
	TickIntervalMs int     // Driver interval; one Tick per interval
	SpawnChance    float64 // Per-tick chance of launching a new rocket
}

// DefaultConfig is a 15 s celebration ticked at 25 Hz.
func DefaultConfig() Config {
	return Config{
		DurationMs:     15000,
		TickIntervalMs: TickIntervalMs,
		SpawnChance:    0.25,
	}
}

// Celebration spawn bounds.
const (
	minConfetti     = 500
	maxConfetti     = 1200
	areaPerConfetti = 800
	minRockets      = 6
	maxRockets      = 16
	rocketSpacing   = 80
)

// Field owns every live confetti and firework of one celebration. At most
// one celebration is active; starting another discards the first. Field is
// a clock driver: the scheduler calls Tick once per TickIntervalMs.
type Field struct {
	cfg Config
	rng Rand

	confetti  []*Confetti
	fireworks []*Firework

	width, height int
	remaining     int
	active        bool
}

// NewField creates an idle field.
func NewField(cfg Config, rng Rand) *Field {
	def := DefaultConfig()
	if cfg.DurationMs <= 0 {
		cfg.DurationMs = def.DurationMs
	}
	if cfg.TickIntervalMs <= 0 {
		cfg.TickIntervalMs = def.TickIntervalMs
	}
	if cfg.SpawnChance < 0 {
		cfg.SpawnChance = 0
	}
	return &Field{cfg: cfg, rng: rng}
}

// Config returns the field's effective configuration.
func (f *Field) Config() Config {
	return f.cfg
}

// BudgetTicks is the number of ticks a celebration lasts.
func (f *Field) BudgetTicks() int {
	return max(1, f.cfg.DurationMs/f.cfg.TickIntervalMs)
}

// StartCelebration clears any running session and fills a width×height
// viewport with confetti and an initial volley of rockets.
func (f *Field) StartCelebration(width, height int) {
	f.Stop()

	f.width, f.height = width, height
	f.active = true
	ticks := f.BudgetTicks()
	f.remaining = ticks

	w, h := float64(width), float64(height)
	count := min(maxConfetti, max(minConfetti, width*height/areaPerConfetti))
	f.confetti = make([]*Confetti, 0, count)
	for i := 0; i < count; i++ {
		x := f.rng.Float64() * w
		y := f.rng.Float64() * h * 0.6
		size := 20 + int(f.rng.Float64()*30)
		life := ticks + int(f.rng.Float64()*40) - 20
		f.confetti = append(f.confetti, NewCelebrationConfetti(x, y, life, size, 60, 40, f.rng))
	}

	rockets := max(minRockets, min(maxRockets, width/rocketSpacing))
	for i := 0; i < rockets; i++ {
		x := f.rng.Float64() * max(1, w)
		f.fireworks = append(f.fireworks, NewFirework(x, h*0.9, f.rng))
	}
}

// Sprinkle adds n ambient confetti across the top of the viewport.
// It does nothing when no celebration is running.
func (f *Field) Sprinkle(n int) {
	if !f.active {
		return
	}
	for i := 0; i < n; i++ {
		x := f.rng.Float64() * float64(f.width)
		y := f.rng.Float64() * float64(f.height) * 0.6
		f.confetti = append(f.confetti, NewAmbientConfetti(x, y, f.rng))
	}
}

// Tick advances the celebration by one step: confetti move and expire,
// a rocket may launch, fireworks advance and finished ones are dropped,
// and the countdown ends the session when it reaches zero.
func (f *Field) Tick() {
	if !f.active {
		return
	}

	live := f.confetti[:0]
	for _, c := range f.confetti {
		c.Update()
		if c.Alive() {
			live = append(live, c)
		}
	}
	clear(f.confetti[len(live):])
	f.confetti = live

	if f.rng.Float64() < f.cfg.SpawnChance {
		x := f.rng.Float64() * float64(max(1, f.width))
		y := float64(f.height) * (0.85 + f.rng.Float64()*0.12)
		f.fireworks = append(f.fireworks, NewFirework(x, y, f.rng))
	}

	running := f.fireworks[:0]
	for _, fw := range f.fireworks {
		fw.Update()
		if !fw.Finished() {
			running = append(running, fw)
		}
	}
	clear(f.fireworks[len(running):])
	f.fireworks = running

	f.remaining--
	if f.remaining <= 0 {
		f.Stop()
	}
}

// Stop ends the session and drops every particle.
func (f *Field) Stop() {
	f.active = false
	f.remaining = 0
	f.confetti = nil
	f.fireworks = nil
}

// IsRunning reports whether a celebration is active.
func (f *Field) IsRunning() bool {
	return f.active
}

// RemainingTicks is the countdown until the session ends.
func (f *Field) RemainingTicks() int {
	return f.remaining
}

// Confetti returns the live confetti. Callers must not modify the slice.
func (f *Field) Confetti() []*Confetti {
	return f.confetti
}

// Fireworks returns the live fireworks. Callers must not modify the slice.
func (f *Field) Fireworks() []*Firework {
	return f.fireworks
}

// ParticleCount is confetti plus rockets plus sparks.
func (f *Field) ParticleCount() int {
	n := len(f.confetti)
	for _, fw := range f.fireworks {
		if fw.Exploded() {
			n += len(fw.Sparks())
		} else {
			n++
		}
	}
	return n
}

// Draw paints confetti first, then fireworks on top.
func (f *Field) Draw(cv draw.Canvas) {
	for _, c := range f.confetti {
		c.Draw(cv)
	}
	for _, fw := range f.fireworks {
		fw.Draw(cv)
	}
}
