// Package game runs a rock-paper-scissors match: it resolves rounds,
// keeps the score and drives the battle, reveal and celebration clocks
// from one scheduler that the front-end advances every frame.
package game

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rps-arcade/internal/battle"
	"github.com/vovakirdan/rps-arcade/internal/clock"
	"github.com/vovakirdan/rps-arcade/internal/config"
	"github.com/vovakirdan/rps-arcade/internal/core"
	"github.com/vovakirdan/rps-arcade/internal/draw"
	"github.com/vovakirdan/rps-arcade/internal/fx"
	"github.com/vovakirdan/rps-arcade/internal/likeness"
	"github.com/vovakirdan/rps-arcade/internal/overlay"
	"github.com/vovakirdan/rps-arcade/internal/rps"
	"github.com/vovakirdan/rps-arcade/internal/surface"
)

// ErrMatchOver is returned by Play once either side has reached the target.
var ErrMatchOver = errors.New("game: match is over")

// Rand is the randomness shared by the computer opponent and the particles.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// OverlayLoader opens the optional celebration overlay.
type OverlayLoader func(path string) (*overlay.Overlay, error)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for best-effort failures.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithRand injects the random source instead of seeding one from the runtime config.
func WithRand(r Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithLikeness sets the picture source for contestants.
func WithLikeness(lk surface.Likeness) Option {
	return func(g *Game) { g.likeness = lk }
}

// WithOverlayLoader replaces the celebration overlay loader.
func WithOverlayLoader(fn OverlayLoader) Option {
	return func(g *Game) { g.loadOverlay = fn }
}

// Game is one match session.
type Game struct {
	cfg config.RPSConfig
	rt  core.RuntimeConfig
	log *log.Logger
	rng Rand

	resolver *rps.Resolver
	board    *rps.Scoreboard
	anim     *battle.Animator
	field    *fx.Field
	surf     *surface.Surface
	sched    *clock.Scheduler
	reveal   *clock.Delay

	likeness    surface.Likeness
	loadOverlay OverlayLoader
	overlay     *overlay.Overlay

	history *History
	cells   *draw.Cells

	viewW, viewH int
	tick         uint64
}

// New creates a game from the loaded configuration.
func New(cfg config.RPSConfig, rt core.RuntimeConfig, opts ...Option) *Game {
	cfg.Validate()
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	g := &Game{
		cfg:         cfg,
		rt:          rt,
		log:         log.New(io.Discard),
		loadOverlay: overlay.Load,
		viewW:       cfg.Display.Width,
		viewH:       cfg.Display.Height,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(rt.Seed))
	}
	if g.likeness == nil {
		g.likeness = likeness.NewBuiltin(likeness.IconSize(cfg.Display.ButtonSize), likeness.LiveStyle)
	}

	g.resolver = rps.NewResolver(g.rng)
	g.board = rps.NewScoreboard(cfg.Match.TargetWins)
	g.anim = battle.NewAnimator()
	fieldCfg := fx.DefaultConfig()
	fieldCfg.DurationMs = cfg.Celebration.DurationMs
	g.field = fx.NewField(fieldCfg, g.rng)
	g.surf = surface.New(g.anim, g.field, surface.Labels{
		Win:  cfg.Labels.Win,
		Lose: cfg.Labels.Lose,
		Draw: cfg.Labels.Draw,
		Idle: cfg.Labels.Idle,
	})
	g.surf.SetButtonSize(cfg.Display.ButtonSize)
	g.surf.SetAmplitude(cfg.Battle.BaseAmplitude)
	g.history = NewHistory(maxHistory)

	g.reveal = clock.NewDelay(time.Duration(cfg.Match.RevealDelayMs) * time.Millisecond)
	g.sched = clock.NewScheduler()
	g.sched.Every(battle.FrameInterval, g.anim)
	g.sched.Every(time.Duration(g.field.Config().TickIntervalMs)*time.Millisecond, g.field)
	g.sched.Every(g.revealInterval(), g.reveal)
	return g
}

// revealInterval is the reveal delay; a zero delay fires on the next frame.
func (g *Game) revealInterval() time.Duration {
	if d := g.reveal.Duration(); d > 0 {
		return d
	}
	return time.Millisecond
}

// Config returns the effective configuration.
func (g *Game) Config() config.RPSConfig {
	return g.cfg
}

// Play starts a round for the player's choice. A pending reveal from an
// earlier round is dropped. Plays after the match is over are rejected.
func (g *Game) Play(choice rps.Choice) (rps.Round, error) {
	if g.board.MatchOver() {
		return rps.Round{}, ErrMatchOver
	}
	round, err := g.resolver.Play(choice)
	if err != nil {
		return rps.Round{}, err
	}

	g.surf.StartRound(round.Player, round.Computer)
	g.sched.Reset(g.anim)
	g.reveal.Start(func() { g.finishRound(round) })
	g.sched.Reset(g.reveal)
	return round, nil
}

// finishRound runs when the reveal delay expires.
func (g *Game) finishRound(round rps.Round) {
	g.board.Record(round.Outcome)
	g.surf.ShowResult(round.Outcome)
	g.history.Add(round, g.board.Player(), g.board.Computer())

	if g.board.PlayerReachedTarget() {
		g.celebrate()
	}
}

// celebrate starts the particle celebration and, when the asset is
// present, the overlay animation.
func (g *Game) celebrate() {
	g.field.StartCelebration(g.viewW, g.viewH)
	g.sched.Reset(g.field)

	if g.overlay == nil {
		path := g.cfg.Celebration.OverlayPath
		if path == "" {
			return
		}
		o, err := g.loadOverlay(path)
		if err != nil {
			g.log.Debug("celebration overlay unavailable", "path", path, "err", err)
			return
		}
		g.overlay = o
		g.sched.Every(overlay.TickInterval, o)
	}
	g.overlay.Start(time.Duration(g.cfg.Celebration.DurationMs) * time.Millisecond)
	g.sched.Reset(g.overlay)
}

// Step applies one frame of input and advances every clock by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.processInput(input)
	g.Advance(time.Second / time.Duration(g.rt.TickRate))
	return core.StepResult{State: g.State()}
}

// Advance moves the clocks forward by elapsed wall time.
func (g *Game) Advance(elapsed time.Duration) {
	g.tick++
	g.sched.Advance(elapsed)
}

func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionRock):
		g.play(rps.Rock)
	case input.Has(core.ActionPaper):
		g.play(rps.Paper)
	case input.Has(core.ActionScissors):
		g.play(rps.Scissors)
	}
	if input.Has(core.ActionReset) {
		g.ResetMatch()
	}
	if input.Has(core.ActionTargetUp) {
		g.SetTarget(g.board.Target() + 1)
	}
	if input.Has(core.ActionTargetDown) {
		g.SetTarget(g.board.Target() - 1)
	}
}

func (g *Game) play(c rps.Choice) {
	if _, err := g.Play(c); err != nil && !errors.Is(err, ErrMatchOver) {
		g.log.Warn("round rejected", "choice", c, "err", err)
	}
}

// ResetMatch zeroes the scores and returns the play area to idle. The
// target is kept. A pending reveal and any celebration are cancelled.
func (g *Game) ResetMatch() {
	g.board.Reset()
	g.reveal.Stop()
	g.surf.Reset()
	g.field.Stop()
	if g.overlay != nil {
		g.overlay.Stop()
	}
}

// SetTarget changes the wins needed to take the match (clamped to 1..100).
func (g *Game) SetTarget(n int) {
	g.board.SetTarget(n)
}

// SetButtonSize resizes the contestant pictures.
func (g *Game) SetButtonSize(n int) {
	n = core.Clamp(n, config.MinButtonSize, config.MaxButtonSize)
	g.cfg.Display.ButtonSize = n
	g.surf.SetButtonSize(n)
}

// SetViewport sets the logical drawing size used for new celebrations.
func (g *Game) SetViewport(w, h int) {
	if w > 0 && h > 0 {
		g.viewW, g.viewH = w, h
	}
}

// Viewport returns the logical drawing size.
func (g *Game) Viewport() (int, int) {
	return g.viewW, g.viewH
}

// Draw paints the play area onto a canvas.
func (g *Game) Draw(cv draw.Canvas) {
	g.surf.Draw(cv, g.likeness)
}

// Overlay returns the playing celebration overlay; ok is false when
// none is playing.
func (g *Game) Overlay() (o *overlay.Overlay, ok bool) {
	if g.overlay == nil || !g.overlay.IsRunning() {
		return nil, false
	}
	return g.overlay, true
}

// Phase returns what the play area is showing.
func (g *Game) Phase() surface.Phase {
	return g.surf.Phase()
}

// History returns the rounds played this session, oldest first.
func (g *Game) History() []Entry {
	return g.history.Entries()
}

// Instruction returns the line under the play area and its color.
func (g *Game) Instruction() (string, core.Color) {
	winner, over := g.board.Winner()
	switch {
	case over && winner == rps.Win:
		return g.cfg.Labels.MatchWon, core.ColorWin
	case over:
		return g.cfg.Labels.MatchLost, core.ColorLose
	default:
		return g.cfg.Labels.Prompt, core.ColorWhite
	}
}

// CanPlay reports whether weapon buttons are enabled.
func (g *Game) CanPlay() bool {
	return !g.board.MatchOver()
}

// State returns the match summary.
func (g *Game) State() core.GameState {
	winner, over := g.board.Winner()
	return core.GameState{
		PlayerScore:   g.board.Player(),
		ComputerScore: g.board.Computer(),
		TargetWins:    g.board.Target(),
		Rounds:        g.history.Total(),
		MatchOver:     over,
		PlayerWon:     over && winner == rps.Win,
		Celebrating:   g.field.IsRunning(),
	}
}
