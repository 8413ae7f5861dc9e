// Package surface decides what the play area shows each frame. It reads
// the battle animator, the shown result and the celebration field and
// paints them onto a draw.Canvas. It never advances any of them.
package surface

import (
	"image"

	"github.com/vovakirdan/rps-arcade/internal/battle"
	"github.com/vovakirdan/rps-arcade/internal/core"
	"github.com/vovakirdan/rps-arcade/internal/draw"
	"github.com/vovakirdan/rps-arcade/internal/fx"
	"github.com/vovakirdan/rps-arcade/internal/likeness"
	"github.com/vovakirdan/rps-arcade/internal/rps"
)

// Phase is what the surface is currently showing.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseBattling
	PhaseRevealing
)

func (p Phase) String() string {
	switch p {
	case PhaseBattling:
		return "battling"
	case PhaseRevealing:
		return "revealing"
	default:
		return "idle"
	}
}

// Likeness resolves picture names to images.
type Likeness interface {
	Lookup(name string) (image.Image, bool)
}

// Labels are the texts the surface draws.
type Labels struct {
	Win  string
	Lose string
	Draw string
	Idle string
}

// DefaultLabels are the English texts.
func DefaultLabels() Labels {
	return Labels{Win: "YOU WIN!", Lose: "YOU LOSE!", Draw: "DRAW!", Idle: "?"}
}

// Layout constants in logical pixels, relative to the surface center.
const (
	battleLeftOffset  = -130
	battleRightOffset = 30
	imageTopOffset    = -50
	resultGap         = 40
	labelOffset       = -75
	labelSize         = 36
	idleSize          = 80
	idleBaseline      = 35
	dividerHalf       = 40
	dividerWidth      = 3
)

// Surface is the render surface of the play area.
type Surface struct {
	anim   *battle.Animator
	field  *fx.Field
	labels Labels

	iconSize  int
	amplitude float64
	outcome   rps.Outcome
	shown     bool
}

// New creates a surface over the given animator and celebration field.
func New(anim *battle.Animator, field *fx.Field, labels Labels) *Surface {
	return &Surface{
		anim:      anim,
		field:     field,
		labels:    labels,
		iconSize:  likeness.IconSize(120),
		amplitude: battle.BaseAmplitude,
	}
}

// SetAmplitude sets the base shake amplitude in logical pixels.
func (s *Surface) SetAmplitude(a float64) {
	if a > 0 {
		s.amplitude = a
	}
}

// SetButtonSize sets the icon size from the weapon button size.
func (s *Surface) SetButtonSize(n int) {
	s.iconSize = likeness.IconSize(n)
}

// IconSize returns the current likeness edge length.
func (s *Surface) IconSize() int {
	return s.iconSize
}

// StartRound begins the battle animation and hides any shown result.
func (s *Surface) StartRound(player, computer rps.Choice) {
	s.shown = false
	s.anim.Start(player, computer)
}

// IsResultReady reports whether the battle animation has finished.
func (s *Surface) IsResultReady() bool {
	return s.anim.ResultReady()
}

// ShowResult sets the outcome label to draw.
func (s *Surface) ShowResult(o rps.Outcome) {
	s.outcome = o
	s.shown = true
}

// Reset returns to the idle placeholder.
func (s *Surface) Reset() {
	s.anim.Reset()
	s.shown = false
}

// Phase derives the current phase from the animator.
func (s *Surface) Phase() Phase {
	switch {
	case s.anim.ResultReady():
		return PhaseRevealing
	case s.anim.Frame() > 0:
		return PhaseBattling
	default:
		return PhaseIdle
	}
}

// Outcome returns the shown outcome; ok is false until ShowResult.
func (s *Surface) Outcome() (o rps.Outcome, ok bool) {
	return s.outcome, s.shown && s.anim.ResultReady()
}

// Draw paints the current phase. Missing likenesses are skipped.
func (s *Surface) Draw(cv draw.Canvas, lk Likeness) {
	cv.Clear(core.ColorBackground)
	w, h := cv.Size()
	cx, cy := w/2, h/2

	switch s.Phase() {
	case PhaseBattling:
		dy := int(s.anim.Offset(s.amplitude))
		s.picture(cv, lk, likeness.Pending, cx+battleLeftOffset, cy+imageTopOffset+dy)
		s.picture(cv, lk, likeness.Pending, cx+battleRightOffset, cy+imageTopOffset+dy)
		cv.Line(float64(cx), float64(cy-dividerHalf), float64(cx), float64(cy+dividerHalf), dividerWidth, core.ColorDivider)

	case PhaseRevealing:
		player, computer := s.anim.Choices()
		if !s.shown {
			// Final pose while the reveal delay runs.
			s.picture(cv, lk, player.String(), cx+battleLeftOffset, cy+imageTopOffset)
			s.picture(cv, lk, computer.String(), cx+battleRightOffset, cy+imageTopOffset)
			return
		}
		s.picture(cv, lk, player.String(), cx-s.iconSize-resultGap/2, cy+imageTopOffset)
		s.picture(cv, lk, computer.String(), cx+resultGap/2, cy+imageTopOffset)

		text, color := s.label()
		cv.Text(text, float64(cx), float64(cy+labelOffset), labelSize, color)
		if s.outcome == rps.Win {
			s.field.Draw(cv)
		}

	default:
		cv.Text(s.labels.Idle, float64(cx), float64(cy+idleBaseline), idleSize, core.ColorGray)
	}
}

func (s *Surface) label() (string, core.Color) {
	switch s.outcome {
	case rps.Win:
		return s.labels.Win, core.ColorWin
	case rps.Lose:
		return s.labels.Lose, core.ColorLose
	default:
		return s.labels.Draw, core.ColorDraw
	}
}

func (s *Surface) picture(cv draw.Canvas, lk Likeness, name string, x, y int) {
	if lk == nil {
		return
	}
	img, ok := lk.Lookup(name)
	if !ok || img == nil {
		return
	}
	cv.Image(img, x, y, s.iconSize, s.iconSize)
}
