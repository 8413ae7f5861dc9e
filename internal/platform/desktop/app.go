// Package desktop runs the game in an ebiten window: weapon buttons with
// likeness icons, the play area, the target and reset controls and the
// optional celebration overlay. Window preferences persist via gdata.
package desktop

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/rps-arcade/internal/core"
	"github.com/vovakirdan/rps-arcade/internal/game"
	"github.com/vovakirdan/rps-arcade/internal/rps"
	"github.com/vovakirdan/rps-arcade/internal/surface"
)

// buttonSizeStep is how much one click on the size controls changes a button.
const buttonSizeStep = 10

var (
	colorButton      = core.RGB(45, 45, 45)
	colorButtonHover = core.RGB(70, 70, 70)
	colorButtonOff   = core.RGB(25, 25, 25)
	colorBorder      = core.RGB(200, 200, 200)
)

// App is the ebiten game wrapping one match.
type App struct {
	game     *game.Game
	icons    surface.Likeness
	settings *SettingsStore
	logger   *log.Logger

	layout Layout
	canvas *Canvas
	input  core.InputFrame

	overlayImg *ebiten.Image
	overlaySeq int
}

// NewApp creates the window model and applies the saved settings to g.
func NewApp(g *game.Game, icons surface.Likeness, settings *SettingsStore, logger *log.Logger) *App {
	if settings == nil {
		settings = NewSettingsStore(nil, SettingsFrom(g.Config()), logger)
	}
	a := &App{
		game:       g,
		icons:      icons,
		settings:   settings,
		logger:     logger,
		canvas:     NewCanvas(),
		input:      core.NewInputFrame(),
		overlaySeq: -1,
	}
	s := settings.Settings()
	g.SetTarget(s.TargetWins)
	a.applyButtonSize(s.ButtonSize)
	return a
}

func (a *App) applyButtonSize(n int) {
	a.game.SetButtonSize(n)
	a.layout = NewLayout(a.game.Config().Display.ButtonSize)
	a.game.SetViewport(a.layout.Surface.W, a.layout.Surface.H)
}

// Update reads input and advances the match by one tick.
func (a *App) Update() error {
	a.input.Clear()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.Click(a.layout.Hit(ebiten.CursorPosition()))
	}
	a.readKeys()

	a.game.Step(a.input)
	return nil
}

func (a *App) readKeys() {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				return true
			}
		}
		return false
	}
	switch {
	case pressed(ebiten.KeyR, ebiten.Key1):
		a.Click(ControlRock)
	case pressed(ebiten.KeyP, ebiten.Key2):
		a.Click(ControlPaper)
	case pressed(ebiten.KeyS, ebiten.Key3):
		a.Click(ControlScissors)
	}
	if pressed(ebiten.KeyX) {
		a.Click(ControlReset)
	}
	if pressed(ebiten.KeyEqual, ebiten.KeyUp) {
		a.Click(ControlTargetUp)
	}
	if pressed(ebiten.KeyMinus, ebiten.KeyDown) {
		a.Click(ControlTargetDown)
	}
	if pressed(ebiten.KeyB) {
		a.Click(ControlBorder)
	}
}

// Click applies a control. Weapon buttons are ignored once the match is over.
func (a *App) Click(c Control) {
	switch c {
	case ControlRock, ControlPaper, ControlScissors:
		if a.game.CanPlay() {
			a.input.Set(c.Action())
		}
	case ControlReset:
		a.input.Set(core.ActionReset)
	case ControlTargetUp, ControlTargetDown:
		delta := 1
		if c == ControlTargetDown {
			delta = -1
		}
		a.game.SetTarget(a.game.State().TargetWins + delta)
		target := a.game.State().TargetWins
		a.settings.Update(func(s *Settings) { s.TargetWins = target })
	case ControlSmaller, ControlBigger:
		delta := buttonSizeStep
		if c == ControlSmaller {
			delta = -buttonSizeStep
		}
		a.applyButtonSize(a.layout.ButtonSize + delta)
		size := a.layout.ButtonSize
		a.settings.Update(func(s *Settings) { s.ButtonSize = size })
	case ControlBorder:
		a.settings.Update(func(s *Settings) { s.Bordered = !s.Bordered })
	}
}

// Draw paints the whole window.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(core.ColorBackground.NRGBA(255))
	window := core.NewRect(0, 0, WindowWidth, WindowHeight)

	a.canvas.Target(screen, window)
	a.drawHeader()

	a.canvas.Target(screen, a.layout.Surface)
	a.game.Draw(a.canvas)

	a.canvas.Target(screen, window)
	text, color := a.game.Instruction()
	a.canvas.Text(text, WindowWidth/2, float64(a.layout.InstructY), 16, color)
	a.drawButtons(screen)
	a.drawToolbar(screen)
	a.drawOverlay(screen)
}

func (a *App) drawHeader() {
	st := a.game.State()
	labels := a.game.Config().Labels
	y := float64(a.layout.HeaderY + 8)
	a.canvas.Text(labels.Player, WindowWidth/2-160, y, 20, core.ColorWhite)
	a.canvas.Text(fmt.Sprint(st.PlayerScore), WindowWidth/2-60, y, 26, core.ColorPlayer)
	a.canvas.Text("vs", WindowWidth/2, y, 16, core.ColorGray)
	a.canvas.Text(fmt.Sprint(st.ComputerScore), WindowWidth/2+60, y, 26, core.ColorComputer)
	a.canvas.Text(labels.Computer, WindowWidth/2+170, y, 20, core.ColorWhite)
}

func (a *App) drawButtons(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	bordered := a.settings.Settings().Bordered
	icon := int(float64(a.layout.ButtonSize) * 0.85)

	for i, r := range a.layout.Buttons {
		fill := colorButton
		switch {
		case !a.game.CanPlay():
			fill = colorButtonOff
		case r.Contains(mx, my):
			fill = colorButtonHover
		}
		drawRect(screen, r, fill, bordered)

		if a.icons == nil {
			continue
		}
		choice := rps.Choices[i]
		img, ok := a.icons.Lookup(choice.String())
		if !ok {
			a.canvas.Text(choice.String(), float64(r.X+r.W/2), float64(r.Y+r.H/2+6), 14, core.ColorWhite)
			continue
		}
		off := (r.W - icon) / 2
		a.canvas.Image(img, r.X+off, r.Y+off, icon, icon)
	}
}

func (a *App) drawToolbar(screen *ebiten.Image) {
	l := a.layout
	bordered := a.settings.Settings().Bordered
	st := a.game.State()

	button := func(r core.Rect, label string) {
		drawRect(screen, r, colorButton, bordered)
		a.canvas.Text(label, float64(r.X+r.W/2), float64(r.Y+r.H/2+6), 14, core.ColorWhite)
	}
	button(l.TargetDown, "-")
	button(l.TargetUp, "+")
	button(l.Reset, "Reset")
	button(l.Smaller, "<")
	button(l.Bigger, ">")
	button(l.Border, "Border")

	y := float64(l.ToolbarY + 21)
	counter := fmt.Sprintf("%d / %d", max(st.PlayerScore, st.ComputerScore), st.TargetWins)
	a.canvas.Text(counter, float64(l.CounterX+25), y, 16, core.ColorCounter)
}

// drawOverlay shows the celebration GIF centered over the play area.
func (a *App) drawOverlay(screen *ebiten.Image) {
	o, ok := a.game.Overlay()
	if !ok {
		return
	}
	frame, seq := o.Frame()
	if frame == nil {
		return
	}
	b := frame.Bounds()
	if a.overlayImg == nil || a.overlayImg.Bounds().Size() != b.Size() {
		if a.overlayImg != nil {
			a.overlayImg.Deallocate()
		}
		a.overlayImg = ebiten.NewImage(b.Dx(), b.Dy())
		a.overlaySeq = -1
	}
	if seq != a.overlaySeq {
		a.overlayImg.WritePixels(frame.Pix)
		a.overlaySeq = seq
	}

	s := a.layout.Surface
	scale := min(float64(s.W)/float64(b.Dx()), float64(s.H)/float64(b.Dy()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		float64(s.X)+(float64(s.W)-float64(b.Dx())*scale)/2,
		float64(s.Y)+(float64(s.H)-float64(b.Dy())*scale)/2,
	)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(a.overlayImg, op)
}

func drawRect(dst *ebiten.Image, r core.Rect, fill core.Color, bordered bool) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill.NRGBA(255), false)
	if bordered {
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, colorBorder.NRGBA(255), false)
	}
}

// Layout reports the fixed logical window size.
func (a *App) Layout(_, _ int) (int, int) {
	return WindowWidth, WindowHeight
}

// Run opens the window and blocks until it is closed.
func Run(a *App, title string) error {
	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
