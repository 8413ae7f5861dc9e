// Package export renders the celebration offline into an animated GIF.
// The result is the overlay asset the game plays over a won match.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"math/rand"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/rps-arcade/internal/core"
	"github.com/vovakirdan/rps-arcade/internal/draw"
	"github.com/vovakirdan/rps-arcade/internal/fx"
)

// Options controls the rendered animation.
type Options struct {
	Width       int
	Height      int
	FPS         int
	DurationSec int
	Seed        int64
	SpawnChance float64

	// Progress, if set, is called after each encoded frame.
	Progress func(frame, total int)
}

// DefaultOptions is a 700×750 window at 25 fps for 15 seconds.
func DefaultOptions() Options {
	return Options{
		Width:       700,
		Height:      750,
		FPS:         25,
		DurationSec: 15,
		Seed:        42,
		SpawnChance: 0.25,
	}
}

// Density top-up: while fewer confetti than topUpBelow are alive, each
// frame has topUpChance of adding topUpBatch more.
const (
	topUpBelow  = 700
	topUpChance = 0.2
	topUpBatch  = 50
)

// ErrBadOptions reports a non-positive size, rate or duration.
var ErrBadOptions = errors.New("export: size, fps and duration must be positive")

// Frames returns how many frames the options produce.
func (o Options) Frames() int {
	return o.FPS * o.DurationSec
}

// RenderGIF writes the celebration animation to w.
func RenderGIF(w io.Writer, opts Options) error {
	anim, err := Render(opts)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("export: encode gif: %w", err)
	}
	return nil
}

// WriteFile renders the animation into a file at path.
func WriteFile(path string, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := RenderGIF(f, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// Render simulates the celebration and returns the paletted frames.
func Render(opts Options) (*gif.GIF, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.FPS <= 0 || opts.DurationSec <= 0 {
		return nil, ErrBadOptions
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	tickMs := max(1, 1000/opts.FPS)
	field := fx.NewField(fx.Config{
		DurationMs:     opts.DurationSec * 1000,
		TickIntervalMs: tickMs,
		SpawnChance:    opts.SpawnChance,
	}, rng)
	field.StartCelebration(opts.Width, opts.Height)

	raster := draw.NewRaster(opts.Width, opts.Height)
	bounds := raster.RGBA().Bounds()
	delay := max(1, 100/opts.FPS)
	total := opts.Frames()

	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, total),
		Delay: make([]int, 0, total),
	}
	for i := 0; i < total; i++ {
		field.Tick()
		if len(field.Confetti()) < topUpBelow && rng.Float64() < topUpChance {
			field.Sprinkle(topUpBatch)
		}

		raster.Clear(core.ColorBackground)
		field.Draw(raster)

		frame := image.NewPaletted(bounds, palette.Plan9)
		xdraw.Draw(frame, bounds, raster.RGBA(), image.Point{}, xdraw.Src)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)

		if opts.Progress != nil {
			opts.Progress(i+1, total)
		}
	}
	return anim, nil
}
