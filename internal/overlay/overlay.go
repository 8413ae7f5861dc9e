// Package overlay plays an optional animated GIF over the celebration.
// The asset is best-effort: callers log a load failure and carry on.
package overlay

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"
	"time"

	xdraw "golang.org/x/image/draw"
)

// TickInterval is the GIF delay granularity (one hundredth of a second).
const TickInterval = 10 * time.Millisecond

// Frames with a delay below this are shown for defaultDelay, as browsers do.
const (
	minDelay     = 2
	defaultDelay = 10
)

// keyOut is the channel level below which a pixel counts as the GIF's
// dark backdrop and is made transparent.
const keyOut = 24

// ErrEmpty is returned for a GIF without frames.
var ErrEmpty = errors.New("overlay: gif has no frames")

// Overlay is a clock driver stepping through GIF frames for a fixed time.
type Overlay struct {
	anim *gif.GIF

	canvas *image.RGBA // composited frames
	out    *image.RGBA // canvas with the backdrop keyed out
	index  int
	seq    int

	acc       time.Duration
	remaining time.Duration
	running   bool
}

// Load reads a GIF file.
func Load(path string) (*Overlay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	defer f.Close()

	o, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("overlay: %s: %w", path, err)
	}
	return o, nil
}

// Decode reads a GIF stream.
func Decode(r io.Reader) (*Overlay, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, ErrEmpty
	}

	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 {
		b := g.Image[0].Bounds()
		w, h = b.Max.X, b.Max.Y
	}
	rect := image.Rect(0, 0, w, h)
	return &Overlay{
		anim:   g,
		canvas: image.NewRGBA(rect),
		out:    image.NewRGBA(rect),
	}, nil
}

// Len returns the number of frames.
func (o *Overlay) Len() int {
	return len(o.anim.Image)
}

// Start shows the first frame and plays for d.
func (o *Overlay) Start(d time.Duration) {
	o.index = 0
	o.acc = 0
	o.remaining = d
	o.running = true
	clear(o.canvas.Pix)
	o.compose()
}

// Tick advances playback by TickInterval.
func (o *Overlay) Tick() {
	if !o.running {
		return
	}
	o.acc += TickInterval
	for o.acc >= o.delay(o.index) {
		o.acc -= o.delay(o.index)
		o.advance()
	}
	o.remaining -= TickInterval
	if o.remaining <= 0 {
		o.Stop()
	}
}

// Stop hides the overlay.
func (o *Overlay) Stop() {
	o.running = false
}

// IsRunning reports whether the overlay is playing.
func (o *Overlay) IsRunning() bool {
	return o.running
}

// Frame returns the current frame and a sequence number that changes
// whenever the frame content does. The image is reused between frames.
func (o *Overlay) Frame() (*image.RGBA, int) {
	return o.out, o.seq
}

// Index returns the current frame index.
func (o *Overlay) Index() int {
	return o.index
}

func (o *Overlay) delay(i int) time.Duration {
	d := defaultDelay
	if i < len(o.anim.Delay) && o.anim.Delay[i] >= minDelay {
		d = o.anim.Delay[i]
	}
	return time.Duration(d) * TickInterval
}

func (o *Overlay) advance() {
	prev := o.index
	o.index = (o.index + 1) % len(o.anim.Image)
	switch {
	case o.index == 0:
		clear(o.canvas.Pix)
	case prev < len(o.anim.Disposal) && o.anim.Disposal[prev] == gif.DisposalBackground:
		r := o.anim.Image[prev].Bounds()
		xdraw.Draw(o.canvas, r, image.Transparent, image.Point{}, xdraw.Src)
	}
	o.compose()
}

// compose draws the current frame over the canvas and refreshes out.
func (o *Overlay) compose() {
	frame := o.anim.Image[o.index]
	xdraw.Draw(o.canvas, frame.Bounds(), frame, frame.Bounds().Min, xdraw.Over)

	copy(o.out.Pix, o.canvas.Pix)
	for i := 0; i+3 < len(o.out.Pix); i += 4 {
		p := o.out.Pix[i : i+4 : i+4]
		if p[0] < keyOut && p[1] < keyOut && p[2] < keyOut {
			p[0], p[1], p[2], p[3] = 0, 0, 0, 0
		}
	}
	o.seq++
}
