package likeness

import (
	"image"
	"math"
	"sync"

	"github.com/vovakirdan/rps-arcade/internal/core"
	"github.com/vovakirdan/rps-arcade/internal/draw"
)

// Style picks ink and paper colors for the built-in art. An invalid
// Paper leaves the background transparent.
type Style struct {
	Ink   core.Color
	Paper core.Color
}

var (
	// LiveStyle is light ink on a transparent background, for the game screen.
	LiveStyle = Style{Ink: core.RGB(235, 235, 235)}
	// PrintStyle is black ink on white, matching the placeholder PNGs.
	PrintStyle = Style{Ink: core.RGB(0, 0, 0), Paper: core.ColorWhite}
)

// designSize is the coordinate space the art is described in.
const designSize = 200.0

// Builtin draws simple line art for every likeness. Images are rendered
// once per name and cached.
type Builtin struct {
	size  int
	style Style

	mu    sync.Mutex
	cache map[string]image.Image
}

// NewBuiltin creates a source producing size×size images.
func NewBuiltin(size int, style Style) *Builtin {
	return &Builtin{size: size, style: style, cache: make(map[string]image.Image)}
}

// Lookup returns the art for name.
func (b *Builtin) Lookup(name string) (image.Image, bool) {
	key, ok := Canonical(name)
	if !ok {
		return nil, false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if img, ok := b.cache[key]; ok {
		return img, true
	}
	img, ok := Render(key, b.size, b.style)
	if !ok {
		return nil, false
	}
	b.cache[key] = img
	return img, true
}

// Render draws the named likeness into a new size×size image.
func Render(name string, size int, style Style) (*image.RGBA, bool) {
	key, ok := Canonical(name)
	if !ok || size <= 0 {
		return nil, false
	}

	r := draw.NewRaster(size, size)
	if style.Paper.Valid {
		r.Clear(style.Paper)
	}
	p := pen{r: r, k: float64(size) / designSize, ink: style.Ink}

	p.ring(10, 10, 180, 180, 3)
	switch key {
	case "rock":
		// Fist.
		p.ring(70, 60, 60, 60, 3)
		p.line(85, 80, 80, 50, 2)
	case "paper":
		// Open hand: palm, four fingers, thumb.
		p.ring(75, 85, 50, 50, 3)
		for i := 0; i < 4; i++ {
			x := 85 + float64(i)*10
			p.line(x, 85, x, 40, 2)
		}
		p.line(70, 100, 50, 130, 2)
	case "scissors":
		// Victory sign.
		p.line(100, 90, 75, 140, 3)
		p.line(100, 90, 125, 140, 3)
		p.line(95, 110, 85, 95, 2)
	case Pending:
		r.Text("?", 100*p.k, 145*p.k, 110*p.k, style.Ink)
	}
	return r.RGBA(), true
}

// pen draws in design coordinates.
type pen struct {
	r   *draw.Raster
	k   float64
	ink core.Color
}

func (p pen) line(x0, y0, x1, y1, width float64) {
	p.r.Line(x0*p.k, y0*p.k, x1*p.k, y1*p.k, max(width*p.k, 1), p.ink)
}

// ring outlines the ellipse inscribed in the box (x, y, w, h).
func (p pen) ring(x, y, w, h, width float64) {
	const segments = 72
	cx, cy := x+w/2, y+h/2
	rx, ry := w/2, h/2
	px, py := cx+rx, cy
	for i := 1; i <= segments; i++ {
		a := float64(i) / segments * 2 * math.Pi
		nx, ny := cx+rx*math.Cos(a), cy+ry*math.Sin(a)
		p.line(px, py, nx, ny, width)
		px, py = nx, ny
	}
}
