package draw

import (
	"image"
	"image/color"
	"math"

	"github.com/vovakirdan/rps-arcade/internal/core"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster is an in-memory RGBA canvas. Logical pixels are image pixels.
type Raster struct {
	img *image.RGBA
}

// NewRaster creates a w×h raster filled with transparent black.
func NewRaster(w, h int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// RGBA returns the backing image. It is reused across frames.
func (r *Raster) RGBA() *image.RGBA {
	return r.img
}

// Size returns the raster dimensions.
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the raster with an opaque background.
func (r *Raster) Clear(bg core.Color) {
	xdraw.Draw(r.img, r.img.Bounds(), image.NewUniform(bg.NRGBA(255)), image.Point{}, xdraw.Src)
}

// blend composites c with alpha over the pixel at (x, y).
func (r *Raster) blend(x, y int, c core.Color, alpha uint8) {
	if !(image.Point{x, y}.In(r.img.Bounds())) || alpha == 0 {
		return
	}
	i := r.img.PixOffset(x, y)
	p := r.img.Pix[i : i+4 : i+4]
	a := uint32(alpha)
	inv := 255 - a
	p[0] = uint8((uint32(c.R)*a + uint32(p[0])*inv) / 255)
	p[1] = uint8((uint32(c.G)*a + uint32(p[1])*inv) / 255)
	p[2] = uint8((uint32(c.B)*a + uint32(p[2])*inv) / 255)
	p[3] = uint8(a + uint32(p[3])*inv/255)
}

// FillCircle fills every pixel whose center lies inside the disc.
func (r *Raster) FillCircle(cx, cy, radius float64, c core.Color, alpha uint8) {
	if radius <= 0 {
		return
	}
	x0 := int(math.Floor(cx - radius))
	x1 := int(math.Ceil(cx + radius))
	y0 := int(math.Floor(cy - radius))
	y1 := int(math.Ceil(cy + radius))
	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				r.blend(x, y, c, alpha)
			}
		}
	}
}

// Line strokes a segment by stamping width-sized squares along it.
func (r *Raster) Line(x0, y0, x1, y1, width float64, c core.Color) {
	half := max(width/2, 0.5)
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)))) + 1
	seen := make(map[image.Point]bool)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := x0 + (x1-x0)*t
		py := y0 + (y1-y0)*t
		for y := int(math.Floor(py - half + 0.5)); y < int(math.Floor(py+half+0.5)); y++ {
			for x := int(math.Floor(px - half + 0.5)); x < int(math.Floor(px+half+0.5)); x++ {
				pt := image.Point{x, y}
				if !seen[pt] {
					seen[pt] = true
					r.blend(x, y, c, 255)
				}
			}
		}
	}
}

// Image scales img into the destination rectangle, respecting its alpha.
func (r *Raster) Image(img image.Image, x, y, w, h int) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	dst := image.Rect(x, y, x+w, y+h)
	xdraw.CatmullRom.Scale(r.img, dst, img, img.Bounds(), xdraw.Over, nil)
}

// Text renders s with the 7×13 bitmap face, scaled to size.
func (r *Raster) Text(s string, cx, y, size float64, c core.Color) {
	if s == "" {
		return
	}
	face := basicfont.Face7x13
	adv := font.MeasureString(face, s).Ceil()
	m := face.Metrics()
	asc, desc := m.Ascent.Ceil(), m.Descent.Ceil()

	// Render at native size, then scale up.
	glyphs := image.NewRGBA(image.Rect(0, 0, adv, asc+desc))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c.NRGBA(255)),
		Face: face,
		Dot:  fixed.P(0, asc),
	}
	d.DrawString(s)

	scale := max(size/float64(face.Height), 1)
	w := int(math.Round(float64(adv) * scale))
	h := int(math.Round(float64(asc+desc) * scale))
	top := int(math.Round(y - float64(asc)*scale))
	left := int(math.Round(cx - float64(w)/2))
	dst := image.Rect(left, top, left+w, top+h)
	xdraw.NearestNeighbor.Scale(r.img, dst, glyphs, glyphs.Bounds(), xdraw.Over, nil)
}

// At returns the color at (x, y), used by tests and the GIF encoder.
func (r *Raster) At(x, y int) color.RGBA {
	return r.img.RGBAAt(x, y)
}
