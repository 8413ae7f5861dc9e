package desktop

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/rps-arcade/internal/core"
)

// glyphHeight is the pixel height of the bitmap face text is scaled from.
const glyphHeight = 13

// Canvas draws onto a region of an ebiten image. Coordinates passed in
// are relative to the region's top-left corner.
type Canvas struct {
	dst    *ebiten.Image
	region core.Rect
	face   *text.GoXFace
	images map[image.Image]*ebiten.Image
}

// NewCanvas creates a canvas with an empty image cache.
func NewCanvas() *Canvas {
	return &Canvas{
		face:   text.NewGoXFace(basicfont.Face7x13),
		images: make(map[image.Image]*ebiten.Image),
	}
}

// Target points the canvas at a region of dst.
func (c *Canvas) Target(dst *ebiten.Image, region core.Rect) {
	c.dst = dst
	c.region = region
}

func (c *Canvas) Size() (int, int) {
	return c.region.W, c.region.H
}

func (c *Canvas) Clear(bg core.Color) {
	r := c.region
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg.NRGBA(255), false)
}

func (c *Canvas) FillCircle(cx, cy, r float64, fg core.Color, alpha uint8) {
	if alpha == 0 || r <= 0 {
		return
	}
	x, y := c.abs(cx, cy)
	vector.DrawFilledCircle(c.dst, x, y, float32(r), fg.NRGBA(alpha), true)
}

func (c *Canvas) Line(x0, y0, x1, y1, width float64, fg core.Color) {
	ax, ay := c.abs(x0, y0)
	bx, by := c.abs(x1, y1)
	vector.StrokeLine(c.dst, ax, ay, bx, by, float32(width), fg.NRGBA(255), true)
}

// Image draws img scaled into w×h. Uploaded textures are cached per
// source image, so sources must hand out stable images.
func (c *Canvas) Image(img image.Image, x, y, w, h int) {
	eimg, ok := c.images[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		c.images[img] = eimg
	}
	b := eimg.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	op.GeoM.Translate(float64(c.region.X+x), float64(c.region.Y+y))
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(eimg, op)
}

// Text draws s horizontally centered on cx with its baseline near y.
func (c *Canvas) Text(s string, cx, y, size float64, fg core.Color) {
	scale := size / glyphHeight
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignEnd
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(c.region.X)+cx, float64(c.region.Y)+y)
	op.ColorScale.ScaleWithColor(fg.NRGBA(255))
	op.Filter = ebiten.FilterNearest
	text.Draw(c.dst, s, c.face, op)
}

func (c *Canvas) abs(x, y float64) (float32, float32) {
	return float32(float64(c.region.X) + x), float32(float64(c.region.Y) + y)
}
