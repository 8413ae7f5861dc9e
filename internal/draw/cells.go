package draw

import (
	"image"
	"image/color"
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/vovakirdan/rps-arcade/internal/core"
)

// Disc glyphs by on-screen radius in cells.
var discGlyphs = []struct {
	maxRadius float64
	glyph     rune
}{
	{0.35, '·'},
	{0.75, '•'},
	{math.Inf(1), '●'},
}

// Coverage ramp for images, from sparse to solid.
var inkRamp = []rune(" .:-=+*#%@")

// Cells maps a logical pixel space onto a region of a terminal screen.
// Terminals have no alpha, so translucent colors are blended toward the
// background given to Clear.
type Cells struct {
	screen *core.Screen
	region core.Rect
	logW   float64
	logH   float64
	scaleX float64
	scaleY float64
	bg     core.Color
	glyphs map[imageKey][]core.Cell
}

type imageKey struct {
	img  image.Image
	w, h int
}

// NewCells creates a canvas of logical size logW×logH drawn into region.
func NewCells(screen *core.Screen, region core.Rect, logW, logH int) *Cells {
	c := &Cells{
		screen: screen,
		logW:   float64(max(logW, 1)),
		logH:   float64(max(logH, 1)),
		bg:     core.ColorBackground,
		glyphs: make(map[imageKey][]core.Cell),
	}
	c.SetRegion(region)
	return c
}

// SetRegion moves the canvas to a new screen region, keeping logical size.
func (c *Cells) SetRegion(region core.Rect) {
	if region != c.region {
		clear(c.glyphs)
	}
	c.region = region
	c.scaleX = float64(region.W) / c.logW
	c.scaleY = float64(region.H) / c.logH
}

// SetScreen retargets the canvas, e.g. after the screen was replaced.
func (c *Cells) SetScreen(s *core.Screen) {
	c.screen = s
}

// Region returns the screen region the canvas draws into.
func (c *Cells) Region() core.Rect {
	return c.region
}

// Size returns the logical size.
func (c *Cells) Size() (int, int) {
	return int(c.logW), int(c.logH)
}

// cell converts logical coordinates to a screen cell.
func (c *Cells) cell(x, y float64) (int, int) {
	return c.region.X + int(math.Floor(x*c.scaleX)), c.region.Y + int(math.Floor(y*c.scaleY))
}

func (c *Cells) set(col, row int, r rune, fg core.Color) {
	if !c.region.Contains(col, row) {
		return
	}
	c.screen.SetCell(col, row, core.Cell{Rune: r, Color: fg})
}

// Clear blanks the region and remembers bg for alpha blending.
func (c *Cells) Clear(bg core.Color) {
	c.bg = bg
	for row := c.region.Y; row < c.region.Bottom(); row++ {
		for col := c.region.X; col < c.region.Right(); col++ {
			c.screen.SetCell(col, row, core.Cell{Rune: ' '})
		}
	}
}

// FillCircle draws one glyph at the disc center, sized by radius.
func (c *Cells) FillCircle(cx, cy, r float64, fg core.Color, alpha uint8) {
	if alpha == 0 {
		return
	}
	col, row := c.cell(cx, cy)
	rc := r * c.scaleX
	glyph := discGlyphs[len(discGlyphs)-1].glyph
	for _, g := range discGlyphs {
		if rc <= g.maxRadius {
			glyph = g.glyph
			break
		}
	}
	c.set(col, row, glyph, fg.Blend(c.bg, alpha))
}

// Line draws box-drawing strokes for axis-aligned lines and dots otherwise.
func (c *Cells) Line(x0, y0, x1, y1, _ float64, fg core.Color) {
	c0, r0 := c.cell(x0, y0)
	c1, r1 := c.cell(x1, y1)

	switch {
	case c0 == c1:
		for row := min(r0, r1); row <= max(r0, r1); row++ {
			c.set(c0, row, '│', fg)
		}
	case r0 == r1:
		for col := min(c0, c1); col <= max(c0, c1); col++ {
			c.set(col, r0, '─', fg)
		}
	default:
		steps := max(abs(c1-c0), abs(r1-r0))
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			col := c0 + int(math.Round(float64(c1-c0)*t))
			row := r0 + int(math.Round(float64(r1-r0)*t))
			c.set(col, row, '·', fg)
		}
	}
}

// Image draws img as coverage glyphs tinted with the average ink color.
// Transparent or blank cells are left untouched.
func (c *Cells) Image(img image.Image, x, y, w, h int) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	col0, row0 := c.cell(float64(x), float64(y))
	col1, row1 := c.cell(float64(x+w), float64(y+h))
	cols, rows := max(col1-col0, 1), max(row1-row0, 1)

	key := imageKey{img: img, w: cols, h: rows}
	cells, ok := c.glyphs[key]
	if !ok {
		cells = rasterize(img, cols, rows)
		c.glyphs[key] = cells
	}

	for i, cell := range cells {
		if cell.Rune == ' ' {
			continue
		}
		c.set(col0+i%cols, row0+i/cols, cell.Rune, cell.Color)
	}
}

// rasterize reduces img to cols×rows coverage cells. A pixel counts as
// ink when it is mostly opaque and not near-white.
func rasterize(img image.Image, cols, rows int) []core.Cell {
	b := img.Bounds()
	out := make([]core.Cell, cols*rows)
	for row := 0; row < rows; row++ {
		sy0 := b.Min.Y + row*b.Dy()/rows
		sy1 := max(b.Min.Y+(row+1)*b.Dy()/rows, sy0+1)
		for col := 0; col < cols; col++ {
			sx0 := b.Min.X + col*b.Dx()/cols
			sx1 := max(b.Min.X+(col+1)*b.Dx()/cols, sx0+1)

			var ink, total int
			var rs, gs, bs int
			for sy := sy0; sy < sy1; sy++ {
				for sx := sx0; sx < sx1; sx++ {
					total++
					p := color.NRGBAModel.Convert(img.At(sx, sy)).(color.NRGBA)
					if p.A < 128 || (p.R > 235 && p.G > 235 && p.B > 235) {
						continue
					}
					ink++
					rs += int(p.R)
					gs += int(p.G)
					bs += int(p.B)
				}
			}

			cell := core.Cell{Rune: ' '}
			if ink > 0 {
				cov := float64(ink) / float64(total)
				idx := int(math.Ceil(cov * float64(len(inkRamp)-1)))
				cell.Rune = inkRamp[core.Clamp(idx, 1, len(inkRamp)-1)]
				cell.Color = core.RGB(uint8(rs/ink), uint8(gs/ink), uint8(bs/ink))
			}
			out[row*cols+col] = cell
		}
	}
	return out
}

// Text writes s centered on cx, on the row holding the middle of the
// glyphs. Terminal text has a single size.
func (c *Cells) Text(s string, cx, y, size float64, fg core.Color) {
	col, row := c.cell(cx, y-size/2)
	start := col - runewidth.StringWidth(s)/2
	for _, r := range s {
		c.set(start, row, r, fg)
		w := runewidth.RuneWidth(r)
		if w == 2 {
			c.set(start+1, row, 0, fg)
		}
		start += max(w, 1)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
