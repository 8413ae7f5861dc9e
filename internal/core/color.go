package core

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color. The zero value means "no color" and lets
// front-ends fall back to their default foreground.
type Color struct {
	R, G, B uint8
	Valid   bool
}

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Valid: true}
}

// Hex builds a color from a packed 0xRRGGBB value.
func Hex(v uint32) Color {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// Named colors used across the game.
var (
	ColorBackground = RGB(10, 10, 10)
	ColorDivider    = RGB(220, 220, 220)
	ColorWin        = RGB(0, 200, 0)
	ColorLose       = RGB(255, 100, 100)
	ColorDraw       = RGB(255, 200, 0)
	ColorPlayer     = RGB(0, 150, 255)
	ColorComputer   = RGB(255, 100, 100)
	ColorGray       = RGB(100, 100, 100)
	ColorCounter    = RGB(0, 200, 100)
	ColorWhite      = RGB(255, 255, 255)
)

// Palette is the celebration palette shared by confetti and fireworks.
var Palette = []Color{
	Hex(0xFF6B6B),
	Hex(0x4ECDC4),
	Hex(0xFFE66D),
	Hex(0xFF8A65),
	Hex(0xAE73DC),
	Hex(0xFF1493),
	Hex(0x00CED1),
}

// Hex returns the color as a "#rrggbb" string, or "" when unset.
func (c Color) Hex() string {
	if !c.Valid {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend mixes c over bg with the given alpha in [0, 255].
// Terminal front-ends have no alpha channel, so fading is done by
// blending toward the background instead.
func (c Color) Blend(bg Color, alpha uint8) Color {
	if alpha == 255 {
		return c
	}
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	back := colorful.Color{R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255}
	r, g, b := back.BlendRgb(fg, float64(alpha)/255).Clamped().RGB255()
	return RGB(r, g, b)
}

// NRGBA converts the color to a non-premultiplied image color.
func (c Color) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// FromImage converts an image color to a Color, dropping alpha.
func FromImage(ic color.Color) Color {
	r, g, b, _ := ic.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
