// Package draw defines the paint target shared by the celebration engine,
// the render surface and every front-end, plus two implementations: an
// in-memory raster and a terminal cell canvas.
package draw

import (
	"image"

	"github.com/vovakirdan/rps-arcade/internal/core"
)

// Canvas is a paint target in logical pixels. (0, 0) is the top-left corner.
type Canvas interface {
	// Size returns the logical width and height.
	Size() (w, h int)
	// Clear fills the whole canvas with bg.
	Clear(bg core.Color)
	// FillCircle draws a filled disc with the given alpha (0..255).
	FillCircle(cx, cy, r float64, c core.Color, alpha uint8)
	// Line draws a straight stroke of the given width.
	Line(x0, y0, x1, y1, width float64, c core.Color)
	// Image draws img scaled into the rectangle (x, y, w, h).
	Image(img image.Image, x, y, w, h int)
	// Text draws s horizontally centered on cx with its baseline at y.
	// size is the nominal font height in logical pixels.
	Text(s string, cx, y, size float64, c core.Color)
}
