package fx

import (
	"image"
	"math/rand"

	"github.com/vovakirdan/rps-arcade/internal/core"
)

// constRand always returns the same fraction.
type constRand struct {
	f float64
}

func (r constRand) Float64() float64 { return r.f }
func (r constRand) Intn(n int) int   { return int(r.f * float64(n)) }

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// circleCanvas records FillCircle calls.
type circleCanvas struct {
	circles []circle
}

type circle struct {
	x, y, r float64
	c       core.Color
	alpha   uint8
}

func (c *circleCanvas) Size() (int, int) { return 800, 600 }
func (c *circleCanvas) Clear(core.Color)  {}
func (c *circleCanvas) FillCircle(x, y, r float64, col core.Color, alpha uint8) {
	c.circles = append(c.circles, circle{x, y, r, col, alpha})
}
func (c *circleCanvas) Line(_, _, _, _, _ float64, _ core.Color)           {}
func (c *circleCanvas) Image(image.Image, int, int, int, int)              {}
func (c *circleCanvas) Text(string, float64, float64, float64, core.Color) {}
