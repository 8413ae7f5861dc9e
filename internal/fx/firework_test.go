package fx

import (
	"testing"

	"github.com/vovakirdan/rps-arcade/internal/core"
)

func TestFireworkExplodesOnce(t *testing.T) {
	fw := NewFirework(100, 500, seeded(3))

	ticks := 0
	for !fw.Exploded() {
		if fw.VY >= 0 {
			t.Fatal("rocket should explode on the tick vy reaches zero")
		}
		fw.Update()
		ticks++
		if ticks > 200 {
			t.Fatal("rocket never exploded")
		}
	}
	if fw.VY < 0 {
		t.Errorf("exploded with vy = %v", fw.VY)
	}

	n := len(fw.Sparks())
	if n < 18 || n > 53 {
		t.Fatalf("spark count %d outside [18, 53]", n)
	}

	prev := n
	for i := 0; i < 50; i++ {
		fw.Update()
		if !fw.Exploded() {
			t.Fatal("exploded flag must stay set")
		}
		if len(fw.Sparks()) > prev {
			t.Fatalf("spark count grew from %d to %d: firework re-exploded", prev, len(fw.Sparks()))
		}
		prev = len(fw.Sparks())
	}
}

func TestFireworkSparkCountBounds(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		fw := NewFirework(0, 0, seeded(seed))
		fw.explode()
		n := len(fw.Sparks())
		if n < 18 || n > 53 {
			t.Errorf("seed %d: spark count %d outside [18, 53]", seed, n)
		}
		for _, s := range fw.Sparks() {
			if s.MaxLife < 30 || s.MaxLife >= 90 {
				t.Errorf("seed %d: spark life %d outside [30, 90)", seed, s.MaxLife)
			}
		}
	}
}

func TestFireworkExtremeSparkCounts(t *testing.T) {
	low := NewFirework(0, 0, constRand{0})
	low.explode()
	if len(low.Sparks()) != 18 {
		t.Errorf("minimum spark count = %d, expected 18", len(low.Sparks()))
	}

	high := NewFirework(0, 0, constRand{0.9999})
	high.explode()
	if len(high.Sparks()) != 53 {
		t.Errorf("maximum spark count = %d, expected 53", len(high.Sparks()))
	}
}

func TestFireworkColorJitterClamped(t *testing.T) {
	fw := NewFirework(0, 0, seeded(11))
	fw.Color = core.RGB(255, 0, 128)
	fw.explode()

	for _, s := range fw.Sparks() {
		if s.Color.R < 235 {
			t.Errorf("red channel %d jittered more than 20", s.Color.R)
		}
		if s.Color.G > 20 {
			t.Errorf("green channel %d jittered more than 20", s.Color.G)
		}
		if s.Color.B < 108 || s.Color.B > 148 {
			t.Errorf("blue channel %d outside 128±20", s.Color.B)
		}
	}
}

func TestFireworkFinished(t *testing.T) {
	fw := NewFirework(0, 600, seeded(5))
	if fw.Finished() {
		t.Fatal("fresh rocket cannot be finished")
	}

	for !fw.Exploded() {
		fw.Update()
	}
	if fw.Finished() {
		t.Fatal("freshly exploded firework still has sparks")
	}

	// Every spark lives fewer than 90 ticks.
	for i := 0; i < 90; i++ {
		fw.Update()
	}
	if len(fw.Sparks()) != 0 {
		t.Fatalf("%d sparks outlived their lifetime", len(fw.Sparks()))
	}
	if !fw.Finished() {
		t.Error("exploded firework with no sparks should be finished")
	}
}

func TestFireworkDraw(t *testing.T) {
	fw := NewFirework(50, 60, seeded(2))
	cv := &circleCanvas{}
	fw.Draw(cv)
	if len(cv.circles) != 1 || cv.circles[0].r != rocketRadius {
		t.Fatalf("rocket should draw one head, got %+v", cv.circles)
	}

	fw.explode()
	cv = &circleCanvas{}
	fw.Draw(cv)
	if len(cv.circles) != len(fw.Sparks()) {
		t.Errorf("drew %d circles for %d sparks", len(cv.circles), len(fw.Sparks()))
	}
}
