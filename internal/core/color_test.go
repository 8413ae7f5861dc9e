package core

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	c := Hex(0xFF6B6B)
	if c.R != 0xFF || c.G != 0x6B || c.B != 0x6B || !c.Valid {
		t.Errorf("Hex(0xFF6B6B) = %+v", c)
	}
	if c.Hex() != "#ff6b6b" {
		t.Errorf("Hex() = %q, expected #ff6b6b", c.Hex())
	}

	var unset Color
	if unset.Hex() != "" {
		t.Errorf("unset color should render as empty string, got %q", unset.Hex())
	}
}

func TestBlend(t *testing.T) {
	white := ColorWhite
	black := RGB(0, 0, 0)

	if got := white.Blend(black, 255); got != white {
		t.Errorf("opaque blend should keep foreground, got %+v", got)
	}
	if got := white.Blend(black, 0); got != black {
		t.Errorf("transparent blend should give background, got %+v", got)
	}

	mid := white.Blend(black, 128)
	if mid.R < 120 || mid.R > 135 {
		t.Errorf("half blend R = %d, expected around 128", mid.R)
	}
}

func TestPalette(t *testing.T) {
	if len(Palette) != 7 {
		t.Fatalf("palette should have 7 colors, got %d", len(Palette))
	}
	for i, c := range Palette {
		if !c.Valid {
			t.Errorf("palette[%d] is not valid", i)
		}
	}
}

func TestFromImage(t *testing.T) {
	c := FromImage(color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	if c != RGB(1, 2, 3) {
		t.Errorf("FromImage = %+v", c)
	}
}
