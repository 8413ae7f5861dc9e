package likeness

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/rps-arcade/internal/registry"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"rock", "rock", true},
		{"Stein", "rock", true},
		{"papier", "paper", true},
		{"SCHERE", "scissors", true},
		{"shake", "shake", true},
		{"lizard", "", false},
	}
	for _, tc := range tests {
		got, ok := Canonical(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Canonical(%q) = %q, %v; expected %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestIconSize(t *testing.T) {
	if IconSize(120) != 102 {
		t.Errorf("IconSize(120) = %d, expected 102", IconSize(120))
	}
	if IconSize(200) != 170 {
		t.Errorf("IconSize(200) = %d, expected 170", IconSize(200))
	}
}

func TestBuiltinLookup(t *testing.T) {
	b := NewBuiltin(64, LiveStyle)

	for _, name := range Names() {
		img, ok := b.Lookup(name)
		if !ok {
			t.Fatalf("builtin missing %q", name)
		}
		if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
			t.Errorf("%s: size %v, expected 64x64", name, img.Bounds())
		}
	}

	first, _ := b.Lookup("rock")
	second, _ := b.Lookup("stein")
	if first != second {
		t.Error("aliases should share one cached image")
	}

	if _, ok := b.Lookup("lizard"); ok {
		t.Error("unknown names should miss")
	}
}

func TestRenderStyles(t *testing.T) {
	live, ok := Render("paper", 100, LiveStyle)
	if !ok {
		t.Fatal("Render failed")
	}
	if live.RGBAAt(0, 0).A != 0 {
		t.Error("live style should leave the corners transparent")
	}

	printed, _ := Render("paper", 100, PrintStyle)
	if got := printed.RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("print style corner = %+v, expected white", got)
	}

	// The outer ring passes through the top center.
	inked := false
	for y := 3; y < 8; y++ {
		if c := printed.RGBAAt(50, y); c.R < 128 {
			inked = true
		}
	}
	if !inked {
		t.Error("outer ring not drawn")
	}

	if _, ok := Render("rock", 0, LiveStyle); ok {
		t.Error("zero size should fail")
	}
}

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestDirLookup(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "stein.png"), color.RGBA{255, 0, 0, 255})
	writePNG(t, filepath.Join(dir, "paper.png"), color.RGBA{0, 255, 0, 255})

	d := NewDir([]string{filepath.Join(dir, "missing"), dir}, 50)

	img, ok := d.Lookup("rock")
	if !ok {
		t.Fatal("German file name should satisfy rock")
	}
	if img.Bounds().Dx() != 50 {
		t.Errorf("image should be scaled to 50, got %v", img.Bounds())
	}
	if r, _, _, _ := img.At(25, 25).RGBA(); r>>8 < 250 {
		t.Errorf("unexpected pixel %v", img.At(25, 25))
	}

	if _, ok := d.Lookup("paper"); !ok {
		t.Error("English file name should be found")
	}
	if _, ok := d.Lookup("scissors"); ok {
		t.Error("missing file should report not found")
	}
	if _, ok := d.Lookup("shake"); ok {
		t.Error("missing shake should report not found")
	}

	_, path, err := d.Load("paper")
	if err != nil || filepath.Base(path) != "paper.png" {
		t.Errorf("Load(paper) = %q, %v", path, err)
	}
}

func TestDirCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "rock.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := NewDir([]string{dir}, 10)
	if _, ok := d.Lookup("rock"); ok {
		t.Error("corrupt image should be treated as missing")
	}
	if _, _, err := d.Load("rock"); err == nil {
		t.Error("Load should report the decode failure")
	}
}

func TestChainFallsBack(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "rock.png"), color.RGBA{1, 2, 3, 255})

	fromDisk := NewDir([]string{dir}, 20)
	fallback := NewBuiltin(20, LiveStyle)
	c := Chain{fromDisk, fallback}

	rock, _ := c.Lookup("rock")
	diskRock, _ := fromDisk.Lookup("rock")
	if rock != diskRock {
		t.Error("chain should prefer the first source")
	}

	paper, ok := c.Lookup("paper")
	builtinPaper, _ := fallback.Lookup("paper")
	if !ok || paper != builtinPaper {
		t.Error("chain should fall back to the builtin art")
	}
}

func TestSearchPaths(t *testing.T) {
	paths := SearchPaths("custom")
	if len(paths) < 3 || paths[0] != "custom" || paths[1] != "images" {
		t.Errorf("SearchPaths = %v", paths)
	}

	dedup := SearchPaths("images")
	for i, p := range dedup[1:] {
		if p == "images" {
			t.Errorf("duplicate images entry at %d: %v", i+1, dedup)
		}
	}
}

func TestRegisteredSkins(t *testing.T) {
	for _, id := range []string{"builtin", "images", "auto"} {
		if !registry.Exists(id) {
			t.Errorf("skin %q not registered", id)
		}
	}

	src, err := registry.Create("auto", registry.Options{Dir: t.TempDir(), Size: 30})
	if err != nil {
		t.Fatal(err)
	}
	img, ok := src.Lookup("scissors")
	if !ok || img.Bounds().Dx() != 30 {
		t.Errorf("auto skin should fall back to builtin art at the requested size")
	}
}
