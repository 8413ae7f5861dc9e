// Package likeness provides the pictures contestants are drawn with:
// procedural built-in art, PNG files from an image directory, and a
// chain that falls back from one to the other.
package likeness

import (
	"image"
	"strings"

	"github.com/vovakirdan/rps-arcade/internal/registry"
	"github.com/vovakirdan/rps-arcade/internal/rps"
)

// Pending is the likeness shown while a battle is still shaking.
const Pending = "shake"

// IconScale is the share of the button size an icon occupies.
const IconScale = 0.85

// IconSize returns the icon edge length for a button size.
func IconSize(buttonSize int) int {
	return int(float64(buttonSize) * IconScale)
}

// Canonical normalizes a likeness name: choices map to their English
// name (German names are accepted), "shake" stays as is.
func Canonical(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == Pending {
		return Pending, true
	}
	c, err := rps.ParseChoice(key)
	if err != nil {
		return "", false
	}
	return c.String(), true
}

// Names lists every likeness a complete skin provides.
func Names() []string {
	return []string{rps.Rock.String(), rps.Paper.String(), rps.Scissors.String(), Pending}
}

// fileNames returns the file base names tried for a canonical name.
func fileNames(canonical string) []string {
	if canonical == Pending {
		return []string{Pending}
	}
	c, _ := rps.ParseChoice(canonical)
	return []string{c.String(), c.Alias()}
}

// Chain tries each source in order.
type Chain []registry.Source

// Lookup returns the first hit.
func (c Chain) Lookup(name string) (image.Image, bool) {
	for _, s := range c {
		if img, ok := s.Lookup(name); ok {
			return img, true
		}
	}
	return nil, false
}

func init() {
	registry.Register("builtin", "Built-in line art", func(opts registry.Options) (registry.Source, error) {
		return NewBuiltin(sizeOr(opts.Size), LiveStyle), nil
	})
	registry.Register("images", "Image directory", func(opts registry.Options) (registry.Source, error) {
		return NewDir(SearchPaths(opts.Dir), sizeOr(opts.Size)), nil
	})
	registry.Register("auto", "Image directory, falling back to built-in art", func(opts registry.Options) (registry.Source, error) {
		return Chain{
			NewDir(SearchPaths(opts.Dir), sizeOr(opts.Size)),
			NewBuiltin(sizeOr(opts.Size), LiveStyle),
		}, nil
	})
}

func sizeOr(size int) int {
	if size <= 0 {
		return IconSize(120)
	}
	return size
}
