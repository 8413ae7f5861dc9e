package likeness

import (
	"fmt"
	"image"
	_ "image/gif" // decoders for image.Decode
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// extensions tried for every file name, in order.
var extensions = []string{".png", ".gif", ".jpg"}

// SearchPaths returns the directories searched for likeness images:
// the preferred directory first, then ./images, ../images and the
// images directory next to the executable. Duplicates are dropped.
func SearchPaths(preferred string) []string {
	candidates := []string{preferred, "images", filepath.Join("..", "images")}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "images"))
	}

	seen := make(map[string]bool)
	var paths []string
	for _, p := range candidates {
		if p == "" {
			continue
		}
		key := p
		if abs, err := filepath.Abs(p); err == nil {
			key = abs
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		paths = append(paths, p)
	}
	return paths
}

// Dir loads likeness images from disk, scaled to a square icon.
// Both English and German file names are accepted (rock.png or
// stein.png). Results, including misses, are cached.
type Dir struct {
	paths []string
	size  int

	mu    sync.Mutex
	cache map[string]image.Image
}

// NewDir creates a source searching paths in order.
func NewDir(paths []string, size int) *Dir {
	return &Dir{paths: paths, size: size, cache: make(map[string]image.Image)}
}

// Paths returns the search directories.
func (d *Dir) Paths() []string {
	return d.paths
}

// Lookup returns the scaled image for name if a file exists.
func (d *Dir) Lookup(name string) (image.Image, bool) {
	key, ok := Canonical(name)
	if !ok {
		return nil, false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if img, cached := d.cache[key]; cached {
		return img, img != nil
	}
	img, _, err := d.Load(key)
	if err != nil {
		img = nil
	}
	d.cache[key] = img
	return img, img != nil
}

// Load finds and decodes the image for name without caching. It
// returns the path used, or an error naming the last failure.
func (d *Dir) Load(name string) (image.Image, string, error) {
	key, ok := Canonical(name)
	if !ok {
		return nil, "", fmt.Errorf("likeness: unknown name %q", name)
	}

	lastErr := fmt.Errorf("likeness: no image for %q in %v", key, d.paths)
	for _, dir := range d.paths {
		for _, base := range fileNames(key) {
			for _, ext := range extensions {
				path := filepath.Join(dir, base+ext)
				img, err := decodeFile(path)
				if err != nil {
					if !os.IsNotExist(err) {
						lastErr = err
					}
					continue
				}
				return d.scale(img), path, nil
			}
		}
	}
	return nil, "", lastErr
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("likeness: decode %s: %w", path, err)
	}
	return img, nil
}

func (d *Dir) scale(src image.Image) image.Image {
	if d.size <= 0 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, d.size, d.size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
