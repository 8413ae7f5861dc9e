// Package registry holds the named likeness sources ("skins") the game
// can draw contestants with. Sources register themselves in init()
// functions so front-ends can list and create them by name.
package registry

import (
	"fmt"
	"image"
	"sort"
	"sync"
)

// Source resolves a likeness name ("rock", "paper", "scissors", "shake")
// to an image. A missing likeness is reported with ok=false and the
// renderer simply skips it.
type Source interface {
	Lookup(name string) (img image.Image, ok bool)
}

// Options configure a source at creation time.
type Options struct {
	// Dir is the preferred image directory; the usual fallbacks are
	// searched after it.
	Dir string
	// Size is the edge length images are scaled to, in pixels.
	Size int
}

// Info describes a registered source.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new source instance.
type Factory func(opts Options) (Source, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a source factory. Panics on duplicate IDs.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: skin %q already registered", id))
	}
	factories[id] = f
	titles[id] = title
}

// List returns all registered sources sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a source by ID.
func Create(id string, opts Options) (Source, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown skin %q", id)
	}
	src, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return src, nil
}

// Exists checks if a source with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
