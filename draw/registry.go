package draw

import (
	"fmt"
	"sort"
	"sync"
)

// SurfaceFactory is a function that creates a new surface instance for a
// canvas of the given dimensions. Factories are registered via Register()
// and called by New().
type SurfaceFactory func(width, height int) Surface

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	surfaces   = make(map[string]SurfaceFactory)
)

// Register registers a surface factory with the given name.
// This function is typically called from init() in surface packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    draw.Register("framebuffer", func(w, h int) draw.Surface {
//	        return NewFramebufferSurface(w, h)
//	    })
//	}
//
// Register panics if factory is nil or if a surface with the same name is
// already registered, so duplicate registrations are caught during program
// initialization rather than silently overwriting surfaces.
func Register(name string, factory SurfaceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("draw: Register factory is nil")
	}
	if _, dup := surfaces[name]; dup {
		panic("draw: Register called twice for " + name)
	}
	surfaces[name] = factory
}

// Unregister removes a surface from the registry.
// This is primarily useful for testing to clean up between tests.
// If the surface is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(surfaces, name)
}

// New creates a new surface instance by name.
// The name must match a previously registered surface.
func New(name string, width, height int) (Surface, error) {
	registryMu.RLock()
	factory, ok := surfaces[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("draw: unknown surface %q (registered: %v)", name, List())
	}
	return factory(width, height), nil
}

// List returns the names of all registered surfaces in sorted order.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(surfaces))
	for name := range surfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
