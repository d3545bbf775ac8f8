// Package render holds what every render backend shares: the texture registry
// that sprites index into and the polling contract with the simulation.
package render

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"
	"github.com/plus3/yock/sim"
)

// ErrEmptyRegistry is returned when a registry would be loaded with no textures.
var ErrEmptyRegistry = errors.New("texture registry is empty")

// Source is what a renderer polls once per frame. The returned slice must not
// be modified or kept past the draw call.
type Source interface {
	Sprites() []sim.Sprite
}

// Loader produces one texture handle.
type Loader[H any] func() (H, error)

// Registry maps TextureID to a backend-specific drawable handle. It is
// populated once by Load and read-only afterwards.
type Registry[H any] struct {
	handles *intmap.Map[sim.TextureID, H]
}

// NewRegistry creates an empty registry.
func NewRegistry[H any]() *Registry[H] {
	return &Registry[H]{
		handles: intmap.New[sim.TextureID, H](8),
	}
}

// Load runs every loader and assigns the handles to TextureID 0..n-1. If any
// loader fails the registry is left empty and the error names the failed index.
func (r *Registry[H]) Load(loaders ...Loader[H]) error {
	if len(loaders) == 0 {
		return ErrEmptyRegistry
	}

	handles := intmap.New[sim.TextureID, H](len(loaders))
	for i, load := range loaders {
		handle, err := load()
		if err != nil {
			return fmt.Errorf("load texture %d: %w", i, err)
		}
		handles.Put(sim.TextureID(i), handle)
	}

	r.handles = handles
	return nil
}

// Len returns the number of textures. Registry satisfies sim.TexturePool.
func (r *Registry[H]) Len() int {
	return r.handles.Len()
}

// Resolve returns the handle for id, falling back to texture 0 for ids outside
// the registry.
func (r *Registry[H]) Resolve(id sim.TextureID) H {
	if handle, ok := r.handles.Get(id); ok {
		return handle
	}
	handle, _ := r.handles.Get(0)
	return handle
}

// Values returns a loader for each of the given handles, for registries whose
// handles need no I/O.
func Values[H any](handles ...H) []Loader[H] {
	loaders := make([]Loader[H], len(handles))
	for i, handle := range handles {
		loaders[i] = func() (H, error) { return handle, nil }
	}
	return loaders
}
