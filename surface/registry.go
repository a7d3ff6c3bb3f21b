// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Backend describes a registered surface implementation.
type Backend struct {
	// Name is the unique identifier, e.g. "software".
	Name string

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates surfaces.
	Factory Factory

	// Available reports whether the backend can be used on this system.
	Available func() bool
}

// Registry manages registered surface backends.
//
//	func init() {
//	    surface.Register("software", 10, newSurface, nil)
//	}
//
//	s, err := surface.NewSurface(800, 600)
type Registry struct {
	mu       sync.RWMutex
	backends map[string]*Backend
}

var globalRegistry = NewRegistry()

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewSurface.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]*Backend)}
}

// Register adds a backend to the global registry.
// A nil available func means the backend is always available. Registering
// an existing name replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Backends returns the available backend names, highest priority first.
func Backends() []string {
	return globalRegistry.Backends()
}

// NewSurface creates a width×height surface with the best available backend.
func NewSurface(width, height int) (Surface, error) {
	return globalRegistry.NewSurface(Options{Width: width, Height: height})
}

// NewSurfaceWithOptions creates a surface with the best available backend.
// It has the Factory signature and is the default factory of gg-graphics.
func NewSurfaceWithOptions(opts Options) (Surface, error) {
	return globalRegistry.NewSurface(opts)
}

// NewSurfaceByName creates a surface with a specific backend.
func NewSurfaceByName(name string, width, height int) (Surface, error) {
	return globalRegistry.NewSurfaceByName(name, Options{Width: width, Height: height})
}

// FactoryByName returns a Factory bound to the named backend of the
// global registry. Lookup happens on every call.
func FactoryByName(name string) Factory {
	return func(opts Options) (Surface, error) {
		return globalRegistry.NewSurfaceByName(name, opts)
	}
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	if factory == nil {
		panic("surface: Register factory is nil")
	}
	if available == nil {
		available = func() bool { return true }
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[name] = &Backend{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// Get returns a copy of the named backend entry.
func (r *Registry) Get(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.backends[name]
	if !ok {
		return Backend{}, false
	}
	return *b, true
}

// Backends returns the available backend names, highest priority first.
// Ties are broken by name so the order is stable.
func (r *Registry) Backends() []string {
	r.mu.RLock()
	list := make([]*Backend, 0, len(r.backends))
	for _, b := range r.backends {
		list = append(list, b)
	}
	r.mu.RUnlock()

	names := make([]string, 0, len(list))
	sort.Slice(list, func(i, j int) bool {
		if list[i].Priority != list[j].Priority {
			return list[i].Priority > list[j].Priority
		}
		return list[i].Name < list[j].Name
	})
	for _, b := range list {
		if b.Available() {
			names = append(names, b.Name)
		}
	}
	return names
}

// NewSurface creates a surface using the best available backend, falling
// back to lower priorities when a factory fails.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	names := r.Backends()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range names {
		s, err := r.NewSurfaceByName(name, opts)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// NewSurfaceByName creates a surface using a specific backend.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	b, ok := r.Get(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !b.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return b.Factory(opts)
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no surface backends are registered
	// or available on the current system.
	ErrNoBackendAvailable = errors.New("surface: no backend available (forgotten import of canvas?)")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}
