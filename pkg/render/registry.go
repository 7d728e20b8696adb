package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry stores renderers by name. Names are matched case-insensitively,
// so "HTML" from a query string or flag finds the "html" renderer. It is safe
// for concurrent use, so one registry can serve every document of a BuildAll
// run.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
	}
}

// NewRegistryWith creates a registry holding renderers.
func NewRegistryWith(renderers ...Renderer) (*Registry, error) {
	registry := NewRegistry()
	if err := registry.RegisterAll(renderers...); err != nil {
		return nil, err
	}
	return registry, nil
}

// Register adds a renderer by its Name(). Duplicate names return an error.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := canonicalName(renderer.Name())
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRenderer, name)
	}

	r.renderers[name] = renderer
	return nil
}

// RegisterAll registers each renderer in order and stops at the first error.
func (r *Registry) RegisterAll(renderers ...Renderer) error {
	for _, renderer := range renderers {
		if err := r.Register(renderer); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name. Unknown names wrap ErrUnknownRenderer and
// the message lists what is registered.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[canonicalName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownRenderer, name, r.describeLocked())
	}
	return renderer, nil
}

// Resolve picks the renderer for a request. An explicit name must exist. An
// empty name falls back to fallback and then to the first registered name.
func (r *Registry) Resolve(name, fallback string) (Renderer, error) {
	if strings.TrimSpace(name) != "" {
		return r.Get(name)
	}
	if strings.TrimSpace(fallback) != "" {
		renderer, err := r.Get(fallback)
		if err == nil {
			return renderer, nil
		}
		if !errors.Is(err, ErrUnknownRenderer) {
			return nil, err
		}
	}

	names := r.List()
	if len(names) == 0 {
		return nil, ErrNoRenderers
	}
	return r.Get(names[0])
}

// MustGet panics if the renderer is missing.
func (r *Registry) MustGet(name string) Renderer {
	renderer, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return renderer
}

// List returns a sorted list of renderer names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

// Describe returns the registered names joined for usage and error text.
func (r *Registry) Describe() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.describeLocked()
}

// Has reports whether a renderer is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[canonicalName(name)]
	return ok
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) describeLocked() string {
	names := r.namesLocked()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

func canonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
