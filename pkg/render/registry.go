package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrRendererNotFound is returned by Get for names with no registered
// renderer. Callers resolving a user-supplied renderer name can match it to
// fall back to a default backend.
var ErrRendererNotFound = errors.New("render: renderer not found")

// Registry stores rendering backends by name. The zero value is not usable;
// construct through NewRegistry. Safe for concurrent lookups.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Renderer
}

func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Renderer)}
}

// Register adds a renderer under its Name(). Names are trimmed; registering
// an empty name or an already-taken name is an error so wiring typos surface
// at startup rather than at render time.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	name := strings.TrimSpace(renderer.Name())
	if name == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.backends[name]; taken {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.backends[name] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name. The error names the registered backends
// so a mistyped -renderer flag is diagnosable from the message alone.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.backends[strings.TrimSpace(name)]
	r.mu.RUnlock()

	if !ok {
		available := r.List()
		if len(available) == 0 {
			return nil, fmt.Errorf("%w: %q (none registered)", ErrRendererNotFound, name)
		}
		return nil, fmt.Errorf("%w: %q (registered: %s)", ErrRendererNotFound, name, strings.Join(available, ", "))
	}
	return renderer, nil
}

// MustGet panics if the renderer is missing.
func (r *Registry) MustGet(name string) Renderer {
	renderer, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return renderer
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a renderer is registered under the given name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.backends[strings.TrimSpace(name)]
	return ok
}
