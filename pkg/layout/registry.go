package layout

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores layouts by name, giving hosts a process-level home for
// their layout units and a second line of defence against name reuse beyond
// what Combine enforces per call.
type Registry struct {
	mu      sync.RWMutex
	layouts map[string]*Layout
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		layouts: make(map[string]*Layout),
	}
}

// Register adds a layout by its Name(). Duplicate names return an error.
func (r *Registry) Register(l *Layout) error {
	if l == nil {
		return fmt.Errorf("layout: layout is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.layouts[l.name]; exists {
		return fmt.Errorf("layout: layout %q already registered", l.name)
	}

	r.layouts[l.name] = l
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(l *Layout) {
	if err := r.Register(l); err != nil {
		panic(err)
	}
}

// Get retrieves a layout by name.
func (r *Registry) Get(name string) (*Layout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.layouts[name]
	if !ok {
		return nil, fmt.Errorf("layout: layout %q not found", name)
	}
	return l, nil
}

// MustGet panics if the layout is missing.
func (r *Registry) MustGet(name string) *Layout {
	l, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return l
}

// List returns a sorted list of registered names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.layouts))
	for name := range r.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a layout is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.layouts[name]
	return ok
}
