package deps

import (
	"strings"
	"sync"

	"github.com/matzehuels/licensefinder/pkg/errors"
)

// Factory constructs an adapter for one ecosystem.
type Factory struct {
	Name    string                // Adapter identifier (e.g., "maven")
	Aliases []string              // Alternative names accepted by Lookup
	New     func(Options) Adapter // Constructor
}

// Registry is an ordered list of adapter factories.
type Registry struct {
	mu        sync.RWMutex
	factories []Factory
}

// NewRegistry creates a registry holding factories in the given order.
func NewRegistry(factories ...Factory) *Registry {
	r := &Registry{}
	for _, f := range factories {
		r.Register(f)
	}
	return r
}

// Register appends f. A factory with the same name replaces the earlier one
// in place.
func (r *Registry) Register(f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.factories {
		if existing.Name == f.Name {
			r.factories[i] = f
			return
		}
	}
	r.factories = append(r.factories, f)
}

// All returns the registered factories in registration order.
func (r *Registry) All() []Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Factory, len(r.factories))
	copy(out, r.factories)
	return out
}

// Names returns the registered adapter names in registration order.
func (r *Registry) Names() []string {
	all := r.All()
	names := make([]string, len(all))
	for i, f := range all {
		names[i] = f.Name
	}
	return names
}

// Lookup finds a factory by name or alias (case-insensitive). An unknown
// name fails with ErrCodeNotFound.
func (r *Registry) Lookup(name string) (Factory, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range r.All() {
		if f.Name == name {
			return f, nil
		}
		for _, a := range f.Aliases {
			if a == name {
				return f, nil
			}
		}
	}
	return Factory{}, errors.New(errors.ErrCodeNotFound, "unknown package manager %q (available: %s)", name, strings.Join(r.Names(), ", "))
}

// Active builds every registered adapter for opts and returns those whose
// project files are present, in registration order.
func (r *Registry) Active(opts Options) []Adapter {
	var active []Adapter
	for _, f := range r.All() {
		if a := f.New(opts); a.Active() {
			active = append(active, a)
		}
	}
	return active
}
