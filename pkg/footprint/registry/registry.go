// Package registry keeps the set of footprint wizards a host can run
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint"
)

// Registry maps wizard names to wizards. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	wizards map[string]footprint.Wizard
}

// New creates an empty registry
func New() *Registry {
	return &Registry{wizards: make(map[string]footprint.Wizard)}
}

// Register adds w under its name. Registering a name twice is an error.
func (r *Registry) Register(w footprint.Wizard) error {
	name := w.Name()
	if name == "" {
		return fmt.Errorf("wizard has no name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if _, exists := r.wizards[key]; exists {
		return fmt.Errorf("wizard %q already registered", name)
	}
	r.wizards[key] = w
	return nil
}

// MustRegister is Register for start-up code; it panics on error
func (r *Registry) MustRegister(ws ...footprint.Wizard) {
	for _, w := range ws {
		if err := r.Register(w); err != nil {
			panic(err)
		}
	}
}

// Lookup finds a wizard by name, ignoring case
func (r *Registry) Lookup(name string) (footprint.Wizard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wizards[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown wizard %q", name)
	}
	return w, nil
}

// Names returns the registered wizard names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.wizards))
	for _, w := range r.wizards {
		names = append(names, w.Name())
	}
	sort.Strings(names)
	return names
}

// Wizards returns the registered wizards ordered by name
func (r *Registry) Wizards() []footprint.Wizard {
	names := r.Names()
	out := make([]footprint.Wizard, 0, len(names))
	for _, n := range names {
		w, _ := r.Lookup(n)
		out = append(out, w)
	}
	return out
}
