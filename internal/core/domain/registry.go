package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Registry holds the set of modules loaded from one configuration snapshot.
type Registry struct {
	modules map[string]*Module
	order   []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]*Module),
	}
}

// Add registers a module. It returns an error if a module with the same name
// already exists.
func (r *Registry) Add(m *Module) error {
	if _, exists := r.modules[m.Name]; exists {
		return zerr.With(ErrModuleAlreadyExists, "module", m.Name)
	}
	r.modules[m.Name] = m
	r.order = append(r.order, m.Name)
	return nil
}

// Get returns the module with the given name.
func (r *Registry) Get(name string) (*Module, error) {
	m, ok := r.modules[name]
	if !ok {
		return nil, zerr.With(ErrModuleNotFound, "module", name)
	}
	return m, nil
}

// Names returns all registered module names in sorted order.
func (r *Registry) Names() []string {
	names := slices.Clone(r.order)
	slices.Sort(names)
	return names
}
