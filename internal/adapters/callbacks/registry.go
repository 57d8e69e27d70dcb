// Package callbacks provides the in-process registry for package file
// callbacks.
package callbacks

import (
	"sync"

	"go.trai.ch/lode/internal/core/ports"
)

var _ ports.CallbackRegistry = (*Registry)(nil)

// Registry implements ports.CallbackRegistry with an in-memory map.
// Callbacks register during startup, before any expansion runs.
type Registry struct {
	mu        sync.RWMutex
	callbacks map[string]ports.PackageCallback
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{callbacks: make(map[string]ports.PackageCallback)}
}

// Register binds a callback to a name, replacing any previous binding.
func (r *Registry) Register(name string, cb ports.PackageCallback) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.callbacks[name] = cb
}

// Lookup returns the callback registered under name.
func (r *Registry) Lookup(name string) (ports.PackageCallback, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cb, ok := r.callbacks[name]
	return cb, ok
}
