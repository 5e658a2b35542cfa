package logging

import "sync"

// RootName is the registry name of the process root logger.
const RootName = ""

// Registry holds the process's named logger handles. The first lookup of a
// name creates its handle; later lookups return the same handle so
// reconfiguration mutates it in place and every holder observes the change.
//
// The registry is an explicit object rather than a hidden package global so
// hosts can pass their own through an application context. Package-level
// GetLogger and InitializeRootLogger operate on DefaultRegistry.
type Registry struct {
	mu      sync.Mutex
	handles map[string]*Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handles: make(map[string]*Handle)}
}

// Lookup returns the handle registered under name, creating it on first
// use. A fresh handle has no sinks and drops everything until configured.
func (r *Registry) Lookup(name string) *Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handles[name]
	if !ok {
		h = &Handle{name: name, level: LevelCritical + 1}
		r.handles[name] = h
	}
	return h
}

// Root returns the root handle.
func (r *Registry) Root() *Handle {
	return r.Lookup(RootName)
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry the package-level factory
// functions operate on.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
