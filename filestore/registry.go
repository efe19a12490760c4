package filestore

import "sync"

// Registry caches one Storage per mappings directory. Directories are keyed
// by the string exactly as given; "mappings" and "./mappings" are distinct
// entries.
//
// A process normally creates one Registry at startup and passes it to
// whatever needs lookups; Clear returns it to its initial state.
type Registry struct {
	mu       sync.Mutex
	opts     []Option
	storages map[string]*Storage
}

// NewRegistry returns an empty registry. opts are applied to every Storage
// it creates.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		opts:     opts,
		storages: make(map[string]*Storage),
	}
}

// Get returns the Storage for dir, creating it on first use. A cached
// storage has its failure flag reset so the caller's queries retry a load
// that failed earlier.
func (r *Registry) Get(dir string) *Storage {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.storages[dir]; ok {
		s.ResetLoadFailed()
		return s
	}
	s := New(dir, r.opts...)
	r.storages[dir] = s
	return s
}

// Len returns the number of cached storages.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.storages)
}

// Clear drops every cached storage. Storages handed out earlier are emptied
// and no longer tracked.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.storages {
		s.Clear()
	}
	r.storages = make(map[string]*Storage)
}
