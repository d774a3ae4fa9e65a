package ecs

// Removable is implemented by all entity stores so the Registry can
// bulk-remove an entity's data from every store on destroy.
type Removable interface {
	Remove(id EntityID)
}

// Compactable stores close the gaps left by Remove in a single pass.
type Compactable interface {
	Compact()
}

// Registry tracks all entity stores and supports bulk cleanup on entity destroy.
type Registry struct {
	stores []Removable
}

func NewRegistry() *Registry {
	return &Registry{
		stores: make([]Removable, 0, 16),
	}
}

// Register adds a store to the registry.
func (r *Registry) Register(store Removable) {
	r.stores = append(r.stores, store)
}

// RemoveAll clears the given entity from every registered store.
func (r *Registry) RemoveAll(id EntityID) {
	for _, s := range r.stores {
		s.Remove(id)
	}
}

// CompactAll compacts every store that supports it.
func (r *Registry) CompactAll() {
	for _, s := range r.stores {
		if c, ok := s.(Compactable); ok {
			c.Compact()
		}
	}
}
