package ecs

// World is the top-level entity container. It owns the entity pool and the
// store registry. Destroy is immediate: the entity disappears from every store
// and its handle goes stale in the same call. Compact, run by the cleanup
// system at tick end, closes the gaps.
type World struct {
	pool     *EntityPool
	registry *Registry
}

func NewWorld() *World {
	return &World{
		pool:     NewEntityPool(),
		registry: NewRegistry(),
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// Destroy removes the entity from every store and invalidates its handle.
// Returns false when the handle was already stale.
func (w *World) Destroy(id EntityID) bool {
	if !w.pool.Alive(id) {
		return false
	}
	w.registry.RemoveAll(id)
	return w.pool.Destroy(id)
}

// Release invalidates handles whose store entries were already dropped
// wholesale (see Store.Clear).
func (w *World) Release(ids []EntityID) {
	for _, id := range ids {
		w.pool.Destroy(id)
	}
}

// Compact closes removed slots in every registered store.
func (w *World) Compact() {
	w.registry.CompactAll()
}

// Reset invalidates every outstanding handle. Stores must be cleared by
// their owner.
func (w *World) Reset() {
	w.pool.Reset()
}
