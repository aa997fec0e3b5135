package ecs

import "github.com/milk9111/roofhopper/ecs/component"

// World owns entities, their components and the game event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and marks it dead.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	var out []Entity
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// AddComponent inserts or replaces the value of a component kind on e.
func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	store, ok := w.stores[kind.ID()]
	if !ok {
		store = &SparseSet{}
		w.stores[kind.ID()] = store
	}
	store.Set(e, value)
	return nil
}

// GetComponent returns the raw value of a component kind on e.
func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if !w.IsAlive(e) || kind == nil {
		return nil, false
	}
	return w.stores[kind.ID()].Get(e)
}

// HasComponent reports whether e carries the component kind.
func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	if !w.IsAlive(e) || kind == nil {
		return false
	}
	return w.stores[kind.ID()].Has(e)
}

// RemoveComponent deletes the component kind from e.
func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if !w.IsAlive(e) || kind == nil {
		return false
	}
	return w.stores[kind.ID()].Remove(e)
}

// Query returns the live entities that carry every given kind, ordered by
// entity id so iteration is deterministic across ticks.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, kind := range kinds {
		store, ok := w.stores[kind.ID()]
		if !ok || store.Len() == 0 {
			return nil
		}
		sets = append(sets, store)
	}
	return intersectEntities(sets)
}

// First returns the lowest-id live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	entities := w.Query(kind)
	if len(entities) == 0 {
		return 0, false
	}
	return entities[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
