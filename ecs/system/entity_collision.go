package system

import (
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
)

// EntityCollisionSystem rebuilds every Contact component from the engine's
// contacts for this tick. The last event naming an entity wins.
type EntityCollisionSystem struct {
	engine PhysicsEngine
}

func NewEntityCollisionSystem(engine PhysicsEngine) *EntityCollisionSystem {
	return &EntityCollisionSystem{engine: engine}
}

func (s *EntityCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ContactComponent.Kind(), func(e ecs.Entity, contact *component.Contact) {
		contact.Event = nil
	})

	if s.engine == nil {
		return
	}

	for _, evt := range s.engine.DrainContacts() {
		s.record(w, ecs.Entity(evt.EntityA), &evt)
		s.record(w, ecs.Entity(evt.EntityB), &evt)
	}
}

func (s *EntityCollisionSystem) record(w *ecs.World, e ecs.Entity, evt *component.ContactEvent) {
	if !ecs.Has(w, e, component.ContactComponent) {
		return
	}
	if err := ecs.Add(w, e, component.ContactComponent, component.Contact{Event: evt}); err != nil {
		panic("entity collision system: update contact: " + err.Error())
	}
}
