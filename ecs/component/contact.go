package component

import "github.com/jakecoffman/cp"

// ContactEvent is one touching pair reported by the physics engine.
// Entities are stored as raw ecs.Entity values.
type ContactEvent struct {
	EntityA uint64
	EntityB uint64
	Normal  cp.Vector
}

// Involves reports whether e is one of the two participants.
func (c ContactEvent) Involves(e uint64) bool {
	return c.EntityA == e || c.EntityB == e
}

// Contact holds the last contact event naming this entity during the
// current tick. It is rebuilt from empty every tick.
type Contact struct {
	Event *ContactEvent
}

func (c Contact) InContact() bool {
	return c.Event != nil
}

var ContactComponent = NewComponent[Contact]()
