package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
)

// PhysicsEngine is what the hopper systems need from the rigid-body engine.
// ecs.PhysicsWorld implements it.
type PhysicsEngine interface {
	// DrainContacts returns the contacts produced since the previous call.
	DrainContacts() []component.ContactEvent
	// NextVelocity is the velocity the next step will integrate from.
	NextVelocity(e ecs.Entity) (cp.Vector, bool)
	SetNextVelocity(e ecs.Entity, v cp.Vector)
	// ApplyForce adds to the force consumed by the next step.
	ApplyForce(e ecs.Entity, f cp.Vector)
	SetColliderEnabled(e ecs.Entity, enabled bool)
}

var _ PhysicsEngine = (*ecs.PhysicsWorld)(nil)
