package ecs

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/roofhopper/ecs/component"
)

const (
	collisionTypeHopper cp.CollisionType = iota + 1
	collisionTypeRooftop
)

// PhysicsSettings configures the Chipmunk space.
type PhysicsSettings struct {
	Gravity    float64
	TimeStep   float64
	Iterations int
}

// BodySettings describes a box collider.
type BodySettings struct {
	Mass       float64
	Width      float64
	Height     float64
	Elasticity float64
	Friction   float64
}

type physicsEntry struct {
	body    *cp.Body
	shape   *cp.Shape
	static  bool
	enabled bool
	// centre of a static box; the shared static body has no position of its own
	center cp.Vector
}

// PhysicsWorld owns the Chipmunk space. It records hopper/rooftop contacts
// during each step and exposes the body velocities that the next step will
// integrate from, so gameplay systems can steer them between steps.
type PhysicsWorld struct {
	space    *cp.Space
	timeStep float64

	entries       map[Entity]*physicsEntry
	shapeToEntity map[*cp.Shape]Entity
	contacts      []component.ContactEvent
}

// NewPhysicsWorld creates a physics world with its collision handlers.
func NewPhysicsWorld(settings PhysicsSettings) *PhysicsWorld {
	space := cp.NewSpace()
	if settings.Iterations > 0 {
		space.Iterations = uint(settings.Iterations)
	}
	space.SetGravity(cp.Vector{X: 0, Y: settings.Gravity})

	timeStep := settings.TimeStep
	if timeStep <= 0 {
		timeStep = 1
	}

	pw := &PhysicsWorld{
		space:         space,
		timeStep:      timeStep,
		entries:       make(map[Entity]*physicsEntry),
		shapeToEntity: make(map[*cp.Shape]Entity),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddDynamicBox creates the hopper's body centred on pos. Rotation is locked.
func (pw *PhysicsWorld) AddDynamicBox(e Entity, pos cp.Vector, settings BodySettings) error {
	if err := pw.checkNew(e, settings); err != nil {
		return err
	}
	if settings.Mass <= 0 {
		return fmt.Errorf("ecs: add dynamic box %s: mass must be positive", e)
	}

	body := cp.NewBody(settings.Mass, math.Inf(1))
	body.SetPosition(pos)
	shape := cp.NewBox(body, settings.Width, settings.Height, 0)
	shape.SetElasticity(settings.Elasticity)
	shape.SetFriction(settings.Friction)
	shape.SetCollisionType(collisionTypeHopper)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.entries[e] = &physicsEntry{body: body, shape: shape, enabled: true}
	pw.shapeToEntity[shape] = e
	log.Debug("physics: added dynamic box", "entity", e, "x", pos.X, "y", pos.Y)
	return nil
}

// AddStaticBox creates a rooftop collider centred on pos. A disabled
// collider is kept out of the space until SetColliderEnabled arms it.
func (pw *PhysicsWorld) AddStaticBox(e Entity, pos cp.Vector, settings BodySettings, enabled bool) error {
	if err := pw.checkNew(e, settings); err != nil {
		return err
	}

	bb := cp.BB{
		L: pos.X - settings.Width/2,
		B: pos.Y - settings.Height/2,
		R: pos.X + settings.Width/2,
		T: pos.Y + settings.Height/2,
	}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetElasticity(settings.Elasticity)
	shape.SetFriction(settings.Friction)
	shape.SetCollisionType(collisionTypeRooftop)

	pw.entries[e] = &physicsEntry{body: pw.space.StaticBody, shape: shape, static: true, enabled: enabled, center: pos}
	pw.shapeToEntity[shape] = e
	if enabled {
		pw.space.AddShape(shape)
	}
	log.Debug("physics: added static box", "entity", e, "x", pos.X, "y", pos.Y, "enabled", enabled)
	return nil
}

func (pw *PhysicsWorld) checkNew(e Entity, settings BodySettings) error {
	if pw == nil || pw.space == nil {
		return fmt.Errorf("ecs: add body %s: physics world not initialised", e)
	}
	if !e.Valid() {
		return fmt.Errorf("ecs: add body %s: %w", e, component.ErrEntityNotAlive)
	}
	if _, exists := pw.entries[e]; exists {
		return fmt.Errorf("ecs: add body %s: entity already has a body", e)
	}
	if settings.Width <= 0 || settings.Height <= 0 {
		return fmt.Errorf("ecs: add body %s: box must have a positive size", e)
	}
	return nil
}

// RemoveEntity drops an entity's body and shape from the space.
func (pw *PhysicsWorld) RemoveEntity(e Entity) {
	if pw == nil {
		return
	}
	entry, ok := pw.entries[e]
	if !ok {
		return
	}
	if entry.enabled {
		pw.space.RemoveShape(entry.shape)
	}
	if !entry.static {
		pw.space.RemoveBody(entry.body)
	}
	delete(pw.shapeToEntity, entry.shape)
	delete(pw.entries, e)
}

// Step advances the simulation by one fixed time step. Forces applied since
// the previous step are consumed and cleared.
func (pw *PhysicsWorld) Step() {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(pw.timeStep)
	for _, entry := range pw.entries {
		if !entry.static {
			entry.body.SetForce(cp.Vector{})
		}
	}
}

// DrainContacts returns the contacts recorded since the last call.
func (pw *PhysicsWorld) DrainContacts() []component.ContactEvent {
	if pw == nil || len(pw.contacts) == 0 {
		return nil
	}
	out := pw.contacts
	pw.contacts = nil
	return out
}

// NextVelocity returns the velocity the next step integrates positions with.
func (pw *PhysicsWorld) NextVelocity(e Entity) (cp.Vector, bool) {
	entry, ok := pw.dynamic(e)
	if !ok {
		return cp.Vector{}, false
	}
	return entry.body.Velocity(), true
}

// SetNextVelocity overwrites the velocity the next step integrates from.
func (pw *PhysicsWorld) SetNextVelocity(e Entity, v cp.Vector) {
	if entry, ok := pw.dynamic(e); ok {
		entry.body.SetVelocityVector(v)
	}
}

// ApplyForce adds f to the entity's force accumulator for the next step.
func (pw *PhysicsWorld) ApplyForce(e Entity, f cp.Vector) {
	if entry, ok := pw.dynamic(e); ok {
		entry.body.SetForce(entry.body.Force().Add(f))
	}
}

// Force returns the force accumulated for the next step.
func (pw *PhysicsWorld) Force(e Entity) (cp.Vector, bool) {
	entry, ok := pw.dynamic(e)
	if !ok {
		return cp.Vector{}, false
	}
	return entry.body.Force(), true
}

// SetColliderEnabled adds or removes a collider from the space.
func (pw *PhysicsWorld) SetColliderEnabled(e Entity, enabled bool) {
	if pw == nil {
		return
	}
	entry, ok := pw.entries[e]
	if !ok || entry.enabled == enabled {
		return
	}
	if enabled {
		pw.space.AddShape(entry.shape)
	} else {
		pw.space.RemoveShape(entry.shape)
	}
	entry.enabled = enabled
	log.Debug("physics: collider toggled", "entity", e, "enabled", enabled)
}

// ColliderEnabled reports whether the entity's collider is in the space.
func (pw *PhysicsWorld) ColliderEnabled(e Entity) bool {
	if pw == nil {
		return false
	}
	entry, ok := pw.entries[e]
	return ok && entry.enabled
}

// Position returns the centre of the entity's collider.
func (pw *PhysicsWorld) Position(e Entity) (cp.Vector, bool) {
	if pw == nil {
		return cp.Vector{}, false
	}
	entry, ok := pw.entries[e]
	if !ok {
		return cp.Vector{}, false
	}
	if entry.static {
		return entry.center, true
	}
	return entry.body.Position(), true
}

func (pw *PhysicsWorld) dynamic(e Entity) (*physicsEntry, bool) {
	if pw == nil {
		return nil, false
	}
	entry, ok := pw.entries[e]
	if !ok || entry.static {
		return nil, false
	}
	return entry, true
}

func (pw *PhysicsWorld) setupHandlers() {
	handler := pw.space.NewCollisionHandler(collisionTypeHopper, collisionTypeRooftop)
	handler.UserData = pw
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		a := world.shapeToEntity[shapeA]
		b := world.shapeToEntity[shapeB]
		world.contacts = append(world.contacts, component.ContactEvent{
			EntityA: uint64(a),
			EntityB: uint64(b),
			Normal:  arb.Normal(),
		})
		return true
	}
}
