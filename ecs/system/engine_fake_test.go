package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/roofhopper/config"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
)

type fakeEngine struct {
	contacts   []component.ContactEvent
	velocities map[ecs.Entity]cp.Vector
	forces     map[ecs.Entity][]cp.Vector
	colliders  map[ecs.Entity]bool
	toggles    int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		velocities: make(map[ecs.Entity]cp.Vector),
		forces:     make(map[ecs.Entity][]cp.Vector),
		colliders:  make(map[ecs.Entity]bool),
	}
}

func (f *fakeEngine) DrainContacts() []component.ContactEvent {
	out := f.contacts
	f.contacts = nil
	return out
}

func (f *fakeEngine) NextVelocity(e ecs.Entity) (cp.Vector, bool) {
	v, ok := f.velocities[e]
	return v, ok
}

func (f *fakeEngine) SetNextVelocity(e ecs.Entity, v cp.Vector) {
	f.velocities[e] = v
}

func (f *fakeEngine) ApplyForce(e ecs.Entity, force cp.Vector) {
	f.forces[e] = append(f.forces[e], force)
}

func (f *fakeEngine) SetColliderEnabled(e ecs.Entity, enabled bool) {
	if f.colliders[e] != enabled {
		f.toggles++
	}
	f.colliders[e] = enabled
}

func (f *fakeEngine) touch(a, b ecs.Entity) {
	f.contacts = append(f.contacts, component.ContactEvent{EntityA: uint64(a), EntityB: uint64(b)})
}

var _ PhysicsEngine = (*fakeEngine)(nil)

func testConfig() *config.GameConfiguration {
	cfg := config.Default()
	return &cfg
}

func mustAdd[T any](w *ecs.World, e ecs.Entity, handle component.ComponentHandle[T], value T) {
	if err := ecs.Add(w, e, handle, value); err != nil {
		panic(err)
	}
}

// newTestHopper creates a player entity carrying everything the hopper
// systems read.
func newTestHopper(w *ecs.World, state component.HopperState) ecs.Entity {
	e := w.CreateEntity()
	hopper := component.NewHopper()
	hopper.State = state
	mustAdd(w, e, component.PlayerTagComponent, component.PlayerTag{})
	mustAdd(w, e, component.HopperComponent, hopper)
	mustAdd(w, e, component.ContactComponent, component.Contact{})
	mustAdd(w, e, component.InputComponent, component.Input{})
	mustAdd(w, e, component.TransformComponent, component.Transform{})
	return e
}

func newTestRooftop(w *ecs.World, y float64, enabled bool) ecs.Entity {
	e := w.CreateEntity()
	mustAdd(w, e, component.RooftopComponent, component.Rooftop{CollisionEnabled: enabled})
	mustAdd(w, e, component.ContactComponent, component.Contact{})
	mustAdd(w, e, component.TransformComponent, component.Transform{Y: y})
	return e
}

func hopperOf(w *ecs.World, e ecs.Entity) component.Hopper {
	h, ok := ecs.Get(w, e, component.HopperComponent)
	if !ok {
		panic("hopper missing")
	}
	return h
}

func setHopper(w *ecs.World, e ecs.Entity, mutate func(h *component.Hopper)) {
	h := hopperOf(w, e)
	mutate(&h)
	mustAdd(w, e, component.HopperComponent, h)
}
