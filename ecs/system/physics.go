package system

import (
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
)

// PhysicsSystem advances the physics world one step and copies body
// positions back into transforms.
type PhysicsSystem struct {
	physics *ecs.PhysicsWorld
}

func NewPhysicsSystem(physics *ecs.PhysicsWorld) *PhysicsSystem {
	return &PhysicsSystem{physics: physics}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || p.physics == nil {
		return
	}

	p.physics.Step()

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || body.Static {
			continue
		}
		pos, ok := p.physics.Position(e)
		if !ok {
			continue
		}
		if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: pos.X, Y: pos.Y}); err != nil {
			panic("physics system: update transform: " + err.Error())
		}
	}
}
