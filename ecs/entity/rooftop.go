package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
	"github.com/milk9111/roofhopper/prefabs"
)

var rooftopColor = color.RGBA{R: 0x5b, G: 0x5f, B: 0x73, A: 0xff}

// NewRooftop creates a static rooftop. Only an armed rooftop collides until
// the hopper has cleared it.
func NewRooftop(w *ecs.World, physics *ecs.PhysicsWorld, spec *prefabs.RooftopSpec, x, y float64, armed bool) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("rooftop: nil spec")
	}

	rooftop := w.CreateEntity()
	body := component.PhysicsBody{
		Width:      spec.Collider.Width,
		Height:     spec.Collider.Height,
		Friction:   spec.Collider.Friction,
		Elasticity: spec.Collider.Elasticity,
		Static:     true,
	}

	if err := ecs.Add(w, rooftop, component.RooftopComponent, component.Rooftop{CollisionEnabled: armed}); err != nil {
		return 0, fmt.Errorf("rooftop: add rooftop: %w", err)
	}
	if err := ecs.Add(w, rooftop, component.TransformComponent, component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("rooftop: add transform: %w", err)
	}
	if err := ecs.Add(w, rooftop, component.ContactComponent, component.Contact{}); err != nil {
		return 0, fmt.Errorf("rooftop: add contact: %w", err)
	}
	if err := ecs.Add(w, rooftop, component.PhysicsBodyComponent, body); err != nil {
		return 0, fmt.Errorf("rooftop: add physics body: %w", err)
	}
	if err := ecs.Add(w, rooftop, component.BoxComponent, boxFromSpec(spec.Box, body, rooftopColor)); err != nil {
		return 0, fmt.Errorf("rooftop: add box: %w", err)
	}

	if err := physics.AddStaticBox(rooftop, cp.Vector{X: x, Y: y}, bodySettings(body), armed); err != nil {
		return 0, fmt.Errorf("rooftop: add body: %w", err)
	}
	return rooftop, nil
}
