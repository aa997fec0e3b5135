package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
	"github.com/milk9111/roofhopper/prefabs"
)

var hopperColor = color.RGBA{R: 0xf2, G: 0xc1, B: 0x4e, A: 0xff}

// NewHopper creates the player at (x, y) in world space, starting to fall.
func NewHopper(w *ecs.World, physics *ecs.PhysicsWorld, spec *prefabs.HopperSpec, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("hopper: nil spec")
	}

	hopper := w.CreateEntity()
	body := component.PhysicsBody{
		Width:      spec.Collider.Width,
		Height:     spec.Collider.Height,
		Mass:       spec.Collider.Mass,
		Friction:   spec.Collider.Friction,
		Elasticity: spec.Collider.Elasticity,
	}

	if err := ecs.Add(w, hopper, component.PlayerTagComponent, component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("hopper: add player tag: %w", err)
	}
	if err := ecs.Add(w, hopper, component.HopperComponent, component.NewHopper()); err != nil {
		return 0, fmt.Errorf("hopper: add hopper: %w", err)
	}
	if err := ecs.Add(w, hopper, component.TransformComponent, component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("hopper: add transform: %w", err)
	}
	if err := ecs.Add(w, hopper, component.ContactComponent, component.Contact{}); err != nil {
		return 0, fmt.Errorf("hopper: add contact: %w", err)
	}
	if err := ecs.Add(w, hopper, component.InputComponent, component.Input{}); err != nil {
		return 0, fmt.Errorf("hopper: add input: %w", err)
	}
	if err := ecs.Add(w, hopper, component.PhysicsBodyComponent, body); err != nil {
		return 0, fmt.Errorf("hopper: add physics body: %w", err)
	}
	if err := ecs.Add(w, hopper, component.BoxComponent, boxFromSpec(spec.Box, body, hopperColor)); err != nil {
		return 0, fmt.Errorf("hopper: add box: %w", err)
	}

	if err := physics.AddDynamicBox(hopper, cp.Vector{X: x, Y: y}, bodySettings(body)); err != nil {
		return 0, fmt.Errorf("hopper: add body: %w", err)
	}
	return hopper, nil
}

func bodySettings(body component.PhysicsBody) ecs.BodySettings {
	return ecs.BodySettings{
		Mass:       body.Mass,
		Width:      body.Width,
		Height:     body.Height,
		Elasticity: body.Elasticity,
		Friction:   body.Friction,
	}
}

func boxFromSpec(spec prefabs.BoxSpec, body component.PhysicsBody, fallback color.RGBA) component.Box {
	box := component.Box{
		Width:  spec.Width,
		Height: spec.Height,
		Color:  spec.RGBA(fallback),
		Layer:  spec.Layer,
	}
	if box.Width == 0 {
		box.Width = body.Width
	}
	if box.Height == 0 {
		box.Height = body.Height
	}
	return box
}
