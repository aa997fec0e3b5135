package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
	"github.com/milk9111/roofhopper/prefabs"
)

var backgroundColor = color.RGBA{R: 0x1d, G: 0x2b, B: 0x53, A: 0xff}

// NewBackground creates a screen-sized backdrop that the camera carries.
func NewBackground(w *ecs.World, spec *prefabs.BackgroundSpec, width, height float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("background: nil spec")
	}

	background := w.CreateEntity()
	if err := ecs.Add(w, background, component.BackgroundTagComponent, component.BackgroundTag{}); err != nil {
		return 0, fmt.Errorf("background: add background tag: %w", err)
	}
	if err := ecs.Add(w, background, component.TransformComponent, component.Transform{X: width / 2, Y: height / 2}); err != nil {
		return 0, fmt.Errorf("background: add transform: %w", err)
	}
	box := boxFromSpec(spec.Box, component.PhysicsBody{Width: width, Height: height}, backgroundColor)
	if err := ecs.Add(w, background, component.BoxComponent, box); err != nil {
		return 0, fmt.Errorf("background: add box: %w", err)
	}
	return background, nil
}
