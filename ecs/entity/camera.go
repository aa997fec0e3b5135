package entity

import (
	"fmt"

	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
)

// NewCamera creates a camera centred on the screen.
func NewCamera(w *ecs.World, width, height float64) (ecs.Entity, error) {
	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraTagComponent, component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent, component.Camera{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent, component.Transform{X: width / 2, Y: height / 2}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	return camera, nil
}
