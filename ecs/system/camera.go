package system

import (
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
)

// CameraSystem raises the camera to follow the hopper upward and carries the
// background with it. The camera never moves down.
type CameraSystem struct {
	player ecs.Entity
	camera ecs.Entity
}

func NewCameraSystem(player, camera ecs.Entity) *CameraSystem {
	return &CameraSystem{player: player, camera: camera}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	playerTransform, ok := ecs.Get(w, cs.player, component.TransformComponent)
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camera, component.TransformComponent)
	if !ok {
		return
	}

	dy := playerTransform.Y - camTransform.Y
	if dy <= 0 {
		return
	}

	camTransform.Y += dy
	if err := ecs.Add(w, cs.camera, component.TransformComponent, camTransform); err != nil {
		panic("camera system: update transform: " + err.Error())
	}

	for _, e := range w.Query(component.BackgroundTagComponent.Kind(), component.TransformComponent.Kind()) {
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		transform.Y += dy
		if err := ecs.Add(w, e, component.TransformComponent, transform); err != nil {
			panic("camera system: update background transform: " + err.Error())
		}
	}
}
