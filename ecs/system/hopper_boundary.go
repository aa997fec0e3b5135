package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/roofhopper/config"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
)

// HopperBoundarySystem raises EventPlayerOutOfBounds once the hopper drops
// below the bottom of the camera's view.
type HopperBoundarySystem struct {
	player ecs.Entity
	camera ecs.Entity
	cfg    *config.GameConfiguration
}

func NewHopperBoundarySystem(player, camera ecs.Entity, cfg *config.GameConfiguration) *HopperBoundarySystem {
	return &HopperBoundarySystem{player: player, camera: camera, cfg: cfg}
}

func (s *HopperBoundarySystem) Update(w *ecs.World) {
	playerTransform, ok := ecs.Get(w, s.player, component.TransformComponent)
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, s.camera, component.TransformComponent)
	if !ok {
		return
	}

	height := float64(s.cfg.Screen.Height)
	if cam, ok := ecs.Get(w, s.camera, component.CameraComponent); ok && cam.Height > 0 {
		height = cam.Height
	}

	lower := camTransform.Y - height/2 - s.cfg.HopperLowerYBoundary
	if playerTransform.Y >= lower {
		return
	}

	log.Info("hopper out of bounds", "y", playerTransform.Y, "lower", lower)
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerOutOfBounds, Data: playerTransform.Y})
}
