package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/roofhopper/config"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
)

// RooftopColliderSystem arms each rooftop collider once the hopper has
// risen far enough above it. Armed rooftops stay armed.
type RooftopColliderSystem struct {
	player ecs.Entity
	engine PhysicsEngine
	cfg    *config.GameConfiguration
}

func NewRooftopColliderSystem(player ecs.Entity, engine PhysicsEngine, cfg *config.GameConfiguration) *RooftopColliderSystem {
	return &RooftopColliderSystem{player: player, engine: engine, cfg: cfg}
}

func (s *RooftopColliderSystem) Update(w *ecs.World) {
	playerTransform, ok := ecs.Get(w, s.player, component.TransformComponent)
	if !ok {
		return
	}

	for _, e := range w.Query(component.RooftopComponent.Kind(), component.TransformComponent.Kind()) {
		rooftop, _ := ecs.Get(w, e, component.RooftopComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)

		if !rooftop.CollisionEnabled && playerTransform.Y > transform.Y+s.cfg.HopperPositionLeeway {
			rooftop.CollisionEnabled = true
			if err := ecs.Add(w, e, component.RooftopComponent, rooftop); err != nil {
				panic("rooftop collider system: update rooftop: " + err.Error())
			}
			log.Debug("rooftop armed", "entity", e, "rooftop_y", transform.Y, "hopper_y", playerTransform.Y)
		}

		if s.engine != nil {
			s.engine.SetColliderEnabled(e, rooftop.CollisionEnabled)
		}
	}
}
