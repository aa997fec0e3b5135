package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/roofhopper/config"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
)

// HopperRestSystem keeps a bouncing or resting hopper pressed onto its
// rooftop by replacing the engine's next velocity with a small downward one.
type HopperRestSystem struct {
	player ecs.Entity
	engine PhysicsEngine
	cfg    *config.GameConfiguration
}

func NewHopperRestSystem(player ecs.Entity, engine PhysicsEngine, cfg *config.GameConfiguration) *HopperRestSystem {
	return &HopperRestSystem{player: player, engine: engine, cfg: cfg}
}

func (s *HopperRestSystem) Update(w *ecs.World) {
	if s.engine == nil {
		return
	}
	hopper, ok := ecs.Get(w, s.player, component.HopperComponent)
	if !ok {
		return
	}

	if component.CanJump(hopper.State) && hopper.JumpForce < component.Epsilon {
		s.engine.SetNextVelocity(s.player, cp.Vector{X: 0, Y: -s.cfg.DownwardPressure})
	}
}
