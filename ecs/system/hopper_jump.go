package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roofhopper/common"
	"github.com/milk9111/roofhopper/config"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
)

// HopperJumpSystem feeds stored jump and nudge forces into the engine a
// capped slice per tick.
type HopperJumpSystem struct {
	player ecs.Entity
	engine PhysicsEngine
	cfg    *config.GameConfiguration
}

func NewHopperJumpSystem(player ecs.Entity, engine PhysicsEngine, cfg *config.GameConfiguration) *HopperJumpSystem {
	return &HopperJumpSystem{player: player, engine: engine, cfg: cfg}
}

func (s *HopperJumpSystem) Update(w *ecs.World) {
	hopper, ok := ecs.Get(w, s.player, component.HopperComponent)
	if !ok {
		return
	}
	if hopper.JumpForce <= 0 && hopper.NudgeForce == 0 {
		return
	}

	jump := math.Min(hopper.JumpForce, s.cfg.MaxJumpForcePerFrame)
	if jump < 0 {
		jump = 0
	}
	nudge := common.Clamp(hopper.NudgeForce, -s.cfg.MaxNudgeForcePerFrame, s.cfg.MaxNudgeForcePerFrame)

	if s.engine != nil {
		s.engine.ApplyForce(s.player, cp.Vector{X: nudge, Y: jump})
	}

	hopper.JumpForce -= jump
	hopper.NudgeForce -= nudge
	if err := ecs.Add(w, s.player, component.HopperComponent, hopper); err != nil {
		panic("hopper jump system: update hopper: " + err.Error())
	}
}
