package system

import (
	"github.com/milk9111/roofhopper/config"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
)

// HopperSoaringSystem refines rising/peaking/falling from the velocity the
// engine will integrate with next. Bouncing and resting hoppers are left
// alone.
type HopperSoaringSystem struct {
	engine PhysicsEngine
	cfg    *config.GameConfiguration
}

func NewHopperSoaringSystem(engine PhysicsEngine, cfg *config.GameConfiguration) *HopperSoaringSystem {
	return &HopperSoaringSystem{engine: engine, cfg: cfg}
}

func (s *HopperSoaringSystem) Update(w *ecs.World) {
	if w == nil || s.engine == nil {
		return
	}

	ecs.ForEach(w, component.HopperComponent.Kind(), func(e ecs.Entity, hopper *component.Hopper) {
		if !component.IsSoaring(hopper.State) {
			return
		}
		velocity, ok := s.engine.NextVelocity(e)
		if !ok {
			return
		}
		switch {
		case velocity.Y > s.cfg.PeakingThreshold:
			hopper.State = component.HopperRising{}
		case velocity.Y < -s.cfg.PeakingThreshold:
			hopper.State = component.HopperFalling{}
		default:
			hopper.State = component.HopperPeaking{}
		}
	})
}
