package system

import (
	"github.com/milk9111/roofhopper/config"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
)

// HopperCollisionStateSystem drives the bounce/rest half of the hopper state
// machine. Chipmunk has no way to switch off rebound on contact, so the
// hopper counts debounce frames instead and HopperRestSystem pins it down.
type HopperCollisionStateSystem struct {
	player ecs.Entity
	cfg    *config.GameConfiguration
}

func NewHopperCollisionStateSystem(player ecs.Entity, cfg *config.GameConfiguration) *HopperCollisionStateSystem {
	return &HopperCollisionStateSystem{player: player, cfg: cfg}
}

func (s *HopperCollisionStateSystem) Update(w *ecs.World) {
	hopper, ok := ecs.Get(w, s.player, component.HopperComponent)
	if !ok {
		return
	}
	contact, _ := ecs.Get(w, s.player, component.ContactComponent)

	next := nextCollisionState(hopper, contact.InContact(), s.cfg.DebouncingFrameCount)
	if next == hopper.State {
		return
	}
	hopper.State = next
	if err := ecs.Add(w, s.player, component.HopperComponent, hopper); err != nil {
		panic("hopper collision state system: update hopper: " + err.Error())
	}
}

func nextCollisionState(hopper component.Hopper, inContact bool, debounce uint32) component.HopperState {
	if hopper.JumpPending() {
		return component.HopperRising{}
	}

	if inContact {
		switch state := hopper.State.(type) {
		case component.HopperRising, component.HopperPeaking, component.HopperFalling:
			return component.HopperBouncing{Frames: debounce}
		case component.HopperBouncing:
			if state.Frames > 1 {
				return component.HopperBouncing{Frames: state.Frames - 1}
			}
			return component.HopperResting{}
		default:
			return component.HopperResting{}
		}
	}

	switch state := hopper.State.(type) {
	case component.HopperBouncing:
		if state.Frames > 2*debounce {
			return component.HopperRising{}
		}
		return component.HopperBouncing{Frames: state.Frames + 1}
	case component.HopperResting:
		return component.HopperBouncing{Frames: 1}
	default:
		return hopper.State
	}
}
