package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/roofhopper/config"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
)

// HopperInputSystem turns jump and nudge presses into stored forces when the
// hopper's state allows them.
type HopperInputSystem struct {
	player ecs.Entity
	cfg    *config.GameConfiguration
}

func NewHopperInputSystem(player ecs.Entity, cfg *config.GameConfiguration) *HopperInputSystem {
	return &HopperInputSystem{player: player, cfg: cfg}
}

func (s *HopperInputSystem) Update(w *ecs.World) {
	input, ok := ecs.Get(w, s.player, component.InputComponent)
	if !ok {
		return
	}
	hopper, ok := ecs.Get(w, s.player, component.HopperComponent)
	if !ok {
		return
	}

	changed := false
	if input.JumpPressed && component.CanJump(hopper.State) {
		hopper.StartJump(s.cfg.JumpForce)
		log.Debug("hopper jump", "state", hopper.State.Name(), "force", hopper.JumpForce)
		changed = true
	}
	// left wins when both are pressed on the same frame
	if (input.LeftPressed || input.RightPressed) && component.CanNudge(hopper.State) {
		hopper.StartNudge(s.cfg.NudgeForce, input.LeftPressed)
		log.Debug("hopper nudge", "force", hopper.NudgeForce)
		changed = true
	}
	if !changed {
		return
	}

	if err := ecs.Add(w, s.player, component.HopperComponent, hopper); err != nil {
		panic("hopper input system: update hopper: " + err.Error())
	}
}
