package system

import (
	"testing"

	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestHopperInputSystem(t *testing.T) {
	tests := []struct {
		name      string
		state     component.HopperState
		input     component.Input
		wantJump  float64
		wantNudge float64
	}{
		{"jump while resting", component.HopperResting{}, component.Input{JumpPressed: true}, 16800, 0},
		{"jump while bouncing", component.HopperBouncing{Frames: 2}, component.Input{JumpPressed: true}, 16800, 0},
		{"jump while falling ignored", component.HopperFalling{}, component.Input{JumpPressed: true}, 0, 0},
		{"jump while rising ignored", component.HopperRising{}, component.Input{JumpPressed: true}, 0, 0},
		{"nudge left while rising", component.HopperRising{}, component.Input{LeftPressed: true}, 0, -2400},
		{"nudge right while rising", component.HopperRising{}, component.Input{RightPressed: true}, 0, 2400},
		{"nudge while peaking ignored", component.HopperPeaking{}, component.Input{RightPressed: true}, 0, 0},
		{"nudge while resting ignored", component.HopperResting{}, component.Input{LeftPressed: true}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := newTestHopper(w, tt.state)
			mustAdd(w, player, component.InputComponent, tt.input)

			NewHopperInputSystem(player, testConfig()).Update(w)

			hopper := hopperOf(w, player)
			assert.Equal(t, tt.wantJump, hopper.JumpForce)
			assert.Equal(t, tt.wantNudge, hopper.NudgeForce)
		})
	}
}

func TestInputSystemCopiesPolledPresses(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestHopper(w, component.HopperResting{})
	sys := &InputSystem{poll: func() component.Input {
		return component.Input{JumpPressed: true, RightPressed: true}
	}}

	sys.Update(w)

	input, _ := ecs.Get(w, player, component.InputComponent)
	assert.Equal(t, component.Input{JumpPressed: true, RightPressed: true}, input)
}
