package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestHopperRestSystem(t *testing.T) {
	tests := []struct {
		name      string
		state     component.HopperState
		jumpForce float64
		override  bool
	}{
		{"resting", component.HopperResting{}, 0, true},
		{"bouncing", component.HopperBouncing{Frames: 3}, 0, true},
		{"resting with jump pending", component.HopperResting{}, 4000, false},
		{"rising", component.HopperRising{}, 0, false},
		{"peaking", component.HopperPeaking{}, 0, false},
		{"falling", component.HopperFalling{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			engine := newFakeEngine()
			player := newTestHopper(w, tt.state)
			setHopper(w, player, func(h *component.Hopper) { h.JumpForce = tt.jumpForce })
			engine.velocities[player] = cp.Vector{X: 1.5, Y: 6}

			NewHopperRestSystem(player, engine, testConfig()).Update(w)

			want := cp.Vector{X: 1.5, Y: 6}
			if tt.override {
				want = cp.Vector{X: 0, Y: -2}
			}
			assert.Equal(t, want, engine.velocities[player])
		})
	}
}

func TestRestingHopperStaysPinned(t *testing.T) {
	w := ecs.NewWorld()
	engine := newFakeEngine()
	player := newTestHopper(w, component.HopperResting{})
	roof := newTestRooftop(w, 0, true)
	cfg := testConfig()
	engine.velocities[player] = cp.Vector{Y: 3}

	engine.touch(player, roof)
	NewEntityCollisionSystem(engine).Update(w)
	NewHopperCollisionStateSystem(player, cfg).Update(w)
	NewHopperRestSystem(player, engine, cfg).Update(w)

	assert.Equal(t, component.HopperResting{}, hopperOf(w, player).State)
	assert.Equal(t, cp.Vector{X: 0, Y: -cfg.DownwardPressure}, engine.velocities[player])
}
