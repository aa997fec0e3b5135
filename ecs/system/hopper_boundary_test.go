package system

import (
	"testing"

	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHopperBoundarySystem(t *testing.T) {
	// camera centred at 1000 with a 720 high view: lower = 1000 - 360 + 10
	tests := []struct {
		name    string
		playerY float64
		want    bool
	}{
		{"inside view", 900, false},
		{"on the boundary", 650, false},
		{"below the view", 649, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := newTestHopper(w, component.HopperFalling{})
			camera := newTestCamera(w, 1000)
			movePlayer(w, player, tt.playerY)

			NewHopperBoundarySystem(player, camera, testConfig()).Update(w)

			events := w.Events().Drain()
			if !tt.want {
				assert.Empty(t, events)
				return
			}
			require.Len(t, events, 1)
			assert.Equal(t, ecs.EventPlayerOutOfBounds, events[0].Type)
			assert.Equal(t, tt.playerY, events[0].Data)
		})
	}
}
