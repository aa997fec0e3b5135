package system

import (
	"testing"

	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
	"github.com/stretchr/testify/assert"
)

func rooftopArmed(w *ecs.World, e ecs.Entity) bool {
	r, _ := ecs.Get(w, e, component.RooftopComponent)
	return r.CollisionEnabled
}

func movePlayer(w *ecs.World, e ecs.Entity, y float64) {
	mustAdd(w, e, component.TransformComponent, component.Transform{Y: y})
}

func TestRooftopColliderSystemArmsAboveLeeway(t *testing.T) {
	w := ecs.NewWorld()
	engine := newFakeEngine()
	player := newTestHopper(w, component.HopperRising{})
	roof := newTestRooftop(w, 100, false)
	sys := NewRooftopColliderSystem(player, engine, testConfig())

	movePlayer(w, player, 170)
	sys.Update(w)
	assert.False(t, rooftopArmed(w, roof), "exactly at the leeway stays disarmed")
	assert.False(t, engine.colliders[roof])

	movePlayer(w, player, 170.5)
	sys.Update(w)
	assert.True(t, rooftopArmed(w, roof))
	assert.True(t, engine.colliders[roof])
}

func TestRooftopColliderSystemNeverDisarms(t *testing.T) {
	w := ecs.NewWorld()
	engine := newFakeEngine()
	player := newTestHopper(w, component.HopperRising{})
	roof := newTestRooftop(w, 100, false)
	sys := NewRooftopColliderSystem(player, engine, testConfig())

	movePlayer(w, player, 500)
	sys.Update(w)
	for _, y := range []float64{0, -300, 120, 1000} {
		movePlayer(w, player, y)
		sys.Update(w)
		assert.True(t, rooftopArmed(w, roof), "player y %v", y)
		assert.True(t, engine.colliders[roof], "player y %v", y)
	}
	assert.Equal(t, 1, engine.toggles)
}

func TestRooftopColliderSystemKeepsBaseArmed(t *testing.T) {
	w := ecs.NewWorld()
	engine := newFakeEngine()
	player := newTestHopper(w, component.HopperFalling{})
	base := newTestRooftop(w, 0, true)
	high := newTestRooftop(w, 400, false)

	movePlayer(w, player, -50)
	NewRooftopColliderSystem(player, engine, testConfig()).Update(w)

	assert.True(t, rooftopArmed(w, base))
	assert.True(t, engine.colliders[base])
	assert.False(t, rooftopArmed(w, high))
	assert.False(t, engine.colliders[high])
}
