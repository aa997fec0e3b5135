package entity

import (
	"testing"

	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
	"github.com/milk9111/roofhopper/ecs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runUntil(t *testing.T, s *ecs.Scheduler, w *ecs.World, max int, done func() bool) {
	t.Helper()
	for i := 0; i < max; i++ {
		s.Update(w)
		if done() {
			return
		}
	}
	t.Fatalf("condition not reached in %d ticks", max)
}

func TestHopperJumpsToNextRooftop(t *testing.T) {
	scene, cfg := loadTestScene(t)
	w := scene.World
	player := scene.Player

	s := ecs.NewScheduler(
		system.NewHopperInputSystem(player, cfg),
		system.NewPhysicsSystem(scene.Physics),
		system.NewEntityCollisionSystem(scene.Physics),
		system.NewHopperCollisionStateSystem(player, cfg),
		system.NewRooftopColliderSystem(player, scene.Physics, cfg),
		system.NewHopperSoaringSystem(scene.Physics, cfg),
		system.NewHopperJumpSystem(player, scene.Physics, cfg),
		system.NewHopperRestSystem(player, scene.Physics, cfg),
		system.NewCameraSystem(player, scene.Camera),
		system.NewHopperBoundarySystem(player, scene.Camera, cfg),
	)

	state := func() component.HopperState {
		h, _ := ecs.Get(w, player, component.HopperComponent)
		return h.State
	}
	resting := func() bool { return state() == component.HopperResting{} }

	runUntil(t, s, w, 120, resting)
	start, _ := ecs.Get(w, player, component.TransformComponent)
	rooftops := w.Query(component.RooftopComponent.Kind())
	next, _ := ecs.Get(w, rooftops[1], component.TransformComponent)
	require.Less(t, start.Y, next.Y)

	require.NoError(t, ecs.Add(w, player, component.InputComponent, component.Input{JumpPressed: true}))
	s.Update(w)
	require.NoError(t, ecs.Add(w, player, component.InputComponent, component.Input{}))
	assert.True(t, component.IsSoaring(state()))

	runUntil(t, s, w, 400, resting)

	landed, _ := ecs.Get(w, player, component.TransformComponent)
	assert.Greater(t, landed.Y, next.Y)
	armed, _ := ecs.Get(w, rooftops[1], component.RooftopComponent)
	assert.True(t, armed.CollisionEnabled)
	assert.True(t, scene.Physics.ColliderEnabled(rooftops[1]))

	cam, _ := ecs.Get(w, scene.Camera, component.TransformComponent)
	assert.Greater(t, cam.Y, 360.0)
	assert.Empty(t, w.Events().Drain())
}

func TestHopperFallingOffScreenRaisesEvent(t *testing.T) {
	scene, cfg := loadTestScene(t)
	w := scene.World

	// disarm the base rooftop so the hopper falls through
	base := w.Query(component.RooftopComponent.Kind())[0]
	require.NoError(t, ecs.Add(w, base, component.RooftopComponent, component.Rooftop{}))
	scene.Physics.SetColliderEnabled(base, false)

	s := ecs.NewScheduler(
		system.NewPhysicsSystem(scene.Physics),
		system.NewEntityCollisionSystem(scene.Physics),
		system.NewHopperCollisionStateSystem(scene.Player, cfg),
		system.NewHopperSoaringSystem(scene.Physics, cfg),
		system.NewHopperBoundarySystem(scene.Player, scene.Camera, cfg),
	)

	var events []ecs.Event
	runUntil(t, s, w, 200, func() bool {
		events = w.Events().Drain()
		return len(events) > 0
	})
	assert.Equal(t, ecs.EventPlayerOutOfBounds, events[0].Type)
	h, _ := ecs.Get(w, scene.Player, component.HopperComponent)
	assert.Equal(t, component.HopperFalling{}, h.State)
}
