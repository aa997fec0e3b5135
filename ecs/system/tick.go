package system

import (
	"github.com/milk9111/roofhopper/config"
	"github.com/milk9111/roofhopper/ecs"
)

// NewTickScheduler wires the per-tick systems in dependency order: input,
// physics step, contacts, hopper state and rooftop arming, soaring
// refinement, then force feeding and the rest override ahead of the next
// step. Camera and boundary checks close the tick.
func NewTickScheduler(player, camera ecs.Entity, physics *ecs.PhysicsWorld, cfg *config.GameConfiguration) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewInputSystem(),
		NewHopperInputSystem(player, cfg),
		NewPhysicsSystem(physics),
		NewEntityCollisionSystem(physics),
		NewHopperCollisionStateSystem(player, cfg),
		NewRooftopColliderSystem(player, physics, cfg),
		NewHopperSoaringSystem(physics, cfg),
		NewHopperJumpSystem(player, physics, cfg),
		NewHopperRestSystem(player, physics, cfg),
		NewCameraSystem(player, camera),
		NewHopperBoundarySystem(player, camera, cfg),
	)
}
