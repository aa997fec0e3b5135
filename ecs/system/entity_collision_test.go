package system

import (
	"testing"

	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactOf(t *testing.T, w *ecs.World, e ecs.Entity) component.Contact {
	t.Helper()
	c, ok := ecs.Get(w, e, component.ContactComponent)
	require.True(t, ok)
	return c
}

func TestEntityCollisionSystemMarksBothParticipants(t *testing.T) {
	w := ecs.NewWorld()
	engine := newFakeEngine()
	player := newTestHopper(w, component.HopperFalling{})
	roof := newTestRooftop(w, 0, true)
	other := newTestRooftop(w, 100, true)

	engine.touch(player, roof)
	NewEntityCollisionSystem(engine).Update(w)

	assert.True(t, contactOf(t, w, player).InContact())
	assert.True(t, contactOf(t, w, roof).InContact())
	assert.False(t, contactOf(t, w, other).InContact())
}

func TestEntityCollisionSystemClearsEveryTick(t *testing.T) {
	w := ecs.NewWorld()
	engine := newFakeEngine()
	player := newTestHopper(w, component.HopperFalling{})
	roof := newTestRooftop(w, 0, true)
	sys := NewEntityCollisionSystem(engine)

	engine.touch(player, roof)
	sys.Update(w)
	require.True(t, contactOf(t, w, player).InContact())

	sys.Update(w)
	assert.False(t, contactOf(t, w, player).InContact())
	assert.False(t, contactOf(t, w, roof).InContact())
}

func TestEntityCollisionSystemLastEventWins(t *testing.T) {
	w := ecs.NewWorld()
	engine := newFakeEngine()
	player := newTestHopper(w, component.HopperFalling{})
	first := newTestRooftop(w, 0, true)
	second := newTestRooftop(w, 50, true)

	engine.touch(player, first)
	engine.touch(second, player)
	NewEntityCollisionSystem(engine).Update(w)

	contact := contactOf(t, w, player)
	require.True(t, contact.InContact())
	assert.Equal(t, uint64(second), contact.Event.EntityA)
	assert.Equal(t, uint64(player), contact.Event.EntityB)
}

func TestEntityCollisionSystemIgnoresUntrackedEntities(t *testing.T) {
	w := ecs.NewWorld()
	engine := newFakeEngine()
	player := newTestHopper(w, component.HopperFalling{})
	untracked := w.CreateEntity()

	engine.touch(player, untracked)
	engine.touch(untracked, ecs.Entity(9999))
	NewEntityCollisionSystem(engine).Update(w)

	assert.True(t, contactOf(t, w, player).InContact())
	assert.False(t, ecs.Has(w, untracked, component.ContactComponent))
}
