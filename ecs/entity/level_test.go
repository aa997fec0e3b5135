package entity

import (
	"testing"

	"github.com/milk9111/roofhopper/config"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
	"github.com/milk9111/roofhopper/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestScene(t *testing.T) (*Scene, *config.GameConfiguration) {
	t.Helper()
	t.Chdir(t.TempDir())
	cfg := config.Default()
	scene, err := LoadLevel(&cfg, "")
	require.NoError(t, err)
	return scene, &cfg
}

func TestLoadLevelBuildsScene(t *testing.T) {
	scene, cfg := loadTestScene(t)
	w := scene.World

	player, ok := w.First(component.PlayerTagComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, scene.Player, player)

	hopper, ok := ecs.Get(w, scene.Player, component.HopperComponent)
	require.True(t, ok)
	assert.Equal(t, component.HopperFalling{}, hopper.State)

	transform, _ := ecs.Get(w, scene.Player, component.TransformComponent)
	assert.InDelta(t, 0.5*float64(cfg.Screen.Width), transform.X, 1e-9)
	assert.InDelta(t, 0.3*float64(cfg.Screen.Height), transform.Y, 1e-9)

	rooftops := w.Query(component.RooftopComponent.Kind())
	require.Len(t, rooftops, 7)
	for i, e := range rooftops {
		r, _ := ecs.Get(w, e, component.RooftopComponent)
		assert.Equal(t, i == 0, r.CollisionEnabled, "rooftop %d", i)
		assert.Equal(t, i == 0, scene.Physics.ColliderEnabled(e), "rooftop %d", i)
	}

	cam, _ := ecs.Get(w, scene.Camera, component.TransformComponent)
	assert.Equal(t, component.Transform{X: 240, Y: 360}, cam)
	assert.Len(t, w.Query(component.BackgroundTagComponent.Kind()), 1)
}

func TestLoadLevelMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg := config.Default()
	_, err := LoadLevel(&cfg, "missing.yaml")
	assert.Error(t, err)
}

func TestValidatePlayer(t *testing.T) {
	scene, _ := loadTestScene(t)
	require.NoError(t, ValidatePlayer(scene.World, scene.Player))

	require.True(t, ecs.Remove(scene.World, scene.Player, component.ContactComponent))
	assert.ErrorIs(t, ValidatePlayer(scene.World, scene.Player), ErrMissingPlayer)

	assert.ErrorIs(t, ValidatePlayer(scene.World, ecs.Entity(0)), ErrMissingPlayer)
}

func TestValidateCamera(t *testing.T) {
	scene, _ := loadTestScene(t)
	require.NoError(t, ValidateCamera(scene.World, scene.Camera))
	assert.ErrorIs(t, ValidateCamera(scene.World, scene.Player), ErrMissingCamera)
}

func TestBuildSceneRejectsBadPrefab(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg := config.Default()
	specs, err := LoadPrefabs()
	require.NoError(t, err)
	specs.Hopper.Collider.Mass = 0

	lvl, err := levels.Load("")
	require.NoError(t, err)

	_, err = BuildScene(&cfg, specs, lvl)
	assert.Error(t, err)
}
