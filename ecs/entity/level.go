package entity

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/roofhopper/config"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
	"github.com/milk9111/roofhopper/levels"
	"github.com/milk9111/roofhopper/prefabs"
)

var (
	ErrMissingPlayer = errors.New("entity: player is missing required components")
	ErrMissingCamera = errors.New("entity: camera is missing required components")
)

// Scene is a fully built level ready to tick.
type Scene struct {
	World   *ecs.World
	Physics *ecs.PhysicsWorld
	Player  ecs.Entity
	Camera  ecs.Entity
}

// Prefabs groups the entity specs a level is built from.
type Prefabs struct {
	Hopper     *prefabs.HopperSpec
	Rooftop    *prefabs.RooftopSpec
	Background *prefabs.BackgroundSpec
}

// LoadPrefabs reads every prefab a level needs.
func LoadPrefabs() (Prefabs, error) {
	hopper, err := prefabs.LoadHopperSpec()
	if err != nil {
		return Prefabs{}, err
	}
	rooftop, err := prefabs.LoadRooftopSpec()
	if err != nil {
		return Prefabs{}, err
	}
	background, err := prefabs.LoadBackgroundSpec()
	if err != nil {
		return Prefabs{}, err
	}
	return Prefabs{Hopper: hopper, Rooftop: rooftop, Background: background}, nil
}

// LoadLevel loads prefabs and the named level from disk or the embedded
// copies and builds the scene.
func LoadLevel(cfg *config.GameConfiguration, name string) (*Scene, error) {
	specs, err := LoadPrefabs()
	if err != nil {
		return nil, fmt.Errorf("entity: load level %s: %w", name, err)
	}
	lvl, err := levels.Load(name)
	if err != nil {
		return nil, fmt.Errorf("entity: load level %s: %w", name, err)
	}
	return BuildScene(cfg, specs, lvl)
}

// BuildScene creates the camera, background, rooftops and hopper for lvl.
// Level positions are fractions of the screen.
func BuildScene(cfg *config.GameConfiguration, specs Prefabs, lvl *levels.Level) (*Scene, error) {
	if cfg == nil || lvl == nil {
		return nil, fmt.Errorf("entity: build scene: missing config or level")
	}

	width := float64(cfg.Screen.Width)
	height := float64(cfg.Screen.Height)

	w := ecs.NewWorld()
	physics := ecs.NewPhysicsWorld(ecs.PhysicsSettings{
		Gravity:    cfg.Physics.Gravity,
		TimeStep:   cfg.Physics.TimeStep,
		Iterations: cfg.Physics.Iterations,
	})

	camera, err := NewCamera(w, width, height)
	if err != nil {
		return nil, err
	}
	if _, err := NewBackground(w, specs.Background, width, height); err != nil {
		return nil, err
	}
	for i, r := range lvl.Rooftops {
		if _, err := NewRooftop(w, physics, specs.Rooftop, r.X*width, r.Y*height, r.Armed); err != nil {
			return nil, fmt.Errorf("entity: build rooftop %d: %w", i, err)
		}
	}
	player, err := NewHopper(w, physics, specs.Hopper, lvl.Hopper.X*width, lvl.Hopper.Y*height)
	if err != nil {
		return nil, err
	}

	if err := ValidatePlayer(w, player); err != nil {
		return nil, err
	}
	if err := ValidateCamera(w, camera); err != nil {
		return nil, err
	}

	log.Info("level built", "name", lvl.Name, "rooftops", len(lvl.Rooftops), "player", player)
	return &Scene{World: w, Physics: physics, Player: player, Camera: camera}, nil
}

// ValidatePlayer checks the player carries every record the tick reads.
func ValidatePlayer(w *ecs.World, player ecs.Entity) error {
	if !w.IsAlive(player) {
		return fmt.Errorf("%w: entity %s is not alive", ErrMissingPlayer, player)
	}
	required := []struct {
		name string
		kind component.Kind
	}{
		{"player tag", component.PlayerTagComponent.Kind()},
		{"hopper", component.HopperComponent.Kind()},
		{"transform", component.TransformComponent.Kind()},
		{"contact", component.ContactComponent.Kind()},
		{"input", component.InputComponent.Kind()},
		{"physics body", component.PhysicsBodyComponent.Kind()},
	}
	for _, r := range required {
		if !w.HasComponent(player, r.kind) {
			return fmt.Errorf("%w: entity %s has no %s", ErrMissingPlayer, player, r.name)
		}
	}
	return nil
}

// ValidateCamera checks the camera can be followed and bounded against.
func ValidateCamera(w *ecs.World, camera ecs.Entity) error {
	if !ecs.Has(w, camera, component.CameraComponent) || !ecs.Has(w, camera, component.TransformComponent) {
		return fmt.Errorf("%w: entity %s", ErrMissingCamera, camera)
	}
	return nil
}
