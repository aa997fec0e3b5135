package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name, relative to DefaultDir on disk and to
// the embedded defaults.
const (
	DefaultDir  = "config"
	DefaultFile = "game_config.yaml"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// PhysicsConfig tunes the Chipmunk space.
type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity"`
	TimeStep   float64 `yaml:"time_step"`
	Iterations int     `yaml:"iterations"`
}

// ScreenConfig is the logical screen size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameConfiguration holds every gameplay constant. It is loaded once and
// shared read-only by the systems.
type GameConfiguration struct {
	DebouncingFrameCount  uint32  `yaml:"debouncing_frame_count"`
	MaxJumpForcePerFrame  float64 `yaml:"max_jump_force_per_frame"`
	MaxNudgeForcePerFrame float64 `yaml:"max_nudge_force_per_frame"`
	DownwardPressure      float64 `yaml:"downward_pressure"`
	PeakingThreshold      float64 `yaml:"peaking_threshold"`
	HopperPositionLeeway  float64 `yaml:"hopper_position_leeway"`
	HopperLowerYBoundary  float64 `yaml:"hopper_lower_y_boundary"`
	JumpForce             float64 `yaml:"jump_force"`
	NudgeForce            float64 `yaml:"nudge_force"`

	Physics PhysicsConfig `yaml:"physics"`
	Screen  ScreenConfig  `yaml:"screen"`
}

// Default returns the built-in tuning.
func Default() GameConfiguration {
	return GameConfiguration{
		DebouncingFrameCount:  5,
		MaxJumpForcePerFrame:  4000,
		MaxNudgeForcePerFrame: 400,
		DownwardPressure:      2,
		PeakingThreshold:      1.2,
		HopperPositionLeeway:  70,
		HopperLowerYBoundary:  -10,
		JumpForce:             16800,
		NudgeForce:            2400,
		Physics: PhysicsConfig{
			Gravity:    -0.3,
			TimeStep:   1,
			Iterations: 10,
		},
		Screen: ScreenConfig{Width: 480, Height: 720},
	}
}

// Load reads the configuration. An explicit path must exist; otherwise
// config/game_config.yaml on disk overrides the embedded defaults.
func Load(path string) (*GameConfiguration, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case path != "":
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	default:
		path = filepath.Join(DefaultDir, DefaultFile)
		data, err = os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
			path = DefaultFile
			data, err = embeddedFS.ReadFile(DefaultFile)
			if err != nil {
				return nil, fmt.Errorf("config: read embedded %s: %w", DefaultFile, err)
			}
		}
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes yaml on top of the defaults and validates the result.
func Parse(data []byte) (*GameConfiguration, error) {
	var raw GameConfiguration
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg := raw.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c GameConfiguration) withDefaults() GameConfiguration {
	d := Default()
	if c.DebouncingFrameCount == 0 {
		c.DebouncingFrameCount = d.DebouncingFrameCount
	}
	if c.MaxJumpForcePerFrame == 0 {
		c.MaxJumpForcePerFrame = d.MaxJumpForcePerFrame
	}
	if c.MaxNudgeForcePerFrame == 0 {
		c.MaxNudgeForcePerFrame = d.MaxNudgeForcePerFrame
	}
	if c.DownwardPressure == 0 {
		c.DownwardPressure = d.DownwardPressure
	}
	if c.PeakingThreshold == 0 {
		c.PeakingThreshold = d.PeakingThreshold
	}
	if c.HopperPositionLeeway == 0 {
		c.HopperPositionLeeway = d.HopperPositionLeeway
	}
	if c.HopperLowerYBoundary == 0 {
		c.HopperLowerYBoundary = d.HopperLowerYBoundary
	}
	if c.JumpForce == 0 {
		c.JumpForce = d.JumpForce
	}
	if c.NudgeForce == 0 {
		c.NudgeForce = d.NudgeForce
	}
	if c.Physics.Gravity == 0 {
		c.Physics.Gravity = d.Physics.Gravity
	}
	if c.Physics.TimeStep == 0 {
		c.Physics.TimeStep = d.Physics.TimeStep
	}
	if c.Physics.Iterations == 0 {
		c.Physics.Iterations = d.Physics.Iterations
	}
	if c.Screen.Width == 0 {
		c.Screen.Width = d.Screen.Width
	}
	if c.Screen.Height == 0 {
		c.Screen.Height = d.Screen.Height
	}
	return c
}

// Validate rejects tuning the systems cannot run with.
func (c GameConfiguration) Validate() error {
	nonNegative := []struct {
		name  string
		value float64
	}{
		{"max_jump_force_per_frame", c.MaxJumpForcePerFrame},
		{"max_nudge_force_per_frame", c.MaxNudgeForcePerFrame},
		{"downward_pressure", c.DownwardPressure},
		{"peaking_threshold", c.PeakingThreshold},
		{"jump_force", c.JumpForce},
		{"nudge_force", c.NudgeForce},
	}
	for _, field := range nonNegative {
		if field.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, field.name, field.value)
		}
	}
	if c.DebouncingFrameCount == 0 {
		return fmt.Errorf("%w: debouncing_frame_count must be positive", ErrInvalidConfig)
	}
	if c.Physics.TimeStep <= 0 {
		return fmt.Errorf("%w: physics.time_step must be positive, got %v", ErrInvalidConfig, c.Physics.TimeStep)
	}
	if c.Physics.Iterations < 0 {
		return fmt.Errorf("%w: physics.iterations must not be negative, got %d", ErrInvalidConfig, c.Physics.Iterations)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size must be positive, got %dx%d", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	}
	return nil
}
