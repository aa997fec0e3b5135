package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// HopperSpec describes the player body.
type HopperSpec struct {
	Name     string       `yaml:"name"`
	Collider ColliderSpec `yaml:"collider"`
	Box      BoxSpec      `yaml:"box"`
}

func LoadHopperSpec() (*HopperSpec, error) {
	spec, err := LoadSpec[HopperSpec]("hopper.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// RooftopSpec describes one rooftop platform.
type RooftopSpec struct {
	Name     string       `yaml:"name"`
	Collider ColliderSpec `yaml:"collider"`
	Box      BoxSpec      `yaml:"box"`
}

func LoadRooftopSpec() (*RooftopSpec, error) {
	spec, err := LoadSpec[RooftopSpec]("rooftop.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// BackgroundSpec is a screen-sized box that travels with the camera.
type BackgroundSpec struct {
	Name string  `yaml:"name"`
	Box  BoxSpec `yaml:"box"`
}

func LoadBackgroundSpec() (*BackgroundSpec, error) {
	spec, err := LoadSpec[BackgroundSpec]("background.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ColliderSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
}

// BoxSpec is a drawable rectangle. A zero size means "use the collider".
type BoxSpec struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
	Layer  int        `yaml:"layer"`
}

// RGBA returns the box colour, or fallback when none is set.
func (b BoxSpec) RGBA(fallback color.RGBA) color.RGBA {
	if b.Color == nil || b.Color.Color == nil {
		return fallback
	}
	return color.RGBAModel.Convert(b.Color.Color).(color.RGBA)
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
