package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// DefaultLevel is the level played when none is named.
const DefaultLevel = "rooftops.yaml"

// Point is a position expressed as fractions of the screen size, y-up.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RooftopPlacement struct {
	Point `yaml:",inline"`
	// Armed rooftops collide from the start.
	Armed bool `yaml:"armed"`
}

type Level struct {
	Name     string             `yaml:"name"`
	Hopper   Point              `yaml:"hopper"`
	Rooftops []RooftopPlacement `yaml:"rooftops"`
}

// Load reads a level, preferring ./levels on disk over the embedded copy.
func Load(name string) (*Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	clean := cleanLevelPath(name)

	data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean)))
	if err != nil {
		data, err = LevelsFS.ReadFile(clean)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", name, err)
		}
	}

	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	return lvl, nil
}

// Parse decodes a level and checks it has somewhere to stand.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if len(lvl.Rooftops) == 0 {
		return nil, fmt.Errorf("level %q has no rooftops", lvl.Name)
	}
	if !lvl.Rooftops[0].Armed {
		return nil, fmt.Errorf("level %q: base rooftop must be armed", lvl.Name)
	}
	return &lvl, nil
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		return after
	}
	return s
}
