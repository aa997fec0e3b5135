package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultLevel(t *testing.T) {
	t.Chdir(t.TempDir())

	lvl, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Point{X: 0.5, Y: 0.3}, lvl.Hopper)
	require.Len(t, lvl.Rooftops, 7)
	assert.True(t, lvl.Rooftops[0].Armed)
	for i, r := range lvl.Rooftops[1:] {
		assert.False(t, r.Armed, "rooftop %d", i+1)
		assert.InDelta(t, 0.30, r.Y-lvl.Rooftops[i].Y, 1e-9, "rooftop %d spacing", i+1)
	}
	assert.Equal(t, 0.43, lvl.Rooftops[3].X)
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "levels"), 0o755))
	data := []byte("name: tiny\nhopper: {x: 0.1, y: 0.2}\nrooftops:\n  - {x: 0.1, y: 0.1, armed: true}\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "levels", "tiny.yaml"), data, 0o644))
	t.Chdir(dir)

	lvl, err := Load("levels/tiny.yaml")
	require.NoError(t, err)
	assert.Equal(t, "tiny", lvl.Name)
	assert.Len(t, lvl.Rooftops, 1)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "rooftops: ["},
		{"no rooftops", "name: empty\n"},
		{"unarmed base", "rooftops:\n  - {x: 0.5, y: 0.2}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load("nowhere.yaml")
	assert.Error(t, err)
}
