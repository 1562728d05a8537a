package gizmokit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfig() Config {
	cfg := DefaultConfig("saved")
	cfg.Model = mgl32.Translate3D(1, 2, 3)
	cfg.View = mgl32.Translate3D(0, 0, -5)
	cfg.Projection = mgl32.Perspective(1, 1.5, 0.1, 10)
	cfg.Mode = GizmoRotate
	cfg.Orientation = GizmoLocal
	cfg.Viewport = NewRect(8, 16, 640, 480)
	cfg.Snapping = true
	cfg.SnapAngle = 30
	return cfg
}

func TestConfigFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"gizmo.toml", "gizmo.json"} {
		t.Run(name, func(t *testing.T) {
			filename := filepath.Join(dir, name)
			want := sampleConfig()

			require.NoError(t, SaveConfig(filename, want))
			got, err := LoadConfig(filename)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadConfig_PartialTOML(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "partial.toml")
	data := `
name = "partial"
mode = "scale"
view = [[1.0, 0.0, 0.0, 0.0], [0.0, 1.0, 0.0, 0.0], [0.0, 0.0, 1.0, 0.0], [0.0, 0.0, -5.0, 1.0]]
`
	require.NoError(t, os.WriteFile(filename, []byte(data), 0644))

	cfg, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, "partial", cfg.Name)
	assert.Equal(t, GizmoScale, cfg.Mode)
	assert.Equal(t, GizmoGlobal, cfg.Orientation)
	assert.Equal(t, mgl32.Translate3D(0, 0, -5), cfg.View)
	assert.Equal(t, mgl32.Ident4(), cfg.Model)
	assert.Equal(t, DefaultVisuals(), cfg.Visuals)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "gizmo.yaml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.ErrorIs(t, SaveConfig(filepath.Join(dir, "gizmo.ini"), DefaultConfig("x")), ErrUnsupportedFormat)

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	badTOML := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(badTOML, []byte(`mode = "shear"`), 0644))
	_, err = LoadConfig(badTOML)
	assert.ErrorIs(t, err, ErrInvalidMode)

	badJSON := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badJSON, []byte(`{"mode": "shear"}`), 0644))
	_, err = LoadConfig(badJSON)
	assert.ErrorIs(t, err, ErrInvalidMode)

	badOrientation := filepath.Join(dir, "orientation.json")
	require.NoError(t, os.WriteFile(badOrientation, []byte(`{"orientation": "sideways"}`), 0644))
	_, err = LoadConfig(badOrientation)
	assert.ErrorIs(t, err, ErrInvalidOrientation)

	cfg := DefaultConfig("x")
	cfg.Mode = GizmoMode(7)
	assert.ErrorIs(t, SaveConfig(filepath.Join(dir, "invalid.toml"), cfg), ErrInvalidMode)
}
