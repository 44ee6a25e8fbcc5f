package config

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grapple3d.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, float32(1.5), cfg.Grapple.ArrivalRadius)
	assert.Equal(t, float32(14), cfg.Grapple.Speed)
	assert.Equal(t, "Hookable", cfg.Grapple.Tag)
	assert.Equal(t, rl.Vector3{Y: 1.5, Z: 4}, cfg.Checkpoints[0].Vector())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
grapple:
  speed: 20
  arrival_radius: 2
  debug: true
checkpoints:
  - [1, 2, 3]
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(20), cfg.Grapple.Speed)
	assert.Equal(t, float32(2), cfg.Grapple.ArrivalRadius)
	assert.True(t, cfg.Grapple.Debug)
	assert.Equal(t, float32(200), cfg.Grapple.MaxDistance, "unset keys keep defaults")
	assert.Equal(t, []Vec3{{1, 2, 3}}, cfg.Checkpoints)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, Default().Player, cfg.Player)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "grapple: [unclosed"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "grapple:\n  speed: 0\n"))
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "grapple.speed")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative arrival radius", func(c *Config) { c.Grapple.ArrivalRadius = -1 }},
		{"parallel threshold of one", func(c *Config) { c.Grapple.ParallelThreshold = 1 }},
		{"min travel past arrival radius", func(c *Config) {
			c.Grapple.MinTravel = 2
			c.Grapple.ArrivalRadius = 1.5
		}},
		{"min travel equal to arrival radius", func(c *Config) { c.Grapple.MinTravel = c.Grapple.ArrivalRadius }},
		{"empty tag", func(c *Config) { c.Grapple.Tag = "" }},
		{"no checkpoints", func(c *Config) { c.Checkpoints = nil }},
		{"negative fade", func(c *Config) { c.HUD.FadeSeconds = -0.1 }},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
