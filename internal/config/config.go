// Package config loads game settings from a YAML file layered over defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"grapple3d/internal/grapple"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Vec3 is a position written as [x, y, z] in YAML.
type Vec3 [3]float32

func (v Vec3) Vector() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

type Window struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type Player struct {
	Speed            float32 `yaml:"speed"`
	SprintMultiplier float32 `yaml:"sprint_multiplier"`
	JumpVelocity     float32 `yaml:"jump_velocity"`
	Gravity          float32 `yaml:"gravity"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	EyeHeight        float32 `yaml:"eye_height"`
	FallLimit        float32 `yaml:"fall_limit"`
	Size             Vec3    `yaml:"size"`
}

type HUD struct {
	MessageSeconds float32 `yaml:"message_seconds"`
	FadeSeconds    float32 `yaml:"fade_seconds"`
	FontSize       int32   `yaml:"font_size"`
}

type Log struct {
	Level       string `yaml:"level"`  // debug, info, warn, error
	Format      string `yaml:"format"` // console or json
	Development bool   `yaml:"development"`
}

type Config struct {
	Window  Window         `yaml:"window"`
	Player  Player         `yaml:"player"`
	Grapple grapple.Config `yaml:"grapple"`
	// Checkpoints are respawn positions indexed by checkpoint number.
	Checkpoints []Vec3 `yaml:"checkpoints"`
	HUD         HUD    `yaml:"hud"`
	Log         Log    `yaml:"log"`
	// Scene is an optional JSON scene file. Empty builds the default level.
	Scene string `yaml:"scene"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "grapple3d",
			TargetFPS: 60,
		},
		Player: Player{
			Speed:            5,
			SprintMultiplier: 1.5,
			JumpVelocity:     4.5,
			Gravity:          9.8,
			MouseSensitivity: 0.002,
			EyeHeight:        0.6,
			FallLimit:        -5,
			Size:             Vec3{0.8, 1.8, 0.8},
		},
		Grapple: grapple.DefaultConfig(),
		Checkpoints: []Vec3{
			{0, 1.5, 4},
			{20, 2, -60},
		},
		HUD: HUD{
			MessageSeconds: 5,
			FadeSeconds:    0.5,
			FontSize:       20,
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float32
	}{
		{"window.width", float32(c.Window.Width)},
		{"window.height", float32(c.Window.Height)},
		{"player.speed", c.Player.Speed},
		{"player.sprint_multiplier", c.Player.SprintMultiplier},
		{"player.mouse_sensitivity", c.Player.MouseSensitivity},
		{"grapple.max_distance", c.Grapple.MaxDistance},
		{"grapple.speed", c.Grapple.Speed},
		{"grapple.arrival_radius", c.Grapple.ArrivalRadius},
		{"grapple.min_travel", c.Grapple.MinTravel},
		{"grapple.rope_radius", c.Grapple.RopeRadius},
		{"grapple.rope_epsilon", c.Grapple.RopeEpsilon},
		{"hud.message_seconds", c.HUD.MessageSeconds},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalid, p.name, p.value)
		}
	}

	if c.Grapple.ParallelThreshold <= 0 || c.Grapple.ParallelThreshold >= 1 {
		return fmt.Errorf("%w: grapple.parallel_threshold must be in (0, 1), got %g", ErrInvalid, c.Grapple.ParallelThreshold)
	}
	if c.Grapple.MinTravel >= c.Grapple.ArrivalRadius {
		return fmt.Errorf("%w: grapple.min_travel (%g) must be below grapple.arrival_radius (%g)",
			ErrInvalid, c.Grapple.MinTravel, c.Grapple.ArrivalRadius)
	}
	if c.Grapple.Tag == "" {
		return fmt.Errorf("%w: grapple.tag is empty", ErrInvalid)
	}
	if c.HUD.FadeSeconds < 0 {
		return fmt.Errorf("%w: hud.fade_seconds must not be negative", ErrInvalid)
	}
	if len(c.Checkpoints) == 0 {
		return fmt.Errorf("%w: at least one checkpoint is required", ErrInvalid)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format must be console or json, got %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
