package world

import (
	"fmt"

	"grapple3d/internal/assets"
	"grapple3d/internal/components"
	"grapple3d/internal/engine"
	"grapple3d/internal/grapple"
	_ "grapple3d/internal/scripts"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/samber/lo"
)

// HookSize is the edge length of a hook target cube.
const HookSize = 1.0

func vec(v rl.Vector3) []any {
	return []any{float64(v.X), float64(v.Y), float64(v.Z)}
}

func arr(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func meshDef(size rl.Vector3, color rl.Color) map[string]any {
	return map[string]any{
		"type":      "MeshRenderer",
		"mesh":      components.MeshCube.String(),
		"size":      vec(size),
		"color":     colorDef(color),
		"wireframe": true,
	}
}

func colorDef(c rl.Color) any {
	if name, ok := assets.ColorName(c); ok {
		return name
	}
	return []any{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
}

func boxDef(size rl.Vector3, trigger bool) map[string]any {
	return map[string]any{
		"type":      "BoxCollider",
		"size":      vec(size),
		"isTrigger": trigger,
	}
}

// StaticBlock is a solid, drawn box.
func StaticBlock(name string, pos, size rl.Vector3, color rl.Color) ObjectDef {
	return ObjectDef{
		Name:       name,
		Position:   arr(pos),
		Scale:      [3]float32{1, 1, 1},
		Components: []map[string]any{meshDef(size, color), boxDef(size, false)},
	}
}

// HookTarget is a small hookable cube.
func HookTarget(name string, pos rl.Vector3) ObjectDef {
	size := rl.Vector3{X: HookSize, Y: HookSize, Z: HookSize}
	return hookable(StaticBlock(name, pos, size, assets.HookOrange))
}

func hookable(def ObjectDef) ObjectDef {
	def.Tags = append(def.Tags, grapple.HookableTag)
	return def
}

// MovingBlock is a solid box that travels its waypoints back and forth.
// It starts at the first waypoint.
func MovingBlock(name string, waypoints []rl.Vector3, size rl.Vector3, color rl.Color, legSeconds float32, easing components.Easing) ObjectDef {
	def := StaticBlock(name, waypoints[0], size, color)
	def.Components = append(def.Components, map[string]any{
		"type":        "MovingPlatform",
		"waypoints":   lo.Map(waypoints, func(p rl.Vector3, _ int) any { return vec(p) }),
		"legDuration": float64(legSeconds),
		"delay":       0.5,
		"easing":      easing.String(),
	})
	return def
}

// CheckpointVolume is an invisible trigger that sets checkpoint number.
func CheckpointVolume(number int, pos, size rl.Vector3) ObjectDef {
	return ObjectDef{
		Name:     fmt.Sprintf("Checkpoint%03d", number),
		Position: arr(pos),
		Scale:    [3]float32{1, 1, 1},
		Components: []map[string]any{
			boxDef(size, true),
			{"type": "Checkpoint", "number": float64(number)},
		},
	}
}

// OrbitingHook is a hook target circling a center radius away from pos.
func OrbitingHook(name string, pos rl.Vector3, radius, degreesPerSecond float32) ObjectDef {
	def := HookTarget(name, pos)
	def.Components = append(def.Components, map[string]any{
		"type": "Script",
		"name": "Orbit",
		"props": map[string]any{
			"radius": float64(radius),
			"speed":  float64(degreesPerSecond),
		},
	})
	return def
}

// DefaultLevel is the starting area: a start pad, static and orbiting hooks,
// a hook box moving through three points, a moving platform and the first
// checkpoint platform.
func DefaultLevel() SceneFile {
	v := func(x, y, z float32) rl.Vector3 { return rl.Vector3{X: x, Y: y, Z: z} }

	objects := []ObjectDef{
		StaticBlock("Start Pad", v(0, -0.5, 0), v(16, 1, 20), assets.ConcreteLight),
		StaticBlock("Start Wall", v(0, 2, 10.5), v(16, 6, 1), assets.ConcreteDark),
		HookTarget("Hook Start", v(0, 8, -16)),
		OrbitingHook("Orbiting Hook", v(-6, 9, -20), 3, 30),
		StaticBlock("Stepping Block", v(0, 3, -26), v(6, 1, 6), assets.Brick),
		HookTarget("Hook Stepping", v(2, 11, -32)),
		hookable(MovingBlock("Moving Hook Box",
			[]rl.Vector3{v(-4, 10, -34), v(4, 12, -40), v(12, 10, -46)},
			v(1.5, 1.5, 1.5), assets.HookOrange, 4, components.EaseLinear)),
		MovingBlock("Moving Platform",
			[]rl.Vector3{v(8, 1, -44), v(16, 1, -53)},
			v(4, 0.5, 4), assets.PlatformBlue, 4, components.EaseLinear),
		StaticBlock("Checkpoint Platform", v(20, 0.5, -60), v(8, 1, 8), assets.Steel),
		CheckpointVolume(1, v(20, 2, -60), v(4, 2, 4)),
		HookTarget("Hook Checkpoint", v(20, 10, -66)),
	}
	return SceneFile{Objects: objects}
}

// BuildDefault spawns DefaultLevel into the world.
func (w *World) BuildDefault() error {
	return w.SpawnScene(DefaultLevel())
}

// SpawnScene builds every object in sf and spawns them. Nothing is spawned if
// any object fails to build.
func (w *World) SpawnScene(sf SceneFile) error {
	built := make([]*engine.GameObject, 0, len(sf.Objects))
	for _, def := range sf.Objects {
		g, err := buildObject(def)
		if err != nil {
			return fmt.Errorf("object %q: %w", def.Name, err)
		}
		built = append(built, g)
	}
	for _, g := range built {
		w.SpawnObject(g)
	}
	return nil
}
