package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"grapple3d/internal/components"
	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// ErrUnknownComponent is returned when a scene file names a component type
// or script that is not registered.
var ErrUnknownComponent = errors.New("unknown component")

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string           `json:"name"`
	Tags       []string         `json:"tags,omitempty"`
	Position   [3]float32       `json:"position"`
	Rotation   [3]float32       `json:"rotation"`
	Scale      [3]float32       `json:"scale"`
	Components []map[string]any `json:"components"`
}

// --- Loading ---

// LoadScene reads a scene file and spawns its objects into the world.
// Nothing is spawned if any object fails to build.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene %s: %w", path, err)
	}

	if err := w.SpawnScene(sf); err != nil {
		return fmt.Errorf("scene %s: %w", path, err)
	}
	w.logger.Info("scene loaded", zap.String("path", path), zap.Int("objects", len(sf.Objects)))
	return nil
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = rl.Vector3{X: def.Position[0], Y: def.Position[1], Z: def.Position[2]}
	g.Transform.Rotation = rl.Vector3{X: def.Rotation[0], Y: def.Rotation[1], Z: def.Rotation[2]}

	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = rl.Vector3{X: def.Scale[0], Y: def.Scale[1], Z: def.Scale[2]}
	}

	for _, data := range def.Components {
		typeName, _ := data["type"].(string)
		if typeName == "Script" {
			name, _ := data["name"].(string)
			props, _ := data["props"].(map[string]any)
			comp := engine.CreateScript(name, props)
			if comp == nil {
				return nil, fmt.Errorf("%w: script %q", ErrUnknownComponent, name)
			}
			g.AddComponent(comp)
			continue
		}

		comp, ok := engine.CreateComponent(typeName, data)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, typeName)
		}
		g.AddComponent(comp)
	}
	return g, nil
}

// --- Saving ---

// SaveScene writes every level object to path. The player and objects
// spawned at runtime (rope, hit markers) are skipped.
func (w *World) SaveScene(path string) error {
	var sf SceneFile

	for _, g := range w.Scene.GameObjects {
		if skipOnSave(g) {
			continue
		}

		def := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: [3]float32{g.Transform.Position.X, g.Transform.Position.Y, g.Transform.Position.Z},
			Rotation: [3]float32{g.Transform.Rotation.X, g.Transform.Rotation.Y, g.Transform.Rotation.Z},
			Scale:    [3]float32{g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z},
		}
		for _, c := range g.Components() {
			if data := serializeComponent(c); data != nil {
				def.Components = append(def.Components, data)
			}
		}
		sf.Objects = append(sf.Objects, def)
	}

	return WriteSceneFile(path, sf)
}

// WriteSceneFile writes sf as indented JSON.
func WriteSceneFile(path string, sf SceneFile) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

func skipOnSave(g *engine.GameObject) bool {
	return engine.GetComponent[*components.PlayerController](g) != nil ||
		engine.GetComponent[*components.RopeSegment](g) != nil ||
		engine.GetComponent[*components.HitMarker](g) != nil
}

func serializeComponent(c engine.Component) map[string]any {
	if s, ok := c.(engine.Serializable); ok {
		return s.Serialize()
	}
	if name, props, ok := engine.SerializeScript(c); ok {
		return map[string]any{"type": "Script", "name": name, "props": props}
	}
	return nil
}
