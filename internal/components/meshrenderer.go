package components

import (
	"grapple3d/internal/assets"
	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("MeshRenderer", func() engine.Serializable {
		return NewMeshRenderer(MeshCube, rl.LightGray, rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

var meshTypeNames = []string{"cube", "sphere", "plane"}

func (m MeshType) String() string {
	if int(m) < len(meshTypeNames) {
		return meshTypeNames[m]
	}
	return "cube"
}

type MeshRenderer struct {
	engine.BaseComponent
	MeshType  MeshType
	Color     rl.Color
	Size      rl.Vector3
	Wireframe bool // draw dark edges over the solid mesh
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// TypeName implements engine.Serializable
func (m *MeshRenderer) TypeName() string {
	return "MeshRenderer"
}

// Serialize implements engine.Serializable
func (m *MeshRenderer) Serialize() map[string]any {
	return map[string]any{
		"type":      "MeshRenderer",
		"mesh":      m.MeshType.String(),
		"size":      vecToSlice(m.Size),
		"color":     colorValue(m.Color),
		"wireframe": m.Wireframe,
	}
}

// Deserialize implements engine.Serializable
func (m *MeshRenderer) Deserialize(data map[string]any) {
	if v, ok := data["mesh"].(string); ok {
		for i, name := range meshTypeNames {
			if name == v {
				m.MeshType = MeshType(i)
			}
		}
	}
	m.Size = readVec(data, "size", m.Size)
	if name, ok := data["color"].(string); ok {
		if c, found := assets.LookupColor(name); found {
			m.Color = c
		}
	} else if c, ok := data["color"].([]any); ok && len(c) == 4 {
		var rgba [4]uint8
		for i, v := range c {
			if f, ok := v.(float64); ok {
				rgba[i] = uint8(f)
			}
		}
		m.Color = rl.NewColor(rgba[0], rgba[1], rgba[2], rgba[3])
	}
	if v, ok := data["wireframe"].(bool); ok {
		m.Wireframe = v
	}
}

// colorValue is the palette name of c, or its [r, g, b, a] components.
func colorValue(c rl.Color) any {
	if name, ok := assets.ColorName(c); ok {
		return name
	}
	return []int{int(c.R), int(c.G), int(c.B), int(c.A)}
}

// Draw renders the mesh at the object's world position and scale.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	s := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * s.X, Y: m.Size.Y * s.Y, Z: m.Size.Z * s.Z}

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(pos, size, m.Color)
		if m.Wireframe {
			rl.DrawCubeWiresV(pos, size, rl.Fade(rl.Black, 0.4))
		}
	case MeshSphere:
		rl.DrawSphere(pos, size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: size.X, Y: size.Z}, m.Color)
	}
}
