package components

import (
	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("BoxCollider", func() engine.Serializable {
		return NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}

type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3
	Offset    rl.Vector3
	IsTrigger bool // triggers report overlaps but do not block movement or rays
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// NewTriggerVolume creates a box collider that only reports overlaps.
func NewTriggerVolume(size rl.Vector3) *BoxCollider {
	b := NewBoxCollider(size)
	b.IsTrigger = true
	return b
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(b.GetGameObject().WorldPosition(), b.Offset)
}

// GetWorldSize returns Size scaled by the object's world scale
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}

// Bounds returns the world-space min and max corners.
func (b *BoxCollider) Bounds() (min, max rl.Vector3) {
	c := b.GetCenter()
	s := b.GetWorldSize()
	half := rl.Vector3{X: absf(s.X) / 2, Y: absf(s.Y) / 2, Z: absf(s.Z) / 2}
	return rl.Vector3Subtract(c, half), rl.Vector3Add(c, half)
}

// TypeName implements engine.Serializable
func (b *BoxCollider) TypeName() string {
	return "BoxCollider"
}

// Serialize implements engine.Serializable
func (b *BoxCollider) Serialize() map[string]any {
	data := map[string]any{
		"type": "BoxCollider",
		"size": vecToSlice(b.Size),
	}
	if b.Offset != (rl.Vector3{}) {
		data["offset"] = vecToSlice(b.Offset)
	}
	if b.IsTrigger {
		data["isTrigger"] = true
	}
	return data
}

// Deserialize implements engine.Serializable
func (b *BoxCollider) Deserialize(data map[string]any) {
	b.Size = readVec(data, "size", b.Size)
	b.Offset = readVec(data, "offset", b.Offset)
	if v, ok := data["isTrigger"].(bool); ok {
		b.IsTrigger = v
	}
}
