package components

import (
	"math"

	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Camera", func() engine.Serializable {
		return NewCamera()
	})
}

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        70.0,
		Near:       0.05,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
	}
}

// TypeName implements engine.Serializable
func (c *Camera) TypeName() string {
	return "Camera"
}

// Serialize implements engine.Serializable
func (c *Camera) Serialize() map[string]any {
	return map[string]any{
		"type": "Camera",
		"fov":  c.FOV,
		"near": c.Near,
		"far":  c.Far,
	}
}

// Deserialize implements engine.Serializable
func (c *Camera) Deserialize(data map[string]any) {
	c.FOV = readFloat(data, "fov", c.FOV)
	c.Near = readFloat(data, "near", c.Near)
	c.Far = readFloat(data, "far", c.Far)
}

// GetRaylibCamera builds the view from the nearest LookProvider on this
// object or its parents, falling back to the object's yaw.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()

	var lookProvider engine.LookProvider
	for obj := g; obj != nil; obj = obj.Parent {
		if lp := engine.FindComponent[engine.LookProvider](obj); lp != nil {
			lookProvider = lp
			break
		}
	}

	var lookDir rl.Vector3
	if lookProvider != nil {
		// A camera on the controller's own object sits at eye height
		if g.Parent == nil {
			eyePos.Y += lookProvider.GetEyeHeight()
		}
		x, y, z := lookProvider.GetLookDirection()
		lookDir = rl.Vector3{X: x, Y: y, Z: z}
	} else {
		yawRad := float64(g.WorldRotation().Y) * rl.Deg2rad
		lookDir = rl.Vector3{
			X: float32(-math.Sin(yawRad)),
			Z: float32(-math.Cos(yawRad)),
		}
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, lookDir),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
