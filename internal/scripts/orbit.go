package scripts

import (
	"math"

	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Orbit circles an object around a fixed center on the XZ plane.
type Orbit struct {
	engine.BaseComponent
	Radius float32
	Speed  float32 // degrees per second
	Phase  float32 // current angle in degrees

	center rl.Vector3
}

func (o *Orbit) offset() rl.Vector3 {
	rad := float64(o.Phase) * rl.Deg2rad
	return rl.Vector3{
		X: o.Radius * float32(math.Cos(rad)),
		Z: o.Radius * float32(math.Sin(rad)),
	}
}

// Start takes the current position as the point on the circle at Phase.
func (o *Orbit) Start() {
	g := o.GetGameObject()
	if g == nil {
		return
	}
	o.center = rl.Vector3Subtract(g.Transform.Position, o.offset())
}

func (o *Orbit) Update(deltaTime float32) {
	g := o.GetGameObject()
	if g == nil {
		return
	}
	o.Phase += o.Speed * deltaTime
	if o.Phase >= 360 {
		o.Phase -= 360
	}
	g.Transform.Position = rl.Vector3Add(o.center, o.offset())
}

// Center is the point the object circles.
func (o *Orbit) Center() rl.Vector3 {
	return o.center
}

func init() {
	engine.RegisterScript("Orbit", orbitFactory, orbitSerializer)
}

func orbitFactory(props map[string]any) engine.Component {
	getFloat := func(key string, fallback float32) float32 {
		if v, ok := props[key].(float64); ok {
			return float32(v)
		}
		return fallback
	}
	return &Orbit{
		Radius: getFloat("radius", 3),
		Speed:  getFloat("speed", 30),
		Phase:  getFloat("phase", 0),
	}
}

func orbitSerializer(c engine.Component) map[string]any {
	o, ok := c.(*Orbit)
	if !ok {
		return nil
	}
	return map[string]any{
		"radius": o.Radius,
		"speed":  o.Speed,
		"phase":  o.Phase,
	}
}
