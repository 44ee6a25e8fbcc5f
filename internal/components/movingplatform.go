package components

import (
	"math"

	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("MovingPlatform", func() engine.Serializable {
		return NewMovingPlatform(nil, 4, 0.5)
	})
}

type Easing int

const (
	EaseLinear Easing = iota
	EaseIn
	EaseOut
	EaseInOut
)

var easingNames = map[Easing]string{
	EaseLinear: "linear",
	EaseIn:     "in",
	EaseOut:    "out",
	EaseInOut:  "inOut",
}

func (e Easing) String() string {
	return easingNames[e]
}

// ParseEasing maps a scene-file name to an Easing, defaulting to in-out.
func ParseEasing(name string) Easing {
	for e, n := range easingNames {
		if n == name {
			return e
		}
	}
	return EaseInOut
}

// Apply maps linear progress t in [0,1] onto the eased curve.
func (e Easing) Apply(t float32) float32 {
	x := float64(t)
	switch e {
	case EaseIn:
		return float32(1 - math.Cos(x*math.Pi/2))
	case EaseOut:
		return float32(math.Sin(x * math.Pi / 2))
	case EaseInOut:
		return float32(-(math.Cos(math.Pi*x) - 1) / 2)
	default:
		return t
	}
}

// MovingPlatform drives its object back and forth through a list of world
// positions: 0, 1, ..., n-1, n-2, ..., 0 and around again. Each leg takes
// LegDuration seconds and is followed by a Delay pause.
type MovingPlatform struct {
	engine.BaseComponent
	Waypoints   []rl.Vector3
	LegDuration float32
	Delay       float32
	Easing      Easing

	leg       int // index into route()
	elapsed   float32
	waiting   float32
	lastDelta rl.Vector3
}

func NewMovingPlatform(waypoints []rl.Vector3, legDuration, delay float32) *MovingPlatform {
	return &MovingPlatform{
		Waypoints:   waypoints,
		LegDuration: legDuration,
		Delay:       delay,
		Easing:      EaseInOut,
	}
}

// TypeName implements engine.Serializable
func (m *MovingPlatform) TypeName() string {
	return "MovingPlatform"
}

// Serialize implements engine.Serializable
func (m *MovingPlatform) Serialize() map[string]any {
	points := make([][]float32, len(m.Waypoints))
	for i, w := range m.Waypoints {
		points[i] = vecToSlice(w)
	}
	return map[string]any{
		"type":        "MovingPlatform",
		"waypoints":   points,
		"legDuration": m.LegDuration,
		"delay":       m.Delay,
		"easing":      m.Easing.String(),
	}
}

// Deserialize implements engine.Serializable
func (m *MovingPlatform) Deserialize(data map[string]any) {
	if raw, ok := data["waypoints"].([]any); ok {
		m.Waypoints = m.Waypoints[:0]
		for _, p := range raw {
			if x, y, z, ok := engine.Vec3(p); ok {
				m.Waypoints = append(m.Waypoints, rl.Vector3{X: x, Y: y, Z: z})
			}
		}
	}
	m.LegDuration = readFloat(data, "legDuration", m.LegDuration)
	m.Delay = readFloat(data, "delay", m.Delay)
	if v, ok := data["easing"].(string); ok {
		m.Easing = ParseEasing(v)
	}
}

func (m *MovingPlatform) Start() {
	if g := m.GetGameObject(); g != nil && len(m.Waypoints) > 0 {
		g.Transform.Position = m.Waypoints[0]
	}
}

// route returns the waypoint indices of one full round trip
func (m *MovingPlatform) route() []int {
	n := len(m.Waypoints)
	r := make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		r = append(r, i)
	}
	for i := n - 2; i > 0; i-- {
		r = append(r, i)
	}
	return r
}

func (m *MovingPlatform) Update(deltaTime float32) {
	g := m.GetGameObject()
	m.lastDelta = rl.Vector3{}
	if g == nil || len(m.Waypoints) < 2 {
		return
	}

	if m.waiting > 0 {
		m.waiting -= deltaTime
		return
	}

	route := m.route()
	from := m.Waypoints[route[m.leg%len(route)]]
	to := m.Waypoints[route[(m.leg+1)%len(route)]]

	m.elapsed += deltaTime
	t := float32(1)
	if m.LegDuration > 0 {
		t = min(m.elapsed/m.LegDuration, 1)
	}

	prev := g.Transform.Position
	g.Transform.Position = rl.Vector3Lerp(from, to, m.Easing.Apply(t))
	m.lastDelta = rl.Vector3Subtract(g.Transform.Position, prev)

	if t >= 1 {
		m.leg = (m.leg + 1) % len(route)
		m.elapsed = 0
		m.waiting = m.Delay
	}
}

// LastDelta is how far the platform moved during its last Update.
func (m *MovingPlatform) LastDelta() rl.Vector3 {
	return m.lastDelta
}
