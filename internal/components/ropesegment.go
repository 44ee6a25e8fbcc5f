package components

import (
	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RopeSegment draws a thin cylinder described by a transform whose Y axis
// spans the rope (unit cylinder from y=-0.5 to y=0.5, radius 1 before
// scaling by Radius).
type RopeSegment struct {
	engine.BaseComponent
	Radius    float32
	Color     rl.Color
	transform rl.Matrix
	placed    bool
}

func NewRopeSegment(radius float32) *RopeSegment {
	return &RopeSegment{
		Radius:    radius,
		Color:     rl.DarkBrown,
		transform: rl.MatrixIdentity(),
	}
}

// SetTransform places the rope. The matrix columns are the x, y and z axes
// (y scaled to the rope length) and the translation is the rope midpoint.
func (r *RopeSegment) SetTransform(m rl.Matrix) {
	r.transform = m
	r.placed = true
}

func (r *RopeSegment) Transform() rl.Matrix {
	return r.transform
}

// Placed reports whether SetTransform has been called.
func (r *RopeSegment) Placed() bool {
	return r.placed
}

// Endpoints returns the world-space ends of the rope's long axis.
func (r *RopeSegment) Endpoints() (start, end rl.Vector3) {
	start = rl.Vector3Transform(rl.Vector3{Y: -0.5}, r.transform)
	end = rl.Vector3Transform(rl.Vector3{Y: 0.5}, r.transform)
	return start, end
}

// Destroy removes the rope's object from the world.
func (r *RopeSegment) Destroy() {
	g := r.GetGameObject()
	if g == nil || g.Destroyed() {
		return
	}
	if g.Scene != nil && g.Scene.World != nil {
		g.Scene.World.Destroy(g)
	}
}

func (r *RopeSegment) Draw() {
	if !r.placed {
		return
	}
	start, end := r.Endpoints()
	rl.DrawCylinderEx(start, end, r.Radius, r.Radius, 6, r.Color)
}
