package components

import (
	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HitMarker is a small sphere showing where a grapple ray landed.
// Expiry holds the timer that removes it so the timer can be stopped if the
// marker goes away first.
type HitMarker struct {
	engine.BaseComponent
	Radius float32
	Color  rl.Color
	Expiry *engine.Timer
}

func NewHitMarker() *HitMarker {
	return &HitMarker{
		Radius: 0.1,
		Color:  rl.Green,
	}
}

// OnDestroy implements engine.DestroyHandler
func (h *HitMarker) OnDestroy() {
	h.Expiry.Stop()
}

func (h *HitMarker) Draw() {
	g := h.GetGameObject()
	if g == nil {
		return
	}
	rl.DrawSphere(g.WorldPosition(), h.Radius, h.Color)
}
