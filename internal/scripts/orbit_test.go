package scripts

import (
	"math"
	"testing"

	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func closeTo(a, b rl.Vector3) bool {
	return rl.Vector3Distance(a, b) < 1e-3
}

func TestOrbitCirclesCenter(t *testing.T) {
	g := engine.NewGameObject("Hook")
	g.Transform.Position = rl.Vector3{X: 13, Y: 5, Z: 10}
	o := &Orbit{Radius: 3, Speed: 90}
	g.AddComponent(o)
	g.Start()

	if want := (rl.Vector3{X: 10, Y: 5, Z: 10}); !closeTo(o.Center(), want) {
		t.Fatalf("Expected center %v, got %v", want, o.Center())
	}

	g.Update(1)
	if want := (rl.Vector3{X: 10, Y: 5, Z: 13}); !closeTo(g.Transform.Position, want) {
		t.Errorf("After a quarter turn expected %v, got %v", want, g.Transform.Position)
	}

	g.Update(3)
	if want := (rl.Vector3{X: 13, Y: 5, Z: 10}); !closeTo(g.Transform.Position, want) {
		t.Errorf("After a full turn expected %v, got %v", want, g.Transform.Position)
	}
	if o.Phase < 0 || o.Phase >= 360 {
		t.Errorf("Phase should wrap, got %v", o.Phase)
	}
}

func TestOrbitRoundTrip(t *testing.T) {
	comp := engine.CreateScript("Orbit", map[string]any{"radius": 2.0, "speed": 45.0, "phase": 90.0})
	o, ok := comp.(*Orbit)
	if !ok {
		t.Fatalf("Expected *Orbit, got %T", comp)
	}
	if o.Radius != 2 || o.Speed != 45 || o.Phase != 90 {
		t.Errorf("Props not applied: %+v", o)
	}

	name, props, ok := engine.SerializeScript(o)
	if !ok || name != "Orbit" {
		t.Fatalf("SerializeScript: got %q, %v", name, ok)
	}
	if props["phase"] != float32(90) {
		t.Errorf("Expected phase 90, got %v", props["phase"])
	}
}

func TestOrbitResumesFromSavedPhase(t *testing.T) {
	// A saved position on the circle at phase 90 reloads to the same center.
	g := engine.NewGameObject("Hook")
	g.Transform.Position = rl.Vector3{X: 0, Z: 4}
	o := &Orbit{Radius: 4, Speed: 10, Phase: 90}
	g.AddComponent(o)
	g.Start()

	if !closeTo(o.Center(), rl.Vector3{}) {
		t.Errorf("Expected center at origin, got %v", o.Center())
	}
	if math.IsNaN(float64(g.Transform.Position.X)) {
		t.Error("Position is NaN")
	}
}
