package components

import (
	"testing"

	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWorld hands every object in the scene to MoveAndSlide as a collider.
type fakeWorld struct {
	scene     *engine.Scene
	destroyed []*engine.GameObject
}

func (w *fakeWorld) GetCollidableObjects() []*engine.GameObject {
	return w.scene.GameObjects
}

func (w *fakeWorld) SpawnObject(g *engine.GameObject) {
	w.scene.AddGameObject(g)
}

func (w *fakeWorld) Destroy(g *engine.GameObject) {
	w.destroyed = append(w.destroyed, g)
	w.scene.RemoveGameObject(g)
}

func (w *fakeWorld) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	return engine.RaycastResult{}, false
}

func newTestScene() (*engine.Scene, *fakeWorld) {
	scene := engine.NewScene("test")
	w := &fakeWorld{scene: scene}
	scene.World = w
	return scene, w
}

func addBox(scene *engine.Scene, name string, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(NewBoxCollider(size))
	scene.AddGameObject(g)
	return g
}

func addPlayer(scene *engine.Scene, pos rl.Vector3) (*engine.GameObject, *CharacterBody) {
	g := engine.NewGameObject("Player")
	g.Tags = []string{PlayerTag}
	g.Transform.Position = pos
	body := NewCharacterBody()
	g.AddComponent(body)
	scene.AddGameObject(g)
	return g, body
}

func near(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-3, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-3, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-3, "z")
}

func TestBoxColliderBoundsUseScaleAndOffset(t *testing.T) {
	g := engine.NewGameObject("Crate")
	g.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	g.Transform.Scale = rl.Vector3{X: 2, Y: 1, Z: 1}
	box := NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	box.Offset = rl.Vector3{Y: 1}
	g.AddComponent(box)

	min, max := box.Bounds()
	near(t, rl.Vector3{X: 0, Y: 2.5, Z: 2.5}, min)
	near(t, rl.Vector3{X: 2, Y: 3.5, Z: 3.5}, max)
}

func TestBoxColliderRoundTripThroughRegistry(t *testing.T) {
	c, ok := engine.CreateComponent("BoxCollider", map[string]any{
		"size":      []any{2.0, 3.0, 4.0},
		"isTrigger": true,
	})
	require.True(t, ok)
	box := c.(*BoxCollider)
	assert.Equal(t, rl.Vector3{X: 2, Y: 3, Z: 4}, box.Size)
	assert.True(t, box.IsTrigger)
	assert.Equal(t, true, box.Serialize()["isTrigger"])
}

func TestCharacterBodyLandsOnFloor(t *testing.T) {
	scene, _ := newTestScene()
	floor := addBox(scene, "Floor", rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10})
	_, body := addPlayer(scene, rl.Vector3{Y: 1.45})

	body.SetVelocity(rl.Vector3{Y: -1})
	pos := body.MoveAndSlide(0.1)

	assert.True(t, body.IsOnFloor())
	assert.Same(t, floor, body.FloorObject())
	assert.InDelta(t, 1.4, pos.Y, 1e-3, "feet should rest on the floor top")
	assert.Equal(t, float32(0), body.Velocity().Y)
}

func TestCharacterBodyStaysGroundedWhenStill(t *testing.T) {
	scene, _ := newTestScene()
	addBox(scene, "Floor", rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10})
	_, body := addPlayer(scene, rl.Vector3{Y: 1.45})

	body.SetVelocity(rl.Vector3{Y: -1})
	body.MoveAndSlide(0.1)
	require.True(t, body.IsOnFloor())

	for i := 0; i < 3; i++ {
		pos := body.MoveAndSlide(0.1)
		assert.True(t, body.IsOnFloor(), "tick %d", i)
		assert.InDelta(t, 1.4, pos.Y, 1e-3)
	}
}

func TestCharacterBodyStopsAtWall(t *testing.T) {
	scene, _ := newTestScene()
	addBox(scene, "Wall", rl.Vector3{X: 2, Y: 1.4}, rl.Vector3{X: 1, Y: 4, Z: 4})
	_, body := addPlayer(scene, rl.Vector3{Y: 1.4})

	body.SetVelocity(rl.Vector3{X: 12})
	pos := body.MoveAndSlide(0.1)

	assert.True(t, body.IsOnWall())
	assert.InDelta(t, 1.1, pos.X, 1e-3)
	assert.Equal(t, float32(0), body.Velocity().X)
}

func TestCharacterBodyClimbsLowStep(t *testing.T) {
	scene, _ := newTestScene()
	// Step top at y=0.2, player feet at y=0
	addBox(scene, "Step", rl.Vector3{X: 1, Y: 0.1}, rl.Vector3{X: 1, Y: 0.2, Z: 2})
	_, body := addPlayer(scene, rl.Vector3{Y: 0.9})

	body.SetVelocity(rl.Vector3{X: 5})
	pos := body.MoveAndSlide(0.1)

	assert.InDelta(t, 1.1, pos.Y, 0.02)
	assert.InDelta(t, 0.5, pos.X, 1e-3)
	assert.True(t, body.IsOnFloor())
}

func TestCharacterBodyIgnoresTriggers(t *testing.T) {
	scene, _ := newTestScene()
	trigger := addBox(scene, "Zone", rl.Vector3{X: 0.5}, rl.Vector3{X: 2, Y: 2, Z: 2})
	engine.GetComponent[*BoxCollider](trigger).IsTrigger = true
	_, body := addPlayer(scene, rl.Vector3{})

	body.SetVelocity(rl.Vector3{X: 1})
	pos := body.MoveAndSlide(1)

	near(t, rl.Vector3{X: 1}, pos)
}

func TestCharacterBodyRidesMovingPlatform(t *testing.T) {
	scene, _ := newTestScene()
	platform := addBox(scene, "Platform", rl.Vector3{}, rl.Vector3{X: 4, Y: 1, Z: 4})
	mp := NewMovingPlatform([]rl.Vector3{{}, {X: 4}}, 1, 0)
	mp.Easing = EaseLinear
	platform.AddComponent(mp)
	mp.Start()
	_, body := addPlayer(scene, rl.Vector3{Y: 1.45})

	body.SetVelocity(rl.Vector3{Y: -1})
	body.MoveAndSlide(0.1)
	require.True(t, body.IsOnFloor())

	mp.Update(0.25)
	near(t, rl.Vector3{X: 1}, mp.LastDelta())

	body.SetVelocity(rl.Vector3{Y: -1})
	pos := body.MoveAndSlide(0.1)
	assert.InDelta(t, 1, pos.X, 1e-3)
	assert.True(t, body.IsOnFloor())
}

func TestMovingPlatformPingPongsThroughWaypoints(t *testing.T) {
	g := engine.NewGameObject("Hook box")
	points := []rl.Vector3{{}, {Y: 10}, {X: 10, Y: 10}}
	mp := NewMovingPlatform(points, 1, 0.5)
	mp.Easing = EaseLinear
	g.AddComponent(mp)
	g.Start()

	visit := func(want rl.Vector3) {
		t.Helper()
		mp.Update(1)
		near(t, want, g.Transform.Position)
		mp.Update(0.5) // delay
		assert.Equal(t, rl.Vector3{}, mp.LastDelta())
	}
	visit(points[1])
	visit(points[2])
	visit(points[1])
	visit(points[0])
	visit(points[1])
}

func TestMovingPlatformHalfwayWithEasing(t *testing.T) {
	g := engine.NewGameObject("Platform")
	mp := NewMovingPlatform([]rl.Vector3{{}, {X: 10}}, 4, 0)
	g.AddComponent(mp)
	g.Start()

	mp.Update(1)
	assert.Less(t, g.Transform.Position.X, float32(2.5), "in-out starts slow")
	mp.Update(1)
	assert.InDelta(t, 5, g.Transform.Position.X, 1e-3)
}

func TestEasingEndpoints(t *testing.T) {
	for _, e := range []Easing{EaseLinear, EaseIn, EaseOut, EaseInOut} {
		assert.InDelta(t, 0, e.Apply(0), 1e-6, e.String())
		assert.InDelta(t, 1, e.Apply(1), 1e-6, e.String())
		assert.Equal(t, e, ParseEasing(e.String()))
	}
	assert.Equal(t, EaseInOut, ParseEasing("bounce"))
}

func TestMovingPlatformDeserialize(t *testing.T) {
	c, ok := engine.CreateComponent("MovingPlatform", map[string]any{
		"waypoints":   []any{[]any{0.0, 1.0, 0.0}, []any{5.0, 1.0, 0.0}},
		"legDuration": 2.0,
		"delay":       0.0,
		"easing":      "linear",
	})
	require.True(t, ok)
	mp := c.(*MovingPlatform)
	assert.Len(t, mp.Waypoints, 2)
	assert.Equal(t, float32(2), mp.LegDuration)
	assert.Equal(t, float32(0), mp.Delay)
	assert.Equal(t, EaseLinear, mp.Easing)
}

type recordingStore struct {
	set []int
	err error
}

func (r *recordingStore) Set(n int) error {
	r.set = append(r.set, n)
	return r.err
}

func TestCheckpointReactsOnlyToPlayer(t *testing.T) {
	store := &recordingStore{}
	reached := &engine.EventWithArg[int]{}
	var got []int
	reached.AddListener(func(n int) { got = append(got, n) })

	cp := NewCheckpoint(3)
	cp.Store = store
	cp.Reached = reached

	cp.OnTriggerEnter(engine.NewGameObject("Crate"))
	assert.Empty(t, store.set)

	player := engine.NewGameObject("Player")
	player.Tags = []string{PlayerTag}
	cp.OnTriggerEnter(player)
	cp.OnTriggerExit(player)
	cp.OnTriggerEnter(player)

	assert.Equal(t, []int{3, 3}, store.set)
	assert.Equal(t, []int{3, 3}, got)
}

func TestPlayerControllerWalksForward(t *testing.T) {
	scene := engine.NewScene("empty")
	g, body := addPlayer(scene, rl.Vector3{})
	pc := NewPlayerController()
	g.AddComponent(pc)
	g.Start()
	body.onFloor = true

	pc.Walk(MoveInput{Forward: 1}, 1)
	near(t, rl.Vector3{Z: -5}, g.Transform.Position)

	body.onFloor = true
	pc.Walk(MoveInput{Forward: 1, Sprint: true}, 1)
	near(t, rl.Vector3{Z: -12.5}, g.Transform.Position)
}

func TestPlayerControllerStopsWithoutInput(t *testing.T) {
	scene := engine.NewScene("empty")
	g, body := addPlayer(scene, rl.Vector3{})
	pc := NewPlayerController()
	g.AddComponent(pc)
	body.SetVelocity(rl.Vector3{X: 3, Z: 7})

	pc.Walk(MoveInput{}, 0.5)

	v := body.Velocity()
	assert.Equal(t, float32(0), v.X)
	assert.Equal(t, float32(2), v.Z)
}

func TestPlayerControllerGravityAndJump(t *testing.T) {
	scene := engine.NewScene("empty")
	g, body := addPlayer(scene, rl.Vector3{})
	pc := NewPlayerController()
	g.AddComponent(pc)

	pc.Walk(MoveInput{Jump: true}, 0.5)
	assert.InDelta(t, -4.9, body.Velocity().Y, 1e-4, "no jump in the air")

	body.onFloor = true
	pc.Walk(MoveInput{Jump: true}, 0.1)
	assert.InDelta(t, pc.JumpVelocity, body.Velocity().Y, 1e-4)
}

func TestPlayerControllerLookClampsPitch(t *testing.T) {
	pc := NewPlayerController()
	g := engine.NewGameObject("Player")
	g.AddComponent(pc)

	pc.Look(rl.Vector2{Y: -100000})
	assert.InDelta(t, maxPitch, pc.Pitch, 1e-5)
	f := pc.Forward()
	assert.InDelta(t, 1, rl.Vector3Length(f), 1e-4)
	assert.Greater(t, f.Y, float32(0.99))

	pc.Pitch = 0
	pc.Look(rl.Vector2{X: 0.5 * 3.14159265 / pc.MouseSensitivity})
	near(t, rl.Vector3{X: 1}, pc.Forward())
}

func TestPlayerControllerRespawnsBelowFallLimit(t *testing.T) {
	scene := engine.NewScene("empty")
	g, body := addPlayer(scene, rl.Vector3{Y: -4})
	pc := NewPlayerController()
	g.AddComponent(pc)
	body.SetVelocity(rl.Vector3{Y: -20})
	respawn := rl.Vector3{Y: 1.5, Z: 4}

	assert.False(t, pc.CheckFall(respawn))
	g.Transform.Position.Y = -6
	assert.True(t, pc.CheckFall(respawn))
	assert.Equal(t, respawn, g.Transform.Position)
	assert.Equal(t, rl.Vector3{}, body.Velocity())
}

func TestRopeSegmentDestroyGoesThroughWorld(t *testing.T) {
	scene, w := newTestScene()
	g := engine.NewGameObject("Rope")
	rope := NewRopeSegment(0.01)
	g.AddComponent(rope)
	scene.AddGameObject(g)

	assert.False(t, rope.Placed())
	rope.SetTransform(rl.MatrixTranslate(0, 2, 0))
	start, end := rope.Endpoints()
	near(t, rl.Vector3{Y: 1.5}, start)
	near(t, rl.Vector3{Y: 2.5}, end)

	rope.Destroy()
	rope.Destroy()
	assert.Len(t, w.destroyed, 1)
	assert.True(t, g.Destroyed())
}

func TestHitMarkerStopsTimerWhenRemovedEarly(t *testing.T) {
	scene, _ := newTestScene()
	var timers engine.Timers
	g := engine.NewGameObject("Marker")
	marker := NewHitMarker()
	g.AddComponent(marker)
	scene.AddGameObject(g)
	fired := false
	marker.Expiry = timers.After(2, func() { fired = true })

	scene.RemoveGameObject(g)
	timers.Update(3)

	assert.False(t, fired)
}

func TestCameraFollowsLookProvider(t *testing.T) {
	g := engine.NewGameObject("Player")
	g.Transform.Position = rl.Vector3{Y: 1}
	pc := NewPlayerController()
	cam := NewCamera()
	g.AddComponent(pc)
	g.AddComponent(cam)

	rc := cam.GetRaylibCamera()
	near(t, rl.Vector3{Y: 1 + pc.EyeHeight}, rc.Position)
	near(t, rl.Vector3{Y: 1 + pc.EyeHeight, Z: -1}, rc.Target)
}

func TestMeshRendererColorByNameOrComponents(t *testing.T) {
	mr := NewMeshRenderer(MeshCube, rl.NewColor(230, 140, 38, 255), rl.Vector3{X: 1, Y: 1, Z: 1})
	assert.Equal(t, "hook_orange", mr.Serialize()["color"])

	mr.Color = rl.NewColor(1, 2, 3, 255)
	assert.Equal(t, []int{1, 2, 3, 255}, mr.Serialize()["color"])

	comp, ok := engine.CreateComponent("MeshRenderer", map[string]any{"color": "steel", "mesh": "sphere"})
	require.True(t, ok)
	loaded := comp.(*MeshRenderer)
	assert.Equal(t, rl.NewColor(97, 115, 140, 255), loaded.Color)
	assert.Equal(t, MeshSphere, loaded.MeshType)

	comp, _ = engine.CreateComponent("MeshRenderer", map[string]any{"color": []any{10.0, 20.0, 30.0, 255.0}})
	assert.Equal(t, rl.NewColor(10, 20, 30, 255), comp.(*MeshRenderer).Color)
}
