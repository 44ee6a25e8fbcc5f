package world

import (
	"path/filepath"
	"testing"

	"grapple3d/internal/assets"
	"grapple3d/internal/checkpoint"
	"grapple3d/internal/components"
	"grapple3d/internal/engine"
	"grapple3d/internal/grapple"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T, positions ...rl.Vector3) (*World, *checkpoint.Store, *engine.EventWithArg[int]) {
	t.Helper()
	if len(positions) == 0 {
		positions = []rl.Vector3{{Y: 1}, {X: 20, Y: 2, Z: -60}}
	}
	store := checkpoint.NewStore(positions, nil)
	reached := &engine.EventWithArg[int]{}
	return New(store, reached, nil), store, reached
}

func spawnBox(w *World, name string, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	w.SpawnObject(g)
	return g
}

func TestSpawnAndDestroy(t *testing.T) {
	w, _, _ := newTestWorld(t)
	g := spawnBox(w, "Crate", rl.Vector3{Z: -5}, rl.Vector3{X: 1, Y: 1, Z: 1})

	assert.Same(t, g, w.FindByUID(g.UID))
	assert.Len(t, w.PhysicsWorld.Statics, 1)
	assert.Same(t, w, g.Scene.World)

	w.Destroy(g)
	assert.True(t, g.Destroyed())
	assert.Nil(t, w.FindByUID(g.UID))
	assert.Empty(t, w.PhysicsWorld.Statics)

	w.Destroy(g)
	assert.Empty(t, w.Scene.GameObjects)
}

func TestRaycastHitsSpawnedObject(t *testing.T) {
	w, _, _ := newTestWorld(t)
	g := spawnBox(w, "Wall", rl.Vector3{Z: -10}, rl.Vector3{X: 4, Y: 4, Z: 2})

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 100)
	require.True(t, ok)
	assert.Same(t, g, hit.GameObject)
	assert.InDelta(t, 9, hit.Distance, 1e-4)

	_, ok = w.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 5)
	assert.False(t, ok)
}

func TestSpawnAfterStartRunsStart(t *testing.T) {
	w, _, _ := newTestWorld(t)
	w.Start()

	g := engine.NewGameObject("Lift")
	g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	g.AddComponent(components.NewMovingPlatform([]rl.Vector3{{Y: 3}, {Y: 6}}, 1, 0))
	w.SpawnObject(g)

	assert.Equal(t, rl.Vector3{Y: 3}, g.Transform.Position)
	assert.Len(t, w.PhysicsWorld.Kinematics, 1)
}

func TestRopeSegmentLifecycle(t *testing.T) {
	w, _, _ := newTestWorld(t)

	seg := w.NewRopeSegment(0.02)
	rope, ok := seg.(*components.RopeSegment)
	require.True(t, ok)
	g := rope.GetGameObject()
	require.NotNil(t, g)
	assert.Equal(t, "Grapple Rope", g.Name)
	assert.Equal(t, float32(0.02), rope.Radius)

	seg.Destroy()
	assert.True(t, g.Destroyed())
	assert.Empty(t, w.Scene.GameObjects)
}

func TestHitMarkerExpires(t *testing.T) {
	w, _, _ := newTestWorld(t)
	g := w.SpawnHitMarker(rl.Vector3{X: 1, Y: 2, Z: 3}, 2)

	w.Update(1.5)
	assert.False(t, g.Destroyed())

	w.Update(0.6)
	assert.True(t, g.Destroyed())
	assert.Equal(t, 0, w.Timers.Len())
}

func TestClearStopsHitMarkerTimers(t *testing.T) {
	w, _, _ := newTestWorld(t)
	w.SpawnHitMarker(rl.Vector3{}, 2)
	spawnBox(w, "Crate", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})

	w.Clear()
	assert.Empty(t, w.Scene.GameObjects)
	assert.Equal(t, 0, w.Timers.Len())
}

func TestCheckpointTriggerUpdatesStore(t *testing.T) {
	w, store, reached := newTestWorld(t)
	var got []int
	reached.AddListener(func(n int) { got = append(got, n) })

	cp := engine.NewGameObject("Checkpoint001")
	cp.Transform.Position = rl.Vector3{X: 20, Y: 2, Z: -60}
	cp.AddComponent(components.NewTriggerVolume(rl.Vector3{X: 4, Y: 2, Z: 4}))
	cp.AddComponent(components.NewCheckpoint(1))
	w.SpawnObject(cp)

	player := engine.NewGameObject("Player")
	player.Tags = []string{components.PlayerTag}
	player.Transform.Position = rl.Vector3{X: 20, Y: 2, Z: -60}
	player.AddComponent(components.NewCharacterBody())
	player.AddComponent(components.NewBoxCollider(rl.Vector3{X: 0.8, Y: 1.8, Z: 0.8}))
	w.SpawnObject(player)

	w.Start()
	w.Update(1.0 / 60)
	w.Update(1.0 / 60)

	assert.Equal(t, 1, store.Current())
	assert.Equal(t, []int{1}, got)
}

func TestCheckpointWithoutStore(t *testing.T) {
	w := New(nil, nil, nil)
	cp := engine.NewGameObject("Checkpoint001")
	c := components.NewCheckpoint(1)
	cp.AddComponent(c)
	w.SpawnObject(cp)

	assert.Nil(t, c.Store)
}

func TestBuildDefault(t *testing.T) {
	w, store, _ := newTestWorld(t)
	require.NoError(t, w.BuildDefault())
	w.Start()

	hooks := w.Scene.FindByTag(grapple.HookableTag)
	assert.GreaterOrEqual(t, len(hooks), 5)

	box := w.Scene.FindByName("Moving Hook Box")
	require.NotNil(t, box)
	assert.True(t, box.HasTag(grapple.HookableTag))
	mp := engine.GetComponent[*components.MovingPlatform](box)
	require.NotNil(t, mp)
	assert.Len(t, mp.Waypoints, 3)
	assert.Equal(t, components.EaseLinear, mp.Easing)
	assert.Equal(t, mp.Waypoints[0], box.Transform.Position)

	trigger := w.Scene.FindByName("Checkpoint001")
	require.NotNil(t, trigger)
	cp := engine.GetComponent[*components.Checkpoint](trigger)
	require.NotNil(t, cp)
	assert.Equal(t, 1, cp.Number)
	assert.Same(t, store, cp.Store)

	// Looking down the course from the spawn point finds a hook.
	hit, ok := w.Raycast(rl.Vector3{Y: 8, Z: 4}, rl.Vector3{Z: -1}, 200)
	require.True(t, ok)
	assert.True(t, hit.GameObject.HasTag(grapple.HookableTag))

	orbiting := w.Scene.FindByName("Orbiting Hook")
	require.NotNil(t, orbiting)
	before := orbiting.Transform.Position
	w.Update(1)
	assert.NotEqual(t, before, orbiting.Transform.Position)
}

func TestSaveAndLoadScene(t *testing.T) {
	src, _, _ := newTestWorld(t)
	require.NoError(t, src.BuildDefault())
	src.SpawnHitMarker(rl.Vector3{}, 2)
	src.NewRopeSegment(0.01)

	path := filepath.Join(t.TempDir(), "level.json")
	require.NoError(t, src.SaveScene(path))

	dst, _, _ := newTestWorld(t)
	require.NoError(t, dst.LoadScene(path))

	assert.Len(t, dst.Scene.GameObjects, len(DefaultLevel().Objects))
	for _, def := range DefaultLevel().Objects {
		g := dst.Scene.FindByName(def.Name)
		require.NotNil(t, g, def.Name)
		assert.Equal(t, def.Tags, g.Tags, def.Name)
	}

	pad := dst.Scene.FindByName("Start Pad")
	mr := engine.GetComponent[*components.MeshRenderer](pad)
	require.NotNil(t, mr)
	assert.Equal(t, assets.ConcreteLight, mr.Color)
	assert.Equal(t, rl.Vector3{X: 16, Y: 1, Z: 20}, mr.Size)

	lift := engine.GetComponent[*components.MovingPlatform](dst.Scene.FindByName("Moving Platform"))
	require.NotNil(t, lift)
	assert.Len(t, lift.Waypoints, 2)
	assert.Equal(t, float32(4), lift.LegDuration)
}

func TestLoadSceneRejectsUnknownComponent(t *testing.T) {
	sf := SceneFile{Objects: []ObjectDef{
		StaticBlock("Good", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1}, assets.Steel),
		{Name: "Bad", Components: []map[string]any{{"type": "Teleporter"}}},
	}}
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, WriteSceneFile(path, sf))

	w, _, _ := newTestWorld(t)
	err := w.LoadScene(path)
	require.ErrorIs(t, err, ErrUnknownComponent)
	assert.Contains(t, err.Error(), "Bad")
	assert.Empty(t, w.Scene.GameObjects)
}

func TestLoadSceneMissingFile(t *testing.T) {
	w, _, _ := newTestWorld(t)
	assert.Error(t, w.LoadScene(filepath.Join(t.TempDir(), "nope.json")))
}

func TestFrustumContainsPoint(t *testing.T) {
	camera := rl.Camera3D{
		Position:   rl.Vector3{},
		Target:     rl.Vector3{Z: -1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	f := ExtractFrustum(camera, 16.0/9.0, 0.1, 100)

	assert.True(t, f.ContainsPoint(rl.Vector3{Z: -10}))
	assert.False(t, f.ContainsPoint(rl.Vector3{Z: 10}), "behind")
	assert.False(t, f.ContainsPoint(rl.Vector3{Z: -500}), "past far plane")
	assert.False(t, f.ContainsPoint(rl.Vector3{X: 50, Z: -10}), "off to the side")
	assert.True(t, f.ContainsSphere(rl.Vector3{X: 12, Z: -10}, 5))
}
