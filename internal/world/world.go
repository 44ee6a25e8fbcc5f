package world

import (
	"grapple3d/internal/checkpoint"
	"grapple3d/internal/components"
	"grapple3d/internal/engine"
	"grapple3d/internal/grapple"
	"grapple3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// drawable is any component with its own draw call.
type drawable interface {
	Draw()
}

// World owns the level: the scene graph, the physics world that indexes its
// colliders, and the game-time timers.
type World struct {
	Scene        *engine.Scene
	PhysicsWorld *physics.PhysicsWorld
	Timers       engine.Timers

	checkpoints *checkpoint.Store
	reached     *engine.EventWithArg[int]
	logger      *zap.Logger
	started     bool
}

// New creates an empty world. Checkpoint components spawned into it report to
// store and fire reached.
func New(store *checkpoint.Store, reached *engine.EventWithArg[int], logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &World{
		Scene:        engine.NewScene("Main"),
		PhysicsWorld: physics.NewPhysicsWorld(),
		checkpoints:  store,
		reached:      reached,
		logger:       logger.Named("world"),
	}
	w.Scene.World = w
	return w
}

// Start runs Start on every object. Objects spawned later start on spawn.
func (w *World) Start() {
	w.Scene.Start()
	w.started = true
	w.logger.Info("world started",
		zap.Int("objects", len(w.Scene.GameObjects)),
		zap.Int("statics", len(w.PhysicsWorld.Statics)),
		zap.Int("kinematics", len(w.PhysicsWorld.Kinematics)),
		zap.Int("triggers", len(w.PhysicsWorld.Triggers)))
}

// Update advances timers, then every object, then trigger detection.
func (w *World) Update(deltaTime float32) {
	w.Timers.Update(deltaTime)
	w.Scene.Update(deltaTime)
	w.PhysicsWorld.Update()
}

// Draw renders every drawable component inside the camera's view.
func (w *World) Draw(camera rl.Camera3D, aspect float32) {
	frustum := ExtractFrustum(camera, aspect, 0.05, 1000)
	for _, g := range w.Scene.GameObjects {
		if !g.Active {
			continue
		}
		if mr := engine.GetComponent[*components.MeshRenderer](g); mr != nil {
			s := g.WorldScale()
			size := rl.Vector3{X: mr.Size.X * s.X, Y: mr.Size.Y * s.Y, Z: mr.Size.Z * s.Z}
			if !frustum.ContainsSphere(g.WorldPosition(), rl.Vector3Length(size)/2) {
				continue
			}
		}
		for _, c := range g.Components() {
			if d, ok := c.(drawable); ok {
				d.Draw()
			}
		}
	}
}

// GetCollidableObjects implements engine.WorldAccess
func (w *World) GetCollidableObjects() []*engine.GameObject {
	return w.PhysicsWorld.Collidables()
}

// SpawnObject implements engine.WorldAccess
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.PhysicsWorld.AddObject(g)
	w.wireCheckpoint(g)
	if w.started {
		g.Start()
	}
}

// Destroy implements engine.WorldAccess
func (w *World) Destroy(g *engine.GameObject) {
	if g == nil || g.Destroyed() {
		return
	}
	for _, child := range g.Children {
		w.PhysicsWorld.RemoveObject(child)
	}
	w.PhysicsWorld.RemoveObject(g)
	w.Scene.RemoveGameObject(g)
}

// Raycast implements engine.WorldAccess
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	return w.PhysicsWorld.Raycast(origin, direction, maxDistance)
}

// FindByUID implements engine.ObjectLookup
func (w *World) FindByUID(uid uint64) *engine.GameObject {
	return w.Scene.FindByUID(uid)
}

// NewRopeSegment implements grapple.SegmentFactory
func (w *World) NewRopeSegment(radius float32) grapple.Segment {
	g := engine.NewGameObject("Grapple Rope")
	rope := components.NewRopeSegment(radius)
	g.AddComponent(rope)
	w.SpawnObject(g)
	return rope
}

// SpawnHitMarker drops a marker at pos that removes itself after seconds.
func (w *World) SpawnHitMarker(pos rl.Vector3, seconds float32) *engine.GameObject {
	g := engine.NewGameObject("Hit Marker")
	g.Transform.Position = pos
	marker := components.NewHitMarker()
	g.AddComponent(marker)
	w.SpawnObject(g)
	marker.Expiry = w.Timers.After(seconds, func() {
		w.Destroy(g)
	})
	return g
}

// Clear removes every object and stops every timer.
func (w *World) Clear() {
	w.Timers.Clear()
	for _, g := range append([]*engine.GameObject(nil), w.Scene.GameObjects...) {
		w.Destroy(g)
	}
}

func (w *World) wireCheckpoint(g *engine.GameObject) {
	cp := engine.GetComponent[*components.Checkpoint](g)
	if cp == nil {
		return
	}
	if w.checkpoints != nil {
		cp.Store = w.checkpoints
	}
	cp.Reached = w.reached
}
