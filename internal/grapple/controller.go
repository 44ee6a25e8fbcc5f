// Package grapple implements a grappling hook: raycast targeting filtered by
// tag, a pull toward an anchor point that follows its object, and the rope
// drawn between the player and that point.
//
// The Controller is single-threaded and driven by the game loop. Per tick the
// host must handle input (TryFireOrCancel, Cancel) first, then TickMotion,
// then UpdateRopeVisual.
package grapple

import (
	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

type State int

const (
	Idle State = iota
	Attached
)

func (s State) String() string {
	if s == Attached {
		return "attached"
	}
	return "idle"
}

// Outcome is what a fire or tick call did.
type Outcome int

const (
	NoTarget    Outcome = iota // ray missed, or hit something without the tag
	Hooked                     // attached to a new anchor
	Cancelled                  // detached by the player or the host
	Moving                     // still attached, pulled this tick
	Arrived                    // detached within ArrivalRadius of the point
	Overshot                   // detached after passing the point
	AnchorLost                 // detached because the anchor object is gone
	NotAttached                // TickMotion called while idle
)

var outcomeNames = [...]string{
	NoTarget:    "no target",
	Hooked:      "hooked",
	Cancelled:   "cancelled",
	Moving:      "moving",
	Arrived:     "arrived",
	Overshot:    "overshot",
	AnchorLost:  "anchor lost",
	NotAttached: "not attached",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Pose is a ray origin and a forward direction, usually the player's eye.
type Pose struct {
	Origin  rl.Vector3
	Forward rl.Vector3
}

// Raycaster is the physics query used for targeting.
type Raycaster interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool)
}

// Body is what the grapple pulls. MoveAndSlide integrates the velocity set
// last with collision response and returns the new position.
type Body interface {
	SetVelocity(v rl.Vector3)
	MoveAndSlide(deltaTime float32) rl.Vector3
}

// Segment is a drawable rope owned by the controller while attached.
type Segment interface {
	SetTransform(m rl.Matrix)
	Destroy()
}

// SegmentFactory creates rope segments.
type SegmentFactory interface {
	NewRopeSegment(radius float32) Segment
}

type Controller struct {
	cfg       Config
	raycaster Raycaster
	lookup    engine.ObjectLookup
	segments  SegmentFactory
	logger    *zap.Logger

	state       State
	anchor      engine.GameObjectRef
	localOffset rl.Vector3
	point       rl.Vector3
	rope        Segment

	// AttachedTo fires with the raycast that attached the grapple.
	AttachedTo engine.EventWithArg[engine.RaycastResult]
	// Detached fires with the reason each time the grapple lets go.
	Detached engine.EventWithArg[Outcome]
}

func NewController(cfg Config, raycaster Raycaster, lookup engine.ObjectLookup, segments SegmentFactory, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		cfg:       cfg,
		raycaster: raycaster,
		lookup:    lookup,
		segments:  segments,
		logger:    logger.Named("grapple"),
	}
}

func (c *Controller) Config() Config {
	return c.cfg
}

// SetDebug turns hit and miss diagnostics on or off.
func (c *Controller) SetDebug(on bool) {
	c.cfg.Debug = on
}

func (c *Controller) Debug() bool {
	return c.cfg.Debug
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) IsAttached() bool {
	return c.state == Attached
}

// RopeActive reports whether a rope segment currently exists.
func (c *Controller) RopeActive() bool {
	return c.rope != nil
}

// GrapplePoint is the world point being pulled toward. ok is false when idle.
func (c *Controller) GrapplePoint() (point rl.Vector3, ok bool) {
	return c.point, c.state == Attached
}

// Anchor returns the object the grapple is attached to, or nil.
func (c *Controller) Anchor() *engine.GameObject {
	if c.state != Attached {
		return nil
	}
	return c.anchor.Get(c.lookup)
}

// TryFireOrCancel toggles the grapple. While attached it always detaches.
// While idle it casts a ray and attaches to the first hit if that object
// carries the hookable tag. The raycast result is returned for diagnostics
// whenever the ray hit something.
func (c *Controller) TryFireOrCancel(pose Pose, maxDistance float32) (Outcome, engine.RaycastResult) {
	if c.state == Attached {
		c.detach(Cancelled)
		return Cancelled, engine.RaycastResult{}
	}

	hit, ok := c.target(pose, maxDistance)
	if !ok {
		return NoTarget, hit
	}

	anchor := hit.GameObject
	c.anchor = engine.RefTo(anchor)
	c.localOffset = anchor.ToLocal(hit.Point)
	c.point = hit.Point
	c.rope = c.segments.NewRopeSegment(c.cfg.RopeRadius)
	c.state = Attached

	c.logger.Debug("grapple attached",
		zap.String("anchor", anchor.Name),
		zap.Uint64("uid", anchor.UID),
		vecField("local_offset", c.localOffset))
	c.AttachedTo.Invoke(hit)
	return Hooked, hit
}

// IsLookingAtHookable runs the same targeting check as TryFireOrCancel
// without changing any state.
func (c *Controller) IsLookingAtHookable(pose Pose, maxDistance float32) bool {
	hit, ok := c.probe(pose, maxDistance)
	return ok && hit.GameObject.HasTag(c.cfg.Tag)
}

// TickMotion pulls body toward the grapple point for one physics step.
// current is the body's position before the move.
func (c *Controller) TickMotion(body Body, current rl.Vector3, deltaTime float32) Outcome {
	if c.state != Attached {
		return NotAttached
	}

	anchor := c.anchor.Get(c.lookup)
	if anchor == nil {
		c.detach(AnchorLost)
		return AnchorLost
	}
	c.point = anchor.ToGlobal(c.localOffset)

	toTarget := rl.Vector3Subtract(c.point, current)
	after := toTarget
	if rl.Vector3Length(toTarget) >= c.cfg.MinTravel {
		body.SetVelocity(rl.Vector3Scale(rl.Vector3Normalize(toTarget), c.cfg.Speed))
		newPos := body.MoveAndSlide(deltaTime)
		after = rl.Vector3Subtract(c.point, newPos)
	}

	switch {
	case rl.Vector3Length(after) < c.cfg.ArrivalRadius:
		c.detach(Arrived)
		return Arrived
	case rl.Vector3DotProduct(toTarget, after) < 0:
		c.detach(Overshot)
		return Overshot
	}
	return Moving
}

// Cancel detaches if attached. Safe to call in any state.
func (c *Controller) Cancel() {
	if c.state == Attached {
		c.detach(Cancelled)
	}
}

// UpdateRopeVisual stretches the rope from origin to the grapple point,
// taken from where the anchor is now. Returns false and leaves the rope
// untouched when idle or when the two points coincide.
func (c *Controller) UpdateRopeVisual(origin rl.Vector3) bool {
	if c.state != Attached || c.rope == nil {
		return false
	}
	if anchor := c.anchor.Get(c.lookup); anchor != nil {
		c.point = anchor.ToGlobal(c.localOffset)
	}
	m, ok := RopeTransform(origin, c.point, c.cfg.RopeEpsilon, c.cfg.ParallelThreshold)
	if !ok {
		return false
	}
	c.rope.SetTransform(m)
	return true
}

func (c *Controller) detach(reason Outcome) {
	if c.rope != nil {
		c.rope.Destroy()
		c.rope = nil
	}
	c.anchor.Clear()
	c.localOffset = rl.Vector3{}
	c.state = Idle

	c.logger.Debug("grapple detached", zap.Stringer("reason", reason))
	c.Detached.Invoke(reason)
}

// target is probe plus the tag filter and debug logging.
func (c *Controller) target(pose Pose, maxDistance float32) (engine.RaycastResult, bool) {
	hit, ok := c.probe(pose, maxDistance)
	if !ok {
		if c.cfg.Debug {
			c.logger.Debug("grapple missed",
				vecField("origin", pose.Origin),
				vecField("direction", pose.Forward),
				zap.Float32("max_distance", maxDistance))
		}
		return hit, false
	}

	if c.cfg.Debug {
		c.logger.Debug("grapple ray hit",
			zap.String("object", hit.GameObject.Name),
			zap.Strings("tags", hit.GameObject.Tags),
			vecField("point", hit.Point),
			vecField("normal", hit.Normal),
			zap.Float32("distance", hit.Distance))
	}

	if !hit.GameObject.HasTag(c.cfg.Tag) {
		return hit, false
	}
	return hit, true
}

func (c *Controller) probe(pose Pose, maxDistance float32) (engine.RaycastResult, bool) {
	if maxDistance <= 0 || c.raycaster == nil || rl.Vector3LengthSqr(pose.Forward) == 0 {
		return engine.RaycastResult{}, false
	}
	hit, ok := c.raycaster.Raycast(pose.Origin, rl.Vector3Normalize(pose.Forward), maxDistance)
	if !ok || hit.GameObject == nil {
		return engine.RaycastResult{}, false
	}
	return hit, true
}

func vecField(key string, v rl.Vector3) zap.Field {
	return zap.Float32s(key, []float32{v.X, v.Y, v.Z})
}
