package components

import (
	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// floorSnap is how far a grounded body probes downward on ticks without
// vertical motion.
const floorSnap = 0.01

func init() {
	engine.RegisterComponent("CharacterBody", func() engine.Serializable {
		return NewCharacterBody()
	})
}

// CharacterBody moves a box-shaped character through the world's colliders.
// The object's position is the center of the box. Movement is velocity based:
// set a velocity, then call MoveAndSlide once per tick.
type CharacterBody struct {
	engine.BaseComponent

	Height     float32 // Total height of the box
	Radius     float32 // Half-width of the box on X and Z
	StepHeight float32 // Max height of steps to climb while walking

	// Runtime state (not serialized)
	velocity  rl.Vector3
	onFloor   bool
	onCeiling bool
	onWall    bool
	floor     engine.GameObjectRef
}

func NewCharacterBody() *CharacterBody {
	return &CharacterBody{
		Height:     1.8,
		Radius:     0.4,
		StepHeight: 0.4,
	}
}

// TypeName implements engine.Serializable
func (c *CharacterBody) TypeName() string {
	return "CharacterBody"
}

// Serialize implements engine.Serializable
func (c *CharacterBody) Serialize() map[string]any {
	return map[string]any{
		"type":       "CharacterBody",
		"height":     c.Height,
		"radius":     c.Radius,
		"stepHeight": c.StepHeight,
	}
}

// Deserialize implements engine.Serializable
func (c *CharacterBody) Deserialize(data map[string]any) {
	c.Height = readFloat(data, "height", c.Height)
	c.Radius = readFloat(data, "radius", c.Radius)
	c.StepHeight = readFloat(data, "stepHeight", c.StepHeight)
}

func (c *CharacterBody) Velocity() rl.Vector3 {
	return c.velocity
}

func (c *CharacterBody) SetVelocity(v rl.Vector3) {
	c.velocity = v
}

// IsOnFloor reports whether the last MoveAndSlide ended standing on something.
func (c *CharacterBody) IsOnFloor() bool {
	return c.onFloor
}

func (c *CharacterBody) IsOnCeiling() bool {
	return c.onCeiling
}

func (c *CharacterBody) IsOnWall() bool {
	return c.onWall
}

// FloorObject returns what the body stood on after the last move, or nil.
func (c *CharacterBody) FloorObject() *engine.GameObject {
	g := c.GetGameObject()
	if g == nil || g.Scene == nil {
		return nil
	}
	return c.floor.Get(g.Scene)
}

// MoveAndSlide integrates the current velocity over deltaTime, resolving
// overlaps against every solid collider in the world. Velocity components
// blocked by geometry are zeroed. Returns the new world position.
func (c *CharacterBody) MoveAndSlide(deltaTime float32) rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}

	// Ride along with whatever we stood on last tick
	if floor := c.FloorObject(); floor != nil {
		if mp := engine.GetComponent[*MovingPlatform](floor); mp != nil {
			g.Transform.Position = rl.Vector3Add(g.Transform.Position, mp.LastDelta())
		}
	}

	wasOnFloor := c.onFloor
	c.onFloor = false
	c.onCeiling = false
	c.onWall = false
	c.floor.Clear()

	var colliders []*engine.GameObject
	if g.Scene != nil && g.Scene.World != nil {
		colliders = g.Scene.World.GetCollidableObjects()
	}

	motion := rl.Vector3Scale(c.velocity, deltaTime)
	if len(colliders) == 0 {
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
		return g.Transform.Position
	}
	if motion.Y == 0 && wasOnFloor {
		// Press into the floor so standing still keeps contact
		motion.Y = -floorSnap
	}

	if motion.X != 0 || motion.Z != 0 {
		c.moveWithCollision(g, rl.Vector3{X: motion.X, Z: motion.Z}, colliders)
	}
	if motion.Y != 0 {
		c.moveWithCollision(g, rl.Vector3{Y: motion.Y}, colliders)
	}

	return g.Transform.Position
}

func (c *CharacterBody) bounds(pos rl.Vector3) (min, max rl.Vector3) {
	half := rl.Vector3{X: c.Radius, Y: c.Height / 2, Z: c.Radius}
	return rl.Vector3Subtract(pos, half), rl.Vector3Add(pos, half)
}

// moveWithCollision moves along one axis group and pushes out of overlaps
func (c *CharacterBody) moveWithCollision(g *engine.GameObject, motion rl.Vector3, colliders []*engine.GameObject) {
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
	charMin, charMax := c.bounds(g.Transform.Position)

	for _, other := range colliders {
		if other == g || !other.Active {
			continue
		}

		staticMin, staticMax, ok := solidBounds(other)
		if !ok || !aabbOverlap(charMin, charMax, staticMin, staticMax) {
			continue
		}

		pushOut := calculatePushOut(charMin, charMax, staticMin, staticMax)

		// Walk up low steps instead of stopping against them
		isHorizontalCollision := (pushOut.X != 0 || pushOut.Z != 0) && pushOut.Y == 0
		if isHorizontalCollision && motion.Y == 0 {
			stepHeight := staticMax.Y - charMin.Y
			if stepHeight > 0 && stepHeight <= c.StepHeight {
				stepped := g.Transform.Position
				stepped.Y += stepHeight + 0.01
				testMin, testMax := c.bounds(stepped)
				if !aabbOverlap(testMin, testMax, staticMin, staticMax) {
					g.Transform.Position = stepped
					charMin, charMax = c.bounds(stepped)
					c.onFloor = true
					c.floor.Set(other)
					continue
				}
			}
		}

		g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)
		charMin, charMax = c.bounds(g.Transform.Position)

		switch {
		case pushOut.Y > 0:
			c.onFloor = true
			c.floor.Set(other)
			if c.velocity.Y < 0 {
				c.velocity.Y = 0
			}
		case pushOut.Y < 0:
			c.onCeiling = true
			if c.velocity.Y > 0 {
				c.velocity.Y = 0
			}
		case pushOut.X != 0:
			c.onWall = true
			c.velocity.X = 0
		case pushOut.Z != 0:
			c.onWall = true
			c.velocity.Z = 0
		}
	}
}

// solidBounds returns the blocking box of another object, if it has one.
// Trigger volumes never block.
func solidBounds(g *engine.GameObject) (min, max rl.Vector3, ok bool) {
	if box := engine.GetComponent[*BoxCollider](g); box != nil {
		if box.IsTrigger {
			return min, max, false
		}
		min, max = box.Bounds()
		return min, max, true
	}
	if sphere := engine.GetComponent[*SphereCollider](g); sphere != nil {
		center := sphere.GetCenter()
		r := rl.Vector3{X: sphere.Radius, Y: sphere.Radius, Z: sphere.Radius}
		return rl.Vector3Subtract(center, r), rl.Vector3Add(center, r), true
	}
	return min, max, false
}

// aabbOverlap is strict so boxes resting face to face do not count
func aabbOverlap(aMin, aMax, bMin, bMax rl.Vector3) bool {
	return aMin.X < bMax.X && aMax.X > bMin.X &&
		aMin.Y < bMax.Y && aMax.Y > bMin.Y &&
		aMin.Z < bMax.Z && aMax.Z > bMin.Z
}

// calculatePushOut returns the minimum push-out vector moving a out of b
func calculatePushOut(aMin, aMax, bMin, bMax rl.Vector3) rl.Vector3 {
	pick := func(neg, pos float32) float32 {
		if neg < pos {
			return -neg
		}
		return pos
	}
	pushX := pick(aMax.X-bMin.X, bMax.X-aMin.X)
	pushY := pick(aMax.Y-bMin.Y, bMax.Y-aMin.Y)
	pushZ := pick(aMax.Z-bMin.Z, bMax.Z-aMin.Z)

	absX, absY, absZ := absf(pushX), absf(pushY), absf(pushZ)
	switch {
	case absY <= absX && absY <= absZ:
		return rl.Vector3{Y: pushY}
	case absX <= absZ:
		return rl.Vector3{X: pushX}
	default:
		return rl.Vector3{Z: pushZ}
	}
}
