package components

import (
	"math"

	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxPitch = 89 * rl.Deg2rad

// MoveInput is one tick of player intent, already read from the keyboard and
// mouse by the game loop.
type MoveInput struct {
	Forward float32 // +1 forward, -1 back
	Right   float32 // +1 right, -1 left
	Jump    bool
	Sprint  bool
	Look    rl.Vector2 // mouse delta in pixels
}

// PlayerController turns MoveInput into CharacterBody velocity. It is driven
// by the game loop rather than by Update so that the grapple can take over
// movement while attached.
type PlayerController struct {
	engine.BaseComponent
	Yaw              float32 // radians, 0 looks down -Z
	Pitch            float32 // radians, clamped to ±89°
	Speed            float32
	SprintMultiplier float32
	JumpVelocity     float32
	Gravity          float32
	MouseSensitivity float32 // radians per pixel
	EyeHeight        float32 // eye offset above the body center
	FallLimit        float32 // below this Y the player respawns

	body *CharacterBody
}

func NewPlayerController() *PlayerController {
	return &PlayerController{
		Speed:            5,
		SprintMultiplier: 1.5,
		JumpVelocity:     4.5,
		Gravity:          9.8,
		MouseSensitivity: 0.002,
		EyeHeight:        0.6,
		FallLimit:        -5,
	}
}

func (p *PlayerController) Start() {
	p.body = engine.GetComponent[*CharacterBody](p.GetGameObject())
}

// Body returns the CharacterBody on the same object.
func (p *PlayerController) Body() *CharacterBody {
	if p.body == nil && p.GetGameObject() != nil {
		p.body = engine.GetComponent[*CharacterBody](p.GetGameObject())
	}
	return p.body
}

// Look applies a mouse delta to yaw and pitch.
func (p *PlayerController) Look(delta rl.Vector2) {
	p.Yaw -= delta.X * p.MouseSensitivity
	p.Pitch -= delta.Y * p.MouseSensitivity
	p.Pitch = rl.Clamp(p.Pitch, -maxPitch, maxPitch)

	if g := p.GetGameObject(); g != nil {
		g.Transform.Rotation.Y = p.Yaw * rl.Rad2deg
	}
}

// Walk applies walking, jumping and gravity for one tick and moves the body.
func (p *PlayerController) Walk(in MoveInput, deltaTime float32) {
	body := p.Body()
	if body == nil {
		return
	}
	vel := body.Velocity()

	if !body.IsOnFloor() {
		vel.Y -= p.Gravity * deltaTime
	}
	if in.Jump && body.IsOnFloor() {
		vel.Y = p.JumpVelocity
	}

	forward, right := p.flatAxes()
	dir := rl.Vector3Add(rl.Vector3Scale(forward, in.Forward), rl.Vector3Scale(right, in.Right))

	speed := p.Speed
	if in.Sprint {
		speed *= p.SprintMultiplier
	}

	if rl.Vector3LengthSqr(dir) > 0 {
		dir = rl.Vector3Normalize(dir)
		vel.X = dir.X * speed
		vel.Z = dir.Z * speed
	} else {
		vel.X = moveToward(vel.X, 0, p.Speed)
		vel.Z = moveToward(vel.Z, 0, p.Speed)
	}

	body.SetVelocity(vel)
	body.MoveAndSlide(deltaTime)
}

// CheckFall respawns the player at respawn when it has dropped below
// FallLimit. Returns true if it did.
func (p *PlayerController) CheckFall(respawn rl.Vector3) bool {
	g := p.GetGameObject()
	if g == nil || g.Transform.Position.Y >= p.FallLimit {
		return false
	}
	p.Teleport(respawn)
	return true
}

// Teleport moves the player and stops all motion.
func (p *PlayerController) Teleport(pos rl.Vector3) {
	if g := p.GetGameObject(); g != nil {
		g.Transform.Position = pos
	}
	if body := p.Body(); body != nil {
		body.SetVelocity(rl.Vector3{})
	}
}

// EyePosition is where the camera and grapple rays start.
func (p *PlayerController) EyePosition() rl.Vector3 {
	g := p.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	eye := g.WorldPosition()
	eye.Y += p.EyeHeight
	return eye
}

// Forward is the unit look direction.
func (p *PlayerController) Forward() rl.Vector3 {
	cp := float32(math.Cos(float64(p.Pitch)))
	return rl.Vector3{
		X: -float32(math.Sin(float64(p.Yaw))) * cp,
		Y: float32(math.Sin(float64(p.Pitch))),
		Z: -float32(math.Cos(float64(p.Yaw))) * cp,
	}
}

// GetLookDirection implements engine.LookProvider
func (p *PlayerController) GetLookDirection() (x, y, z float32) {
	f := p.Forward()
	return f.X, f.Y, f.Z
}

// GetEyeHeight implements engine.LookProvider
func (p *PlayerController) GetEyeHeight() float32 {
	return p.EyeHeight
}

// flatAxes returns the horizontal forward and right vectors for the current yaw
func (p *PlayerController) flatAxes() (forward, right rl.Vector3) {
	s := float32(math.Sin(float64(p.Yaw)))
	c := float32(math.Cos(float64(p.Yaw)))
	return rl.Vector3{X: -s, Z: -c}, rl.Vector3{X: c, Z: -s}
}

func moveToward(from, to, delta float32) float32 {
	if absf(to-from) <= delta {
		return to
	}
	if to > from {
		return from + delta
	}
	return from - delta
}
