package game

import (
	"grapple3d/internal/components"
	"grapple3d/internal/config"
	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NewPlayer assembles the player object: body, collider, controller and
// camera. The collider matches the body's extents.
func NewPlayer(cfg config.Player, spawn rl.Vector3) *engine.GameObject {
	player := engine.NewGameObject("Player")
	player.Tags = []string{components.PlayerTag}
	player.Transform.Position = spawn

	size := cfg.Size.Vector()
	body := components.NewCharacterBody()
	body.Height = size.Y
	body.Radius = size.X / 2
	player.AddComponent(body)
	player.AddComponent(components.NewBoxCollider(rl.Vector3{X: 2 * body.Radius, Y: body.Height, Z: 2 * body.Radius}))

	controller := components.NewPlayerController()
	controller.Speed = cfg.Speed
	controller.SprintMultiplier = cfg.SprintMultiplier
	controller.JumpVelocity = cfg.JumpVelocity
	controller.Gravity = cfg.Gravity
	controller.MouseSensitivity = cfg.MouseSensitivity
	controller.EyeHeight = cfg.EyeHeight
	controller.FallLimit = cfg.FallLimit
	player.AddComponent(controller)

	player.AddComponent(components.NewCamera())
	return player
}
