package components

import (
	"grapple3d/internal/engine"
)

func init() {
	engine.RegisterComponent("Checkpoint", func() engine.Serializable {
		return NewCheckpoint(0)
	})
}

// PlayerTag marks the object that trigger volumes react to.
const PlayerTag = "Player"

// CheckpointSetter records the player's current respawn checkpoint.
type CheckpointSetter interface {
	Set(number int) error
}

// Checkpoint sits on a trigger volume. When the player walks in it updates
// the checkpoint store and fires Reached.
type Checkpoint struct {
	engine.BaseComponent
	Number int

	// Wired by the world after the scene is built
	Store   CheckpointSetter
	Reached *engine.EventWithArg[int]
}

func NewCheckpoint(number int) *Checkpoint {
	return &Checkpoint{Number: number}
}

// TypeName implements engine.Serializable
func (c *Checkpoint) TypeName() string {
	return "Checkpoint"
}

// Serialize implements engine.Serializable
func (c *Checkpoint) Serialize() map[string]any {
	return map[string]any{
		"type":   "Checkpoint",
		"number": c.Number,
	}
}

// Deserialize implements engine.Serializable
func (c *Checkpoint) Deserialize(data map[string]any) {
	if v, ok := data["number"].(float64); ok {
		c.Number = int(v)
	}
}

// OnTriggerEnter implements engine.TriggerHandler
func (c *Checkpoint) OnTriggerEnter(other *engine.GameObject) {
	if !other.HasTag(PlayerTag) {
		return
	}
	if c.Store != nil {
		if err := c.Store.Set(c.Number); err != nil {
			return
		}
	}
	if c.Reached != nil {
		c.Reached.Invoke(c.Number)
	}
}

// OnTriggerExit implements engine.TriggerHandler
func (c *Checkpoint) OnTriggerExit(other *engine.GameObject) {}
