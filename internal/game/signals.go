package game

import "grapple3d/internal/engine"

// Signals are the game-wide events shared by the world, the grapple and the
// HUD.
type Signals struct {
	// ScreenMessage carries a line of text for the HUD feed.
	ScreenMessage engine.EventWithArg[string]
	// CheckpointReached fires with the checkpoint number each time the
	// player enters a checkpoint volume.
	CheckpointReached engine.EventWithArg[int]
}
