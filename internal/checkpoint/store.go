// Package checkpoint tracks the player's respawn point.
package checkpoint

import (
	"errors"
	"fmt"

	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

var ErrUnknownCheckpoint = errors.New("unknown checkpoint")

// Store holds the respawn position of every checkpoint, indexed by number,
// and which one the player reached last. Checkpoint 0 is the start.
type Store struct {
	positions []rl.Vector3
	current   int
	logger    *zap.Logger

	// Changed fires with the new number when the current checkpoint changes.
	Changed engine.EventWithArg[int]
}

func NewStore(positions []rl.Vector3, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		positions: append([]rl.Vector3(nil), positions...),
		logger:    logger.Named("checkpoint"),
	}
}

// Set makes n the current checkpoint. Setting the current one again is not
// an error and does not fire Changed.
func (s *Store) Set(n int) error {
	if n < 0 || n >= len(s.positions) {
		s.logger.Warn("unknown checkpoint", zap.Int("number", n), zap.Int("count", len(s.positions)))
		return fmt.Errorf("%w: %d", ErrUnknownCheckpoint, n)
	}
	if n == s.current {
		return nil
	}
	s.current = n
	s.logger.Info("checkpoint set", zap.Int("number", n))
	s.Changed.Invoke(n)
	return nil
}

func (s *Store) Current() int {
	return s.current
}

// Position is the respawn point of the current checkpoint.
func (s *Store) Position() rl.Vector3 {
	if len(s.positions) == 0 {
		return rl.Vector3{}
	}
	return s.positions[s.current]
}

// Reset returns to checkpoint 0 without firing Changed.
func (s *Store) Reset() {
	s.current = 0
}

func (s *Store) Len() int {
	return len(s.positions)
}
