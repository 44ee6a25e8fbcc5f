package game

import (
	"fmt"

	"grapple3d/internal/checkpoint"
	"grapple3d/internal/components"
	"grapple3d/internal/config"
	"grapple3d/internal/engine"
	"grapple3d/internal/grapple"
	"grapple3d/internal/hud"
	"grapple3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ropeDrop lowers the rope start below the eye so the rope stays visible.
const ropeDrop = 0.3

// Input is everything the player did this tick.
type Input struct {
	Move   components.MoveInput
	Fire   bool // fire or cancel the grapple
	Cancel bool // cancel only
}

// Session is one play-through: the level, the player and the grapple. It does
// not touch the window, so the game loop can be driven from tests.
type Session struct {
	cfg    config.Config
	logger *zap.Logger

	Signals     *Signals
	World       *world.World
	Checkpoints *checkpoint.Store
	Grapple     *grapple.Controller
	Feed        *hud.Feed
	Player      *engine.GameObject

	controller    *components.PlayerController
	body          *components.CharacterBody
	lookingAtHook bool
	debug         bool
}

// NewSession builds the level from cfg.Scene, or the default level if it is
// empty, and places the player at checkpoint 0.
func NewSession(cfg config.Config, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		cfg:     cfg,
		logger:  logger.Named("session"),
		debug:   cfg.Grapple.Debug,
		Signals: &Signals{},
		Feed: hud.NewFeed(hud.Settings{
			MessageSeconds: cfg.HUD.MessageSeconds,
			FadeSeconds:    cfg.HUD.FadeSeconds,
			FontSize:       cfg.HUD.FontSize,
		}),
	}

	positions := lo.Map(cfg.Checkpoints, func(v config.Vec3, _ int) rl.Vector3 { return v.Vector() })
	s.Checkpoints = checkpoint.NewStore(positions, logger)
	s.World = world.New(s.Checkpoints, &s.Signals.CheckpointReached, logger)

	if cfg.Scene != "" {
		if err := s.World.LoadScene(cfg.Scene); err != nil {
			return nil, fmt.Errorf("load level: %w", err)
		}
	} else if err := s.World.BuildDefault(); err != nil {
		return nil, fmt.Errorf("build default level: %w", err)
	}

	s.Checkpoints.Reset()
	s.Player = NewPlayer(cfg.Player, s.Checkpoints.Position())
	s.controller = engine.GetComponent[*components.PlayerController](s.Player)
	s.body = engine.GetComponent[*components.CharacterBody](s.Player)
	s.World.SpawnObject(s.Player)

	s.Grapple = grapple.NewController(cfg.Grapple, s.World, s.World, s.World, logger)
	s.wire()

	s.World.Start()
	return s, nil
}

func (s *Session) wire() {
	s.Signals.ScreenMessage.AddListener(s.Feed.Push)
	s.Signals.CheckpointReached.AddListener(func(n int) {
		s.Signals.ScreenMessage.Invoke(fmt.Sprintf("Checkpoint %d reached", n))
	})
	s.Grapple.Detached.AddListener(func(reason grapple.Outcome) {
		if msg := detachMessage(reason); msg != "" {
			s.Signals.ScreenMessage.Invoke(msg)
		}
	})
	s.Grapple.AttachedTo.AddListener(func(hit engine.RaycastResult) {
		if s.debug {
			s.World.SpawnHitMarker(hit.Point, s.cfg.Grapple.HitMarkerSeconds)
		}
	})
}

// SetDebug switches hit markers and grapple diagnostics for this session.
func (s *Session) SetDebug(on bool) {
	s.debug = on
	s.Grapple.SetDebug(on)
}

func (s *Session) Debug() bool {
	return s.debug
}

func detachMessage(reason grapple.Outcome) string {
	switch reason {
	case grapple.Arrived:
		return "Grapple released"
	case grapple.Overshot:
		return "Grapple overshot the anchor"
	case grapple.AnchorLost:
		return "Grapple anchor lost"
	}
	return ""
}

// Controller returns the player's controller.
func (s *Session) Controller() *components.PlayerController {
	return s.controller
}

// LookingAtHook reports whether the last tick's aim was on a hookable target.
func (s *Session) LookingAtHook() bool {
	return s.lookingAtHook
}

// Tick runs one frame: input, grapple pull or walking, fall check, world and
// physics, then the rope.
func (s *Session) Tick(in Input, deltaTime float32) {
	s.controller.Look(in.Move.Look)

	if in.Fire {
		outcome, hit := s.Grapple.TryFireOrCancel(s.eyePose(), s.cfg.Grapple.MaxDistance)
		if outcome == grapple.NoTarget && hit.GameObject != nil {
			s.logger.Debug("not hookable", zap.String("object", hit.GameObject.Name))
		}
	}
	if in.Cancel {
		s.Grapple.Cancel()
	}

	if s.Grapple.IsAttached() {
		s.Grapple.TickMotion(s.body, s.Player.Transform.Position, deltaTime)
	} else {
		s.controller.Walk(in.Move, deltaTime)
	}

	if s.controller.CheckFall(s.Checkpoints.Position()) {
		s.Grapple.Cancel()
		s.Signals.ScreenMessage.Invoke(fmt.Sprintf("Respawned at checkpoint %d", s.Checkpoints.Current()))
	}

	s.World.Update(deltaTime)
	s.Grapple.UpdateRopeVisual(s.ropeOrigin())
	s.lookingAtHook = s.Grapple.IsLookingAtHookable(s.eyePose(), s.cfg.Grapple.MaxDistance)
}

// Camera is the player's view.
func (s *Session) Camera() rl.Camera3D {
	cam := engine.GetComponent[*components.Camera](s.Player)
	if cam == nil {
		return rl.Camera3D{}
	}
	return cam.GetRaylibCamera()
}

// Close releases the rope and every level object.
func (s *Session) Close() {
	s.Grapple.Cancel()
	s.World.Clear()
	s.Feed.Clear()
}

func (s *Session) eyePose() grapple.Pose {
	return grapple.Pose{Origin: s.controller.EyePosition(), Forward: s.controller.Forward()}
}

func (s *Session) ropeOrigin() rl.Vector3 {
	origin := s.controller.EyePosition()
	origin.Y -= ropeDrop
	return origin
}
