// Package game is the window, the menus and the per-frame loop around a
// play Session.
package game

import (
	"fmt"

	"grapple3d/internal/config"
	"grapple3d/internal/hud"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

var skyColor = rl.NewColor(135, 170, 210, 255)

type Game struct {
	cfg       config.Config
	logger    *zap.Logger
	screen    screen
	session   *Session
	crosshair *hud.Crosshair
	DebugMode bool
	quit      bool
	err       error
}

func New(cfg config.Config, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		cfg:       cfg,
		logger:    logger.Named("game"),
		screen:    screenMainMenu,
		crosshair: hud.NewCrosshair(),
		DebugMode: cfg.Grapple.Debug,
	}
}

// Run opens the window and blocks until the player quits.
func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.cfg.Window.Width, g.cfg.Window.Height, g.cfg.Window.Title)
	defer rl.CloseWindow()

	// Esc pauses instead of closing the window
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(g.cfg.Window.TargetFPS)
	initMenuStyle()

	g.logger.Info("window open",
		zap.Int32("width", g.cfg.Window.Width),
		zap.Int32("height", g.cfg.Window.Height))

	for !rl.WindowShouldClose() && !g.quit {
		g.Update()
		g.Draw()
	}
	g.endSession()
	return g.err
}

// Update handles input for the current screen and advances the session.
func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyEscape) {
		g.apply(actionTogglePause)
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
		if g.session != nil {
			g.session.SetDebug(g.DebugMode)
		}
	}

	if g.session != nil {
		// Messages keep fading while paused
		g.session.Feed.Update(deltaTime)
	}
	if g.screen == screenPlaying {
		g.session.Tick(readInput(), deltaTime)
	}
}

func readInput() Input {
	var in Input
	if rl.IsKeyDown(rl.KeyW) {
		in.Move.Forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Move.Forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Move.Right++
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Move.Right--
	}
	in.Move.Jump = rl.IsKeyPressed(rl.KeySpace)
	in.Move.Sprint = rl.IsKeyDown(rl.KeyLeftShift)
	in.Move.Look = rl.GetMouseDelta()
	in.Fire = rl.IsMouseButtonPressed(rl.MouseLeftButton)
	in.Cancel = rl.IsKeyPressed(rl.KeyE)
	return in
}

// apply moves to the next screen and performs the side effects of leaving
// and entering it.
func (g *Game) apply(a action) {
	next := g.screen.next(a)
	if next == g.screen {
		return
	}

	switch {
	case g.screen == screenMainMenu && next == screenPlaying:
		if err := g.startSession(); err != nil {
			g.err = fmt.Errorf("start game: %w", err)
			g.quit = true
			return
		}
	case next == screenMainMenu:
		g.endSession()
	}

	g.logger.Debug("screen change", zap.Stringer("from", g.screen), zap.Stringer("to", next))
	g.screen = next
	if next == screenPlaying {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
}

func (g *Game) startSession() error {
	s, err := NewSession(g.cfg, g.logger)
	if err != nil {
		return err
	}
	s.SetDebug(g.DebugMode)
	g.session = s
	return nil
}

func (g *Game) endSession() {
	if g.session == nil {
		return
	}
	g.session.Close()
	g.session = nil
}

func (g *Game) Draw() {
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())

	rl.BeginDrawing()
	defer rl.EndDrawing()

	if g.screen == screenMainMenu {
		switch drawMainMenu(g.cfg.Window.Title, w, h) {
		case choiceStart:
			g.apply(actionStart)
		case choiceQuit:
			g.quit = true
		}
		return
	}

	rl.ClearBackground(skyColor)
	camera := g.session.Camera()
	rl.BeginMode3D(camera)
	g.session.World.Draw(camera, float32(w)/float32(h))
	rl.EndMode3D()

	g.drawHUD(w, h)

	if g.screen == screenPaused {
		switch drawPauseMenu(w, h) {
		case choiceResume:
			g.apply(actionResume)
		case choiceMainMenu:
			g.apply(actionQuitToMenu)
		}
	}
}

func (g *Game) drawHUD(w, h int32) {
	s := g.session
	g.crosshair.Draw(w, h, s.LookingAtHook())
	s.Feed.Draw(w)

	rl.DrawText("WASD move, Space jump, LMB grapple, E release, Esc pause", 10, 10, 20, rl.DarkGray)
	rl.DrawText(fmt.Sprintf("Checkpoint %d", s.Checkpoints.Current()), 10, 35, 20, rl.DarkGray)

	if g.DebugMode {
		rl.DrawFPS(10, 60)
		pos := s.Player.Transform.Position
		rl.DrawText(fmt.Sprintf("Pos: (%.1f, %.1f, %.1f)", pos.X, pos.Y, pos.Z), 10, 85, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Grapple: %s", s.Grapple.State()), 10, 105, 16, rl.Yellow)
		if body := s.Controller().Body(); body != nil {
			rl.DrawText(fmt.Sprintf("On floor: %t", body.IsOnFloor()), 10, 125, 16, rl.Yellow)
		}
		rl.DrawText(fmt.Sprintf("Objects: %d", len(s.World.Scene.GameObjects)), 10, 145, 16, rl.Green)
	}
}
