// Package hud draws the in-game overlay: the message feed and the crosshair.
package hud

import (
	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/samber/lo"
)

const (
	margin      = 16
	lineSpacing = 4
)

type Settings struct {
	MessageSeconds float32 // fully visible time
	FadeSeconds    float32 // fade out time after that
	FontSize       int32
	Color          rl.Color
}

type message struct {
	text   string
	hold   *engine.Timer
	fade   *engine.Timer // set once the message starts fading
	fading bool
}

// Line is a message as it should be drawn this frame.
type Line struct {
	Text  string
	Alpha float32
}

// Feed is a stack of right-aligned screen messages. Each message stays for
// MessageSeconds, fades out over FadeSeconds and is then removed. The feed
// runs on its own timers so it keeps going while the game is paused.
type Feed struct {
	settings Settings
	timers   engine.Timers
	messages []*message
}

func NewFeed(settings Settings) *Feed {
	if settings.Color == (rl.Color{}) {
		settings.Color = rl.White
	}
	return &Feed{settings: settings}
}

// Push adds a message below the existing ones.
func (f *Feed) Push(text string) {
	m := &message{text: text}
	m.hold = f.timers.After(f.settings.MessageSeconds, func() {
		if f.settings.FadeSeconds <= 0 {
			f.remove(m)
			return
		}
		m.fading = true
		m.fade = f.timers.After(f.settings.FadeSeconds, func() {
			f.remove(m)
		})
	})
	f.messages = append(f.messages, m)
}

func (f *Feed) remove(m *message) {
	f.messages = lo.Without(f.messages, m)
}

// Update advances message timers.
func (f *Feed) Update(deltaTime float32) {
	f.timers.Update(deltaTime)
}

// Clear drops every message and stops their timers.
func (f *Feed) Clear() {
	f.timers.Clear()
	f.messages = nil
}

// Lines returns the visible messages top to bottom.
func (f *Feed) Lines() []Line {
	return lo.Map(f.messages, func(m *message, _ int) Line {
		return Line{Text: m.text, Alpha: f.alpha(m)}
	})
}

func (f *Feed) alpha(m *message) float32 {
	if !m.fading || m.fade == nil {
		return 1
	}
	return rl.Clamp(m.fade.Remaining/f.settings.FadeSeconds, 0, 1)
}

// Draw renders the feed in the top right corner of a screenWidth wide screen.
func (f *Feed) Draw(screenWidth int32) {
	size := f.settings.FontSize
	for i, line := range f.Lines() {
		width := rl.MeasureText(line.Text, size)
		x := screenWidth - width - margin
		y := int32(margin) + int32(i)*(size+lineSpacing)
		rl.DrawText(line.Text, x, y, size, rl.Fade(f.settings.Color, line.Alpha))
	}
}
