package hud

import rl "github.com/gen2brain/raylib-go/raylib"

// Crosshair is a small cross at the screen center. It turns green when the
// grapple would hook whatever is under it.
type Crosshair struct {
	Size      int32
	Thickness int32
	Normal    rl.Color
	Highlight rl.Color
}

func NewCrosshair() *Crosshair {
	return &Crosshair{
		Size:      8,
		Thickness: 2,
		Normal:    rl.RayWhite,
		Highlight: rl.Lime,
	}
}

func (c *Crosshair) Color(hookable bool) rl.Color {
	if hookable {
		return c.Highlight
	}
	return c.Normal
}

func (c *Crosshair) Draw(screenWidth, screenHeight int32, hookable bool) {
	cx, cy := screenWidth/2, screenHeight/2
	col := c.Color(hookable)
	half := c.Thickness / 2
	rl.DrawRectangle(cx-c.Size, cy-half, 2*c.Size, c.Thickness, col)
	rl.DrawRectangle(cx-half, cy-c.Size, c.Thickness, 2*c.Size, col)
}
