package game

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	buttonWidth   = 240
	buttonHeight  = 48
	buttonSpacing = 16
	titleSize     = 48
)

var (
	colorBgDark  = rl.NewColor(18, 18, 24, 255)
	colorElement = rl.NewColor(36, 38, 48, 255)
	colorHover   = rl.NewColor(52, 56, 70, 255)
	colorAccent  = rl.NewColor(230, 140, 38, 255)
	colorText    = rl.NewColor(220, 220, 230, 255)
	colorOverlay = rl.NewColor(0, 0, 0, 160)
)

type menuChoice int

const (
	choiceNone menuChoice = iota
	choiceStart
	choiceQuit
	choiceResume
	choiceMainMenu
)

// initMenuStyle sets up the raygui theme used by both menus.
func initMenuStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 20)
}

// buttonColumn returns the bounds of n buttons centered on the screen below
// the title.
func buttonColumn(screenWidth, screenHeight int32, n int) []rl.Rectangle {
	total := float32(n)*buttonHeight + float32(n-1)*buttonSpacing
	x := float32(screenWidth-buttonWidth) / 2
	y := float32(screenHeight)/2 - total/2 + titleSize
	bounds := make([]rl.Rectangle, n)
	for i := range bounds {
		bounds[i] = rl.Rectangle{X: x, Y: y, Width: buttonWidth, Height: buttonHeight}
		y += buttonHeight + buttonSpacing
	}
	return bounds
}

func drawTitle(text string, screenWidth, screenHeight int32) {
	width := rl.MeasureText(text, titleSize)
	rl.DrawText(text, (screenWidth-width)/2, screenHeight/2-3*titleSize, titleSize, colorAccent)
}

// drawMainMenu draws the title screen and returns the button pressed.
func drawMainMenu(title string, screenWidth, screenHeight int32) menuChoice {
	rl.ClearBackground(colorBgDark)
	drawTitle(title, screenWidth, screenHeight)

	b := buttonColumn(screenWidth, screenHeight, 2)
	switch {
	case gui.Button(b[0], "Start"):
		return choiceStart
	case gui.Button(b[1], "Quit"):
		return choiceQuit
	}
	return choiceNone
}

// drawPauseMenu dims the frame behind it and returns the button pressed.
func drawPauseMenu(screenWidth, screenHeight int32) menuChoice {
	rl.DrawRectangle(0, 0, screenWidth, screenHeight, colorOverlay)
	drawTitle("Paused", screenWidth, screenHeight)

	b := buttonColumn(screenWidth, screenHeight, 2)
	switch {
	case gui.Button(b[0], "Resume"):
		return choiceResume
	case gui.Button(b[1], "Quit to menu"):
		return choiceMainMenu
	}
	return choiceNone
}
