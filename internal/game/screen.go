package game

// screen is which part of the game is showing.
type screen int

const (
	screenMainMenu screen = iota
	screenPlaying
	screenPaused
)

func (s screen) String() string {
	switch s {
	case screenMainMenu:
		return "main menu"
	case screenPlaying:
		return "playing"
	case screenPaused:
		return "paused"
	}
	return "unknown"
}

// action is a request to change screen, from a key or a menu button.
type action int

const (
	actionStart action = iota
	actionTogglePause
	actionResume
	actionQuitToMenu
)

// next returns the screen after a. Actions that make no sense on the current
// screen leave it unchanged.
func (s screen) next(a action) screen {
	switch s {
	case screenMainMenu:
		if a == actionStart {
			return screenPlaying
		}
	case screenPlaying:
		if a == actionTogglePause {
			return screenPaused
		}
	case screenPaused:
		switch a {
		case actionTogglePause, actionResume:
			return screenPlaying
		case actionQuitToMenu:
			return screenMainMenu
		}
	}
	return s
}
