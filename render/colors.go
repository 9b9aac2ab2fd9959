package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the slope and status bar
var (
	RgbSnow       = tcell.NewRGBColor(236, 240, 245) // Off-white snow background
	RgbStatusBar  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbScore      = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbLives      = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbLevel      = tcell.NewRGBColor(100, 150, 255) // Normal Blue

	RgbStatePlaying  = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbStatePaused   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStateGameOver = tcell.NewRGBColor(180, 50, 50)   // Dark Red
	RgbStateUnknown  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// stateColor maps a game state label to its status bar background
func stateColor(state string) tcell.Color {
	switch state {
	case "playing":
		return RgbStatePlaying
	case "paused":
		return RgbStatePaused
	case "game over":
		return RgbStateGameOver
	default:
		return RgbStateUnknown
	}
}
