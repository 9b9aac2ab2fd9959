package game

import (
	"github.com/gdamore/tcell/v2"
)

// KeyName converts a terminal key event to the name used in key bindings
// Returns "" for keys that cannot be bound
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyEscape:
		return "Esc"
	case tcell.KeyCtrlC:
		return "Ctrl+C"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyRune:
		return string(ev.Rune())
	default:
		return ""
	}
}
