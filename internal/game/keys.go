package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/blockfall/internal/engine"
)

// KeyCommand maps a key press to an engine command.
func KeyCommand(ev *tcell.EventKey) (engine.Command, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return engine.CmdMoveLeft, true
	case tcell.KeyRight:
		return engine.CmdMoveRight, true
	case tcell.KeyDown:
		return engine.CmdSoftDrop, true
	case tcell.KeyUp:
		return engine.CmdRotate, true
	case tcell.KeyEscape:
		return engine.CmdTogglePause, true
	case tcell.KeyEnter:
		return engine.CmdRestart, true

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', 'P':
			return engine.CmdTogglePause, true
		case ' ':
			return engine.CmdRotate, true
		}
	}
	return 0, false
}

// IsQuitKey returns true if the key should end the program.
func IsQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
