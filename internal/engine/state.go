// Package engine provides the game state machine that owns the board, the
// active piece and the piece supply.
package engine

// State represents the current machine state.
type State int

const (
	// StateRunning accepts every movement command and ticks.
	StateRunning State = iota
	// StatePaused ignores everything but TogglePause.
	StatePaused
	// StateGameOver freezes the board and score until Restart.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Command is an input the engine consumes, one per event.
type Command int

const (
	CmdMoveLeft    Command = iota // Shift the active piece one column left
	CmdMoveRight                  // Shift the active piece one column right
	CmdSoftDrop                   // Move the active piece down one row, locking it on contact
	CmdRotate                     // Rotate the active piece a quarter turn
	CmdTogglePause                // Switch between running and paused
	CmdRestart                    // Start a new session after game over
	// CmdTick is the timer-driven fall step. It behaves like CmdSoftDrop.
	CmdTick
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CmdMoveLeft:
		return "move_left"
	case CmdMoveRight:
		return "move_right"
	case CmdSoftDrop:
		return "soft_drop"
	case CmdRotate:
		return "rotate"
	case CmdTogglePause:
		return "toggle_pause"
	case CmdRestart:
		return "restart"
	case CmdTick:
		return "tick"
	default:
		return "unknown"
	}
}

// Result tells the caller what a command changed so it can redraw.
type Result struct {
	Moved       bool  // Active piece moved or rotated
	Locked      bool  // Active piece was committed to the board
	GameOver    bool  // The lock overflowed into the spawn buffer
	RowsCleared int   // Rows removed by the lock
	LockErr     error // Cells the lock skipped or overwrote, see board.Lock
}
