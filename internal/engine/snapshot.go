package engine

import (
	"github.com/samdwyer/blockfall/internal/board"
	"github.com/samdwyer/blockfall/internal/piece"
)

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	SessionID string
	State     State
	Score     int
	Lines     int
	Pieces    int
	Grid      board.Grid

	// Active piece; ActiveVisible is false after game over.
	Active        [4]board.Cell
	ActiveColor   board.Color
	ActiveVisible bool

	Next    piece.Shape
	HasNext bool
}

// State returns the current machine state.
func (e *Engine) State() State {
	return e.s.state
}

// Score returns the session score, one point per cleared row.
func (e *Engine) Score() int {
	return e.s.score
}

// Lines returns the number of rows cleared this session.
func (e *Engine) Lines() int {
	return e.s.lines
}

// Pieces returns the number of pieces locked this session.
func (e *Engine) Pieces() int {
	return e.s.pieces
}

// SessionID returns the identifier of the current session.
func (e *Engine) SessionID() string {
	return e.s.id
}

// Next returns the preview shape.
func (e *Engine) Next() (piece.Shape, bool) {
	return e.s.supply.Peek()
}

// Board returns a copy of the locked cells.
func (e *Engine) Board() board.Grid {
	return e.s.board.Snapshot()
}

// Active returns the cells and color of the falling piece. The piece stays
// visible while paused and is hidden once the game is over.
func (e *Engine) Active() (cells [4]board.Cell, color board.Color, ok bool) {
	if e.s.state == StateGameOver {
		return cells, board.Empty, false
	}
	return e.s.piece.Cells(), e.s.piece.Color(), true
}

// Snapshot collects every query into one value.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID: e.s.id,
		State:     e.s.state,
		Score:     e.s.score,
		Lines:     e.s.lines,
		Pieces:    e.s.pieces,
		Grid:      e.s.board.Snapshot(),
	}
	snap.Active, snap.ActiveColor, snap.ActiveVisible = e.Active()
	snap.Next, snap.HasNext = e.Next()
	return snap
}
