package piece

import (
	"errors"
	"fmt"

	"github.com/samdwyer/blockfall/internal/board"
)

// Outcome is the result of a movement attempt.
type Outcome int

const (
	// Moved - the anchor was shifted by the requested delta
	Moved Outcome = iota
	// Blocked - the move was rejected and the piece is unchanged
	Blocked
	// ShouldLock - the piece cannot fall further and must be locked where it is
	ShouldLock
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case ShouldLock:
		return "should_lock"
	default:
		return "unknown"
	}
}

// ErrBadDelta is used when a move larger than one cell, or upward, is requested.
var ErrBadDelta = errors.New("unsupported move delta")

// Piece is the active falling piece.
type Piece struct {
	X, Y    int       // Anchor position on the board
	Shape   Shape     // Variant, also the color
	offsets [4]Offset // Working copy, mutated by Rotate
}

// SpawnX and SpawnY are the anchor of every newly spawned piece, straddling the
// top of the visible field and the spawn buffer.
const (
	SpawnX = board.Cols / 2
	SpawnY = board.Rows
)

// Spawn creates a piece of the given shape at the spawn anchor.
func Spawn(s Shape) *Piece {
	return &Piece{
		X:       SpawnX,
		Y:       SpawnY,
		Shape:   s,
		offsets: Template(s),
	}
}

// Color returns the color the piece is drawn and locked with.
func (p *Piece) Color() board.Color {
	return p.Shape.Color()
}

// Offsets returns the current offsets relative to the anchor.
func (p *Piece) Offsets() [4]Offset {
	return p.offsets
}

// Cells returns the absolute cells the piece covers.
func (p *Piece) Cells() [4]board.Cell {
	var cells [4]board.Cell
	for i, o := range p.offsets {
		cells[i] = board.Cell{Col: p.X + o.DX, Row: p.Y + o.DY}
	}
	return cells
}

// TryMove attempts to shift the piece by one step.
// Only dx in {-1,0,1} and dy in {-1,0} are supported; anything else panics.
//
// Horizontal out-of-range targets block. A target below row 0 means the piece
// has reached the floor. Targets above the grid never block. An occupied
// target locks the piece when falling and blocks otherwise. The anchor only
// changes when every cell is free.
func (p *Piece) TryMove(dx, dy int, b *board.Board) Outcome {
	if dx < -1 || dx > 1 || dy < -1 || dy > 0 {
		panic(fmt.Errorf("move (%d,%d): %w", dx, dy, ErrBadDelta))
	}

	for _, c := range p.Cells() {
		target := c.Add(dx, dy)

		if target.Col < 0 || target.Col >= board.Cols {
			return Blocked
		}
		if target.Row < 0 {
			return ShouldLock
		}
		if target.Row >= board.Height {
			continue
		}
		if b.Occupied(target.Col, target.Row) {
			if dy != 0 {
				return ShouldLock
			}
			return Blocked
		}
	}

	p.X += dx
	p.Y += dy
	return Moved
}

// Rotate turns the piece a quarter turn by mapping every offset (x,y) to
// (y, -x+k), where k corrects the pivot of the I and O pieces.
// There is no collision check and no wall kick: rotation always succeeds, even
// into locked cells or off the board.
func (p *Piece) Rotate() {
	k := rotationOffset(p.Shape)
	for i, o := range p.offsets {
		p.offsets[i] = Offset{DX: o.DY, DY: -o.DX + k}
	}
}

// Lock writes the piece into the board and reports whether any of its cells
// sits in the spawn buffer, which ends the game. All four cells are written.
// The returned error lists cells that were off the board or already filled.
func (p *Piece) Lock(b *board.Board) (gameOver bool, err error) {
	cells := p.Cells()
	err = b.Lock(cells, p.Color())
	for _, c := range cells {
		if c.Row+1 > board.Rows {
			gameOver = true
		}
	}
	return gameOver, err
}
