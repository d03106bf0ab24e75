// Package piece provides the falling piece: shape templates, movement, rotation and locking.
package piece

import (
	"errors"
	"fmt"

	"github.com/samdwyer/blockfall/internal/board"
)

// Shape identifies one of the seven piece variants. The value doubles as the
// piece color.
type Shape int

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// Count is the number of distinct shapes.
const Count = 7

// ErrUnknownShape is used when a shape ID outside [0, Count) reaches the engine.
var ErrUnknownShape = errors.New("unknown shape")

// Offset is a cell position relative to the piece anchor.
type Offset struct {
	DX, DY int
}

// templates holds the spawn orientation of every shape.
var templates = [Count][4]Offset{
	ShapeI: {{-2, 0}, {-1, 0}, {0, 0}, {1, 0}},
	ShapeJ: {{-1, 0}, {-1, 1}, {0, 0}, {1, 0}},
	ShapeL: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
	ShapeO: {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	ShapeS: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
	ShapeT: {{-1, 0}, {0, 0}, {0, 1}, {1, 0}},
	ShapeZ: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
}

// Valid returns true if the shape is one of the seven variants.
func (s Shape) Valid() bool {
	return s >= 0 && s < Count
}

// String returns the shape letter.
func (s Shape) String() string {
	if !s.Valid() {
		return "?"
	}
	return string("IJLOSTZ"[s])
}

// Color returns the board color a locked piece of this shape leaves behind.
func (s Shape) Color() board.Color {
	return board.Color(s)
}

// Template returns a copy of the spawn offsets for the shape.
// It panics on an unknown shape.
func Template(s Shape) [4]Offset {
	if !s.Valid() {
		panic(fmt.Errorf("template %d: %w", s, ErrUnknownShape))
	}
	return templates[s]
}

// rotationOffset is the per-shape correction applied by Rotate so the I and O
// pieces turn in place.
func rotationOffset(s Shape) int {
	switch s {
	case ShapeI:
		return -1
	case ShapeO:
		return 1
	default:
		return 0
	}
}
