package piece

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/blockfall/internal/board"
)

func TestSpawn(t *testing.T) {
	for s := Shape(0); s < Count; s++ {
		p := Spawn(s)
		assert.Equal(t, board.Cols/2, p.X)
		assert.Equal(t, board.Rows, p.Y)
		assert.Equal(t, board.Color(s), p.Color())
		assert.Equal(t, Template(s), p.Offsets())
	}
}

func TestTemplateUnknownShapePanics(t *testing.T) {
	assert.Panics(t, func() { Template(Count) })
	assert.Panics(t, func() { Spawn(-1) })
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "I", ShapeI.String())
	assert.Equal(t, "O", ShapeO.String())
	assert.Equal(t, "Z", ShapeZ.String())
	assert.Equal(t, "?", Shape(9).String())
}

func TestRotateCyclesInFour(t *testing.T) {
	for s := Shape(0); s < Count; s++ {
		p := Spawn(s)
		for i := 0; i < 4; i++ {
			p.Rotate()
		}
		assert.Equal(t, Template(s), p.Offsets(), "shape %s", s)
	}
}

func TestRotateDoesNotTouchTemplate(t *testing.T) {
	p := Spawn(ShapeT)
	p.Rotate()

	assert.NotEqual(t, Template(ShapeT), p.Offsets())
	assert.Equal(t, [4]Offset{{-1, 0}, {0, 0}, {0, 1}, {1, 0}}, Template(ShapeT))
	assert.Equal(t, Template(ShapeT), Spawn(ShapeT).Offsets())
}

func TestRotateTransform(t *testing.T) {
	tests := []struct {
		shape Shape
		want  [4]Offset
	}{
		{ShapeI, [4]Offset{{0, 1}, {0, 0}, {0, -1}, {0, -2}}},
		{ShapeO, [4]Offset{{0, 1}, {1, 1}, {0, 0}, {1, 0}}},
		{ShapeT, [4]Offset{{0, 1}, {0, 0}, {1, 0}, {0, -1}}},
	}

	for _, tt := range tests {
		p := Spawn(tt.shape)
		p.Rotate()
		assert.Equal(t, tt.want, p.Offsets(), "shape %s", tt.shape)
	}
}

func TestRotateIgnoresCollisions(t *testing.T) {
	b := board.New()
	p := Spawn(ShapeI)
	p.X, p.Y = 0, 5
	p.Rotate()
	p.Rotate()

	// Rotated I now reaches column -2; rotation still succeeded.
	assert.Equal(t, -2, p.Cells()[3].Col)
	assert.Equal(t, Blocked, p.TryMove(0, -1, b))
}

func TestTryMoveFreeSpace(t *testing.T) {
	b := board.New()
	p := Spawn(ShapeT)

	assert.Equal(t, Moved, p.TryMove(1, 0, b))
	assert.Equal(t, SpawnX+1, p.X)
	assert.Equal(t, Moved, p.TryMove(0, -1, b))
	assert.Equal(t, SpawnY-1, p.Y)
	assert.Equal(t, Moved, p.TryMove(0, 0, b))
}

func TestTryMoveWallBlocks(t *testing.T) {
	b := board.New()
	p := Spawn(ShapeI)

	// I spans dx -2..1, so the anchor can go down to column 2.
	for p.TryMove(-1, 0, b) == Moved {
	}
	assert.Equal(t, 2, p.X)
	assert.Equal(t, Blocked, p.TryMove(-1, 0, b))
	assert.Equal(t, 2, p.X)

	for p.TryMove(1, 0, b) == Moved {
	}
	assert.Equal(t, board.Cols-2, p.X)
}

func TestTryMoveFloorLocks(t *testing.T) {
	b := board.New()
	p := Spawn(ShapeO)
	p.Y = 0

	assert.Equal(t, ShouldLock, p.TryMove(0, -1, b))
	assert.Equal(t, 0, p.Y)
}

func TestTryMoveOccupied(t *testing.T) {
	b := board.New()
	require.NoError(t, b.Lock([4]board.Cell{{Col: 4, Row: 4}, {Col: 6, Row: 5}, {Col: 0, Row: 0}, {Col: 0, Row: 1}}, 2))

	p := Spawn(ShapeO)
	p.X, p.Y = 4, 5

	// Falling onto a filled cell locks, sliding into one blocks.
	assert.Equal(t, ShouldLock, p.TryMove(0, -1, b))
	assert.Equal(t, Blocked, p.TryMove(1, 0, b))
	assert.Equal(t, 4, p.X)
	assert.Equal(t, 5, p.Y)
	assert.Equal(t, Moved, p.TryMove(-1, 0, b))
}

func TestTryMoveBadDeltaPanics(t *testing.T) {
	b := board.New()
	p := Spawn(ShapeO)

	for _, d := range [][2]int{{2, 0}, {-2, 0}, {0, 1}, {0, -2}} {
		assert.Panics(t, func() { p.TryMove(d[0], d[1], b) }, "delta %v", d)
	}
}

func TestLockInVisibleField(t *testing.T) {
	b := board.New()
	p := Spawn(ShapeO)
	p.Y = board.Rows - 2

	gameOver, err := p.Lock(b)
	require.NoError(t, err)
	assert.False(t, gameOver)
	for _, c := range p.Cells() {
		color, ok := b.At(c.Col, c.Row)
		assert.True(t, ok)
		assert.Equal(t, board.Color(ShapeO), color)
	}
}

func TestLockInSpawnBufferEndsGame(t *testing.T) {
	b := board.New()
	p := Spawn(ShapeT)

	gameOver, err := p.Lock(b)
	require.NoError(t, err)
	assert.True(t, gameOver)

	// Every cell is written, including the ones after the first overflow.
	for _, c := range p.Cells() {
		assert.True(t, b.Occupied(c.Col, c.Row))
	}
}

func TestLockReportsOverlap(t *testing.T) {
	b := board.New()
	require.NoError(t, b.Lock([4]board.Cell{{Col: 5, Row: 0}, {Col: 9, Row: 9}, {Col: 9, Row: 10}, {Col: 9, Row: 11}}, 0))

	p := Spawn(ShapeO)
	p.Y = 0

	gameOver, err := p.Lock(b)
	assert.False(t, gameOver)
	assert.True(t, errors.Is(err, board.ErrCellOccupied))
	color, _ := b.At(5, 0)
	assert.Equal(t, board.Color(ShapeO), color)
}
