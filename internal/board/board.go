package board

import (
	"errors"
	"fmt"
)

const (
	// Playfield dimensions
	Cols      = 10
	Rows      = 20 // Visible rows
	SpawnRows = 2  // Buffer rows above the visible field
	Height    = Rows + SpawnRows
)

var (
	// ErrOutOfRange is reported when a cell lies outside the grid.
	ErrOutOfRange = errors.New("cell out of range")
	// ErrCellOccupied is reported when a lock overwrites an existing block.
	ErrCellOccupied = errors.New("cell already occupied")
)

// Grid is a value snapshot of every cell, indexed [col][row].
type Grid [Cols][Height]Color

// Board is the fixed-size field of locked cells.
type Board struct {
	cells Grid
}

// New creates an empty board.
func New() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset empties every cell.
func (b *Board) Reset() {
	for col := range b.cells {
		for row := range b.cells[col] {
			b.cells[col][row] = Empty
		}
	}
}

// InBounds returns true if the coordinate addresses a cell, spawn rows included.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < Cols && row >= 0 && row < Height
}

// Occupied returns true if the cell holds a locked block.
// Coordinates outside the grid count as occupied; callers that treat the floor
// or the sky differently must check InBounds first.
func (b *Board) Occupied(col, row int) bool {
	if !b.InBounds(col, row) {
		return true
	}
	return !b.cells[col][row].IsEmpty()
}

// At returns the color at the given cell and whether the cell is filled.
func (b *Board) At(col, row int) (Color, bool) {
	if !b.InBounds(col, row) {
		return Empty, false
	}
	c := b.cells[col][row]
	return c, !c.IsEmpty()
}

// Lock writes color into each of the given cells.
// Every in-range cell is written even when some cells conflict. Cells outside
// the grid are skipped. Conflicts are returned joined, each wrapping
// ErrOutOfRange or ErrCellOccupied.
func (b *Board) Lock(cells [4]Cell, color Color) error {
	var errs []error
	for _, c := range cells {
		if !b.InBounds(c.Col, c.Row) {
			errs = append(errs, fmt.Errorf("lock (%d,%d): %w", c.Col, c.Row, ErrOutOfRange))
			continue
		}
		if !b.cells[c.Col][c.Row].IsEmpty() {
			errs = append(errs, fmt.Errorf("lock (%d,%d): %w", c.Col, c.Row, ErrCellOccupied))
		}
		b.cells[c.Col][c.Row] = color
	}
	return errors.Join(errs...)
}

// ClearFullRows removes every full visible row and returns how many were removed.
// Rows are scanned bottom to top; after a removal the same row index is scanned
// again because the rows above have shifted into it.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for row := 0; row < Rows; {
		if !b.rowFull(row) {
			row++
			continue
		}
		cleared++
		b.collapse(row)
	}
	return cleared
}

// Snapshot returns a copy of the grid for rendering.
func (b *Board) Snapshot() Grid {
	return b.cells
}

// rowFull returns true if every column of the row is filled.
func (b *Board) rowFull(row int) bool {
	for col := 0; col < Cols; col++ {
		if b.cells[col][row].IsEmpty() {
			return false
		}
	}
	return true
}

// collapse shifts every row above the given one down by one and empties the top row.
func (b *Board) collapse(row int) {
	for col := 0; col < Cols; col++ {
		for r := row; r < Height-1; r++ {
			b.cells[col][r] = b.cells[col][r+1]
		}
		b.cells[col][Height-1] = Empty
	}
}
