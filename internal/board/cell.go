// Package board provides the playfield grid, row clearing and cell locking.
package board

// Color identifies the piece color stored in a locked cell.
type Color int8

// Empty marks a cell that holds no locked block.
const Empty Color = -1

// IsEmpty returns true if no block has been locked into the cell.
func (c Color) IsEmpty() bool {
	return c == Empty
}

// Cell is an absolute grid coordinate. Row 0 is the bottom of the field.
type Cell struct {
	Col, Row int
}

// Add returns the cell shifted by the given delta.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{Col: c.Col + dx, Row: c.Row + dy}
}
