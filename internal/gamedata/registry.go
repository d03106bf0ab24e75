package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/blockfall/internal/board"
	"github.com/samdwyer/blockfall/internal/piece"
)

var (
	// ErrMissingPiece is returned when a palette lacks a definition for a shape.
	ErrMissingPiece = errors.New("missing piece definition")
	// ErrDuplicatePiece is returned when a shape is defined twice.
	ErrDuplicatePiece = errors.New("duplicate piece definition")
)

// Palette maps every shape, and so every board color, to its display definition.
type Palette struct {
	defs [piece.Count]PieceDef
}

// NewPalette builds a palette from definitions covering each shape exactly once.
func NewPalette(defs []PieceDef) (*Palette, error) {
	p := &Palette{}
	var seen [piece.Count]bool

	for _, def := range defs {
		if !def.Shape().Valid() {
			return nil, fmt.Errorf("piece %q id %d: %w", def.Name, def.ID, piece.ErrUnknownShape)
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("piece id %d: %w", def.ID, ErrDuplicatePiece)
		}
		seen[def.ID] = true
		p.defs[def.ID] = def
	}

	for id, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("piece id %d: %w", id, ErrMissingPiece)
		}
	}
	return p, nil
}

// LoadPalette loads and creates a palette from the embedded pieces.json.
func LoadPalette() (*Palette, error) {
	defs, err := LoadPieces()
	if err != nil {
		return nil, err
	}
	return NewPalette(defs)
}

// MustLoadPalette loads the palette, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoadPalette() *Palette {
	palette, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return palette
}

// Piece returns the definition for a shape, or nil for an unknown shape.
func (p *Palette) Piece(s piece.Shape) *PieceDef {
	if !s.Valid() {
		return nil
	}
	return &p.defs[s]
}

// ForColor returns the definition for a locked cell color, or nil for empty cells.
func (p *Palette) ForColor(c board.Color) *PieceDef {
	if c.IsEmpty() {
		return nil
	}
	return p.Piece(piece.Shape(c))
}

// All returns a copy of every definition in shape order.
func (p *Palette) All() []PieceDef {
	return append([]PieceDef(nil), p.defs[:]...)
}
