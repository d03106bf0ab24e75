package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/blockfall/internal/piece"
)

// PieceDef describes how a piece shape is displayed.
type PieceDef struct {
	ID    int    `json:"id"`    // Shape ID (0-6), matching piece.Shape
	Name  string `json:"name"`  // Display name (e.g., "T")
	Glyph string `json:"glyph"` // Single character for monochrome terminals
	Color string `json:"color"` // Hex color code (e.g., "#800080")
}

// Shape returns the piece shape this definition belongs to.
func (p *PieceDef) Shape() piece.Shape {
	return piece.Shape(p.ID)
}

// GlyphRune returns the glyph drawn for the piece on monochrome terminals.
func (p *PieceDef) GlyphRune() rune {
	if len(p.Glyph) == 0 {
		return '?'
	}
	return rune(p.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (p *PieceDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(p.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// PiecesFile represents the structure of pieces.json.
type PiecesFile struct {
	Pieces []PieceDef `json:"pieces"`
}

// LoadPieces loads piece definitions from the embedded pieces.json file.
func LoadPieces() ([]PieceDef, error) {
	file, err := Load[PiecesFile]("pieces.json")
	if err != nil {
		return nil, err
	}
	return file.Pieces, nil
}
