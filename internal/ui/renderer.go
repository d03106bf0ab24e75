package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/blockfall/internal/board"
	"github.com/samdwyer/blockfall/internal/engine"
	"github.com/samdwyer/blockfall/internal/gamedata"
	"github.com/samdwyer/blockfall/internal/piece"
)

const (
	// Each board cell is drawn two columns wide so blocks look square.
	cellWidth = 2

	// Field layout: a one-character border around Cols x Height cells.
	fieldLeft   = 0
	fieldTop    = 0
	fieldRight  = fieldLeft + 1 + board.Cols*cellWidth
	fieldBottom = fieldTop + 1 + board.Height

	// Side panel for score, preview and status.
	panelLeft = fieldRight + 3
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	spawnStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette

	// monochrome draws piece glyphs in reverse video instead of colored blocks.
	monochrome bool
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{
		screen:     screen,
		palette:    palette,
		monochrome: screen.Colors() < 8,
	}
}

// Render draws one frame from an engine snapshot.
func (r *Renderer) Render(snap engine.Snapshot) {
	r.screen.Clear()

	r.drawBorder()
	r.drawGrid(snap.Grid)
	if snap.ActiveVisible {
		for _, c := range snap.Active {
			r.drawBlock(c.Col, c.Row, snap.ActiveColor)
		}
	}
	r.drawPanel(snap)

	r.screen.Show()
}

// CellPosition returns the screen position of the left half of a board cell.
func CellPosition(col, row int) (x, y int) {
	return fieldLeft + 1 + col*cellWidth, fieldTop + board.Height - row
}

// drawBorder draws the well outline and marks the spawn buffer edge.
func (r *Renderer) drawBorder() {
	for y := fieldTop; y <= fieldBottom; y++ {
		r.screen.SetContent(fieldLeft, y, '│', borderStyle)
		r.screen.SetContent(fieldRight, y, '│', borderStyle)
	}
	for x := fieldLeft; x <= fieldRight; x++ {
		r.screen.SetContent(x, fieldBottom, '─', borderStyle)
	}
	r.screen.SetContent(fieldLeft, fieldBottom, '└', borderStyle)
	r.screen.SetContent(fieldRight, fieldBottom, '┘', borderStyle)
}

// drawGrid draws locked cells and dots the empty spawn rows.
func (r *Renderer) drawGrid(grid board.Grid) {
	for col := 0; col < board.Cols; col++ {
		for row := 0; row < board.Height; row++ {
			color := grid[col][row]
			if !color.IsEmpty() {
				r.drawBlock(col, row, color)
				continue
			}
			if row >= board.Rows {
				x, y := CellPosition(col, row)
				r.screen.SetContent(x, y, '·', spawnStyle)
			}
		}
	}
}

// drawBlock draws one block; cells above the screen are skipped.
func (r *Renderer) drawBlock(col, row int, color board.Color) {
	if col < 0 || col >= board.Cols || row < 0 || row >= board.Height {
		return
	}
	def := r.palette.ForColor(color)
	if def == nil {
		return
	}
	x, y := CellPosition(col, row)
	r.drawCell(x, y, def)
}

// drawCell fills one two-column block for a piece definition.
func (r *Renderer) drawCell(x, y int, def *gamedata.PieceDef) {
	if r.monochrome {
		style := tcell.StyleDefault.Reverse(true)
		glyph := def.GlyphRune()
		r.screen.SetContent(x, y, glyph, style)
		r.screen.SetContent(x+1, y, glyph, style)
		return
	}
	style := def.BlockStyle()
	r.screen.SetContent(x, y, ' ', style)
	r.screen.SetContent(x+1, y, ' ', style)
}

// drawPanel draws score, the next-piece preview and the state banner.
func (r *Renderer) drawPanel(snap engine.Snapshot) {
	y := fieldTop + 1
	r.RenderMessage("Score: "+strconv.Itoa(snap.Score), panelLeft, y)
	r.RenderMessage("Lines: "+strconv.Itoa(snap.Lines), panelLeft, y+1)

	r.RenderMessage("Next piece:", panelLeft, y+3)
	if snap.HasNext {
		r.drawPreview(snap.Next, panelLeft+4, y+6)
	}

	switch snap.State {
	case engine.StatePaused:
		r.renderAlert("PAUSED", "ESC to resume", y+9)
	case engine.StateGameOver:
		r.renderAlert("Game Over!", "ENTER to restart", y+9)
	}
}

// drawPreview draws a shape template with its anchor at (x, y).
func (r *Renderer) drawPreview(s piece.Shape, x, y int) {
	def := r.palette.Piece(s)
	if def == nil {
		return
	}
	for _, o := range piece.Template(s) {
		r.drawCell(x+o.DX*cellWidth, y-o.DY, def)
	}
}

// renderAlert draws a two-line status banner in the side panel.
func (r *Renderer) renderAlert(title, hint string, y int) {
	r.drawText(title, panelLeft, y, alertStyle)
	r.drawText(hint, panelLeft, y+1, textStyle)
}

// RenderMessage displays a message at the given position.
func (r *Renderer) RenderMessage(msg string, x, y int) {
	r.drawText(msg, x, y, textStyle)
}

// drawText writes msg left to right starting at (x, y).
func (r *Renderer) drawText(msg string, x, y int, style tcell.Style) {
	for i, ch := range []rune(msg) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
