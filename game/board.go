package game

import (
	"strings"

	"github.com/plus3/fallingblocks/tetris"
)

// Layer says what occupies a board cell in a rendered snapshot.
type Layer uint8

const (
	LayerEmpty Layer = iota
	LayerGhost
	LayerActive
	LayerLocked
)

var layerGlyphs = [...]string{
	LayerEmpty:  "..",
	LayerGhost:  "::",
	LayerActive: "[]",
	LayerLocked: "##",
}

// BoardCell is one cell of a snapshot. Kind is meaningful for every layer
// except LayerEmpty.
type BoardCell struct {
	Layer Layer
	Kind  tetris.Kind
}

// Board is a read-only picture of the grid with the active piece and its
// ghost drawn in, as renderers consume it.
type Board struct {
	Width  int
	Height int
	cells  []BoardCell
}

// Capture redraws b from m, reusing its storage.
func (b *Board) Capture(m *tetris.Machine) {
	grid := m.Grid()
	b.Width, b.Height = grid.Width(), grid.Height()
	if cap(b.cells) < b.Width*b.Height {
		b.cells = make([]BoardCell, b.Width*b.Height)
	}
	b.cells = b.cells[:b.Width*b.Height]
	clear(b.cells)

	for cell, color := range grid.Cells() {
		kind, _ := color.Kind()
		b.set(cell, BoardCell{Layer: LayerLocked, Kind: kind})
	}

	piece, ok := m.Piece()
	if !ok {
		return
	}
	ghost, _ := m.Ghost()
	for _, c := range ghost {
		b.set(c, BoardCell{Layer: LayerGhost, Kind: piece.Kind})
	}
	for _, c := range piece.Cells() {
		b.set(c, BoardCell{Layer: LayerActive, Kind: piece.Kind})
	}
}

// Snapshot captures m into a new board.
func Snapshot(m *tetris.Machine) *Board {
	b := &Board{}
	b.Capture(m)
	return b
}

func (b *Board) set(c tetris.Cell, v BoardCell) {
	if c.X < 0 || c.Y < 0 || c.X >= b.Width || c.Y >= b.Height {
		return
	}
	b.cells[c.Y*b.Width+c.X] = v
}

// At returns the cell at column x, row y. Row 0 is the floor.
func (b *Board) At(x, y int) BoardCell {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return BoardCell{}
	}
	return b.cells[y*b.Width+x]
}

// Lines renders the board top row first, two characters per cell.
func (b *Board) Lines() []string {
	lines := make([]string, 0, b.Height)
	var sb strings.Builder
	for y := b.Height - 1; y >= 0; y-- {
		sb.Reset()
		for x := 0; x < b.Width; x++ {
			sb.WriteString(layerGlyphs[b.At(x, y).Layer])
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func (b *Board) String() string {
	return strings.Join(b.Lines(), "\n") + "\n"
}
