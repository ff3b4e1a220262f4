package tetris

import "fmt"

// Piece is a tetromino placed on the board: a kind in some rotation with its
// pivot at a cell.
type Piece struct {
	Kind     Kind
	Rotation Rotation
	Pivot    Cell
}

// Cells returns the absolute footprint of the piece.
func (p Piece) Cells() Shape {
	return OffsetsFor(p.Kind, p.Rotation).Translate(p.Pivot)
}

// Translated returns the piece moved by d.
func (p Piece) Translated(d Cell) Piece {
	p.Pivot = p.Pivot.Add(d)
	return p
}

func (p Piece) String() string {
	return fmt.Sprintf("%v@%v rot %v", p.Kind, p.Pivot, p.Rotation)
}

func fits(p Piece, grid *Grid) bool {
	cells := p.Cells()
	return grid.CellsAreFree(cells[:])
}
