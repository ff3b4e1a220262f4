package tetris

import "fmt"

// Cell is a (column, row) coordinate on the grid. Row 0 is the floor and rows
// grow upward, so moving a piece down decrements Y.
type Cell struct {
	X, Y int
}

// Add returns c translated by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

var (
	down = Cell{X: 0, Y: -1}
	zero = Cell{}
)

// Shape is the footprint of a tetromino: exactly four cells.
type Shape [4]Cell

// Translate returns every cell of s moved by d.
func (s Shape) Translate(d Cell) Shape {
	var out Shape
	for i, c := range s {
		out[i] = c.Add(d)
	}
	return out
}

// Contains reports whether cell is part of s.
func (s Shape) Contains(cell Cell) bool {
	for _, c := range s {
		if c == cell {
			return true
		}
	}
	return false
}
