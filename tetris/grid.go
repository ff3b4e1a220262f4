package tetris

import (
	"strings"

	"github.com/kamstrup/intmap"
)

// Grid is the fixed-size occupancy board. Only locked blocks live here; the
// active piece is tracked separately by the Machine.
type Grid struct {
	width     int
	height    int
	cells     *intmap.Map[int, Color]
	rowCounts []int
}

// NewGrid creates an empty grid. Dimensions are fixed for the grid's lifetime.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("grid dimensions must be positive")
	}
	return &Grid{
		width:     width,
		height:    height,
		cells:     intmap.New[int, Color](width * height),
		rowCounts: make([]int, height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	return g.cells.Len()
}

// InBounds reports whether cell lies inside the grid.
func (g *Grid) InBounds(cell Cell) bool {
	return cell.X >= 0 && cell.Y >= 0 && cell.X < g.width && cell.Y < g.height
}

func (g *Grid) index(cell Cell) int {
	return cell.Y*g.width + cell.X
}

func (g *Grid) occupied(cell Cell) bool {
	_, ok := g.cells.Get(g.index(cell))
	return ok
}

// IsOccupied reports whether cell holds a locked block.
func (g *Grid) IsOccupied(cell Cell) (bool, error) {
	if !g.InBounds(cell) {
		return false, &CellError{Cell: cell, Err: ErrOutOfBounds}
	}
	return g.occupied(cell), nil
}

// ColorAt returns the color tag of an occupied cell.
func (g *Grid) ColorAt(cell Cell) (Color, bool) {
	if !g.InBounds(cell) {
		return ColorNone, false
	}
	return g.cells.Get(g.index(cell))
}

// CellsAreFree reports whether every cell is in bounds and empty.
func (g *Grid) CellsAreFree(cells []Cell) bool {
	for _, c := range cells {
		if !g.InBounds(c) || g.occupied(c) {
			return false
		}
	}
	return true
}

// Occupy marks cells as locked with the given color. Every cell is validated
// before any is written, so a failed call leaves the grid unchanged.
func (g *Grid) Occupy(cells []Cell, color Color) error {
	for i, c := range cells {
		if !g.InBounds(c) {
			return &CellError{Cell: c, Err: ErrOutOfBounds}
		}
		if g.occupied(c) {
			return &CellError{Cell: c, Err: ErrAlreadyOccupied}
		}
		for _, prev := range cells[:i] {
			if prev == c {
				return &CellError{Cell: c, Err: ErrAlreadyOccupied}
			}
		}
	}

	for _, c := range cells {
		g.cells.Put(g.index(c), color)
		g.rowCounts[c.Y]++
	}
	return nil
}

// IsRowFull reports whether every cell of row is occupied. Rows outside the
// grid are never full.
func (g *Grid) IsRowFull(row int) bool {
	if row < 0 || row >= g.height {
		return false
	}
	return g.rowCounts[row] == g.width
}

// FullRows returns the indices of all full rows, bottom first.
func (g *Grid) FullRows() []int {
	var rows []int
	for y := 0; y < g.height; y++ {
		if g.rowCounts[y] == g.width {
			rows = append(rows, y)
		}
	}
	return rows
}

// RemoveRow deletes row and moves every row above it down by one. The top
// row becomes empty.
func (g *Grid) RemoveRow(row int) error {
	if row < 0 || row >= g.height {
		return &CellError{Cell: Cell{X: 0, Y: row}, Err: ErrOutOfBounds}
	}

	for x := 0; x < g.width; x++ {
		g.cells.Del(g.index(Cell{X: x, Y: row}))
	}

	for y := row; y < g.height-1; y++ {
		for x := 0; x < g.width; x++ {
			from := g.index(Cell{X: x, Y: y + 1})
			to := g.index(Cell{X: x, Y: y})
			if color, ok := g.cells.Get(from); ok {
				g.cells.Put(to, color)
				g.cells.Del(from)
			}
		}
		g.rowCounts[y] = g.rowCounts[y+1]
	}
	g.rowCounts[g.height-1] = 0
	return nil
}

// ClearFullRows removes every full row, top to bottom so that indices below
// stay valid, and returns how many were removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for y := g.height - 1; y >= 0; y-- {
		if g.rowCounts[y] == g.width {
			_ = g.RemoveRow(y)
			cleared++
		}
	}
	return cleared
}

// Clear empties the grid.
func (g *Grid) Clear() {
	g.cells.Clear()
	for i := range g.rowCounts {
		g.rowCounts[i] = 0
	}
}

// Cells returns an iterator over occupied cells, row by row from the floor.
func (g *Grid) Cells() func(yield func(Cell, Color) bool) {
	return func(yield func(Cell, Color) bool) {
		for y := 0; y < g.height; y++ {
			if g.rowCounts[y] == 0 {
				continue
			}
			for x := 0; x < g.width; x++ {
				cell := Cell{X: x, Y: y}
				if color, ok := g.cells.Get(g.index(cell)); ok {
					if !yield(cell, color) {
						return
					}
				}
			}
		}
	}
}

// String renders the grid top row first, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	spacer := strings.Repeat("-", g.width*2) + "\n"
	b.WriteString(spacer)
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			if g.occupied(Cell{X: x, Y: y}) {
				b.WriteString("##")
			} else {
				b.WriteString("..")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(spacer)
	return b.String()
}
