package tetris_test

import (
	"errors"
	"testing"

	"github.com/plus3/fallingblocks/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridBounds(t *testing.T) {
	grid := tetris.NewGrid(10, 20)

	tests := []struct {
		cell     tetris.Cell
		inBounds bool
	}{
		{tetris.Cell{X: 0, Y: 0}, true},
		{tetris.Cell{X: 9, Y: 19}, true},
		{tetris.Cell{X: -1, Y: 0}, false},
		{tetris.Cell{X: 0, Y: -1}, false},
		{tetris.Cell{X: 10, Y: 0}, false},
		{tetris.Cell{X: 0, Y: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.cell.String(), func(t *testing.T) {
			assert.Equal(t, tt.inBounds, grid.InBounds(tt.cell))

			occupied, err := grid.IsOccupied(tt.cell)
			assert.False(t, occupied)
			if tt.inBounds {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tetris.ErrOutOfBounds)
			var cellErr *tetris.CellError
			require.True(t, errors.As(err, &cellErr))
			assert.Equal(t, tt.cell, cellErr.Cell)
		})
	}
}

func TestGridNewPanicsOnEmptyDimensions(t *testing.T) {
	assert.Panics(t, func() { tetris.NewGrid(0, 20) })
	assert.Panics(t, func() { tetris.NewGrid(10, -1) })
}

func TestGridOccupy(t *testing.T) {
	t.Run("marks cells with color", func(t *testing.T) {
		grid := tetris.NewGrid(4, 4)
		cells := []tetris.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}

		require.NoError(t, grid.Occupy(cells, tetris.T.Color()))

		assert.Equal(t, 2, grid.Len())
		for _, c := range cells {
			occupied, err := grid.IsOccupied(c)
			assert.NoError(t, err)
			assert.True(t, occupied)

			color, ok := grid.ColorAt(c)
			assert.True(t, ok)
			assert.Equal(t, tetris.T.Color(), color)
		}

		_, ok := grid.ColorAt(tetris.Cell{X: 2, Y: 0})
		assert.False(t, ok)
	})

	t.Run("already occupied leaves grid unchanged", func(t *testing.T) {
		grid := tetris.NewGrid(4, 4)
		require.NoError(t, grid.Occupy([]tetris.Cell{{X: 1, Y: 1}}, tetris.O.Color()))

		err := grid.Occupy([]tetris.Cell{{X: 0, Y: 1}, {X: 1, Y: 1}}, tetris.I.Color())
		assert.ErrorIs(t, err, tetris.ErrAlreadyOccupied)
		assert.Equal(t, 1, grid.Len())

		occupied, _ := grid.IsOccupied(tetris.Cell{X: 0, Y: 1})
		assert.False(t, occupied)
	})

	t.Run("out of bounds leaves grid unchanged", func(t *testing.T) {
		grid := tetris.NewGrid(4, 4)

		err := grid.Occupy([]tetris.Cell{{X: 0, Y: 0}, {X: 4, Y: 0}}, tetris.I.Color())
		assert.ErrorIs(t, err, tetris.ErrOutOfBounds)
		assert.Equal(t, 0, grid.Len())
	})

	t.Run("duplicate cells in one call", func(t *testing.T) {
		grid := tetris.NewGrid(4, 4)

		err := grid.Occupy([]tetris.Cell{{X: 2, Y: 2}, {X: 2, Y: 2}}, tetris.S.Color())
		assert.ErrorIs(t, err, tetris.ErrAlreadyOccupied)
		assert.Equal(t, 0, grid.Len())
	})
}

func TestGridCellsAreFree(t *testing.T) {
	grid := tetris.NewGrid(4, 4)
	require.NoError(t, grid.Occupy([]tetris.Cell{{X: 3, Y: 3}}, tetris.Z.Color()))

	assert.True(t, grid.CellsAreFree([]tetris.Cell{{X: 0, Y: 0}, {X: 3, Y: 2}}))
	assert.True(t, grid.CellsAreFree(nil))
	assert.False(t, grid.CellsAreFree([]tetris.Cell{{X: 0, Y: 0}, {X: 3, Y: 3}}))
	assert.False(t, grid.CellsAreFree([]tetris.Cell{{X: -1, Y: 0}}))
	assert.False(t, grid.CellsAreFree([]tetris.Cell{{X: 0, Y: 4}}))
}

func fillRow(t *testing.T, grid *tetris.Grid, row int, color tetris.Color) {
	t.Helper()
	cells := make([]tetris.Cell, 0, grid.Width())
	for x := 0; x < grid.Width(); x++ {
		cells = append(cells, tetris.Cell{X: x, Y: row})
	}
	require.NoError(t, grid.Occupy(cells, color))
}

func TestGridRemoveRow(t *testing.T) {
	grid := tetris.NewGrid(4, 4)
	fillRow(t, grid, 0, tetris.I.Color())
	require.NoError(t, grid.Occupy([]tetris.Cell{{X: 2, Y: 1}, {X: 1, Y: 3}}, tetris.T.Color()))

	assert.True(t, grid.IsRowFull(0))
	assert.False(t, grid.IsRowFull(1))
	assert.False(t, grid.IsRowFull(-1))
	assert.False(t, grid.IsRowFull(4))
	assert.Equal(t, []int{0}, grid.FullRows())

	require.NoError(t, grid.RemoveRow(0))

	assert.Equal(t, 2, grid.Len())
	assert.Empty(t, grid.FullRows())

	color, ok := grid.ColorAt(tetris.Cell{X: 2, Y: 0})
	assert.True(t, ok)
	assert.Equal(t, tetris.T.Color(), color)

	_, ok = grid.ColorAt(tetris.Cell{X: 1, Y: 2})
	assert.True(t, ok)
	_, ok = grid.ColorAt(tetris.Cell{X: 1, Y: 3})
	assert.False(t, ok)

	assert.ErrorIs(t, grid.RemoveRow(4), tetris.ErrOutOfBounds)
}

func TestGridClearFullRows(t *testing.T) {
	grid := tetris.NewGrid(4, 5)
	fillRow(t, grid, 0, tetris.I.Color())
	require.NoError(t, grid.Occupy([]tetris.Cell{{X: 0, Y: 1}}, tetris.J.Color()))
	fillRow(t, grid, 2, tetris.L.Color())
	require.NoError(t, grid.Occupy([]tetris.Cell{{X: 3, Y: 3}}, tetris.S.Color()))

	assert.Equal(t, []int{0, 2}, grid.FullRows())
	assert.Equal(t, 2, grid.ClearFullRows())

	assert.Equal(t, 2, grid.Len())
	color, ok := grid.ColorAt(tetris.Cell{X: 0, Y: 0})
	assert.True(t, ok)
	assert.Equal(t, tetris.J.Color(), color)

	color, ok = grid.ColorAt(tetris.Cell{X: 3, Y: 1})
	assert.True(t, ok)
	assert.Equal(t, tetris.S.Color(), color)

	assert.Equal(t, 0, grid.ClearFullRows())
}

func TestGridCellsIterator(t *testing.T) {
	grid := tetris.NewGrid(4, 4)
	require.NoError(t, grid.Occupy([]tetris.Cell{{X: 3, Y: 2}, {X: 0, Y: 0}, {X: 1, Y: 0}}, tetris.O.Color()))

	var seen []tetris.Cell
	for cell, color := range grid.Cells() {
		assert.Equal(t, tetris.O.Color(), color)
		seen = append(seen, cell)
	}
	assert.Equal(t, []tetris.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 3, Y: 2}}, seen)

	count := 0
	for range grid.Cells() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestGridClear(t *testing.T) {
	grid := tetris.NewGrid(4, 4)
	fillRow(t, grid, 1, tetris.Z.Color())

	grid.Clear()

	assert.Equal(t, 0, grid.Len())
	assert.False(t, grid.IsRowFull(1))
	assert.True(t, grid.CellsAreFree([]tetris.Cell{{X: 0, Y: 1}, {X: 3, Y: 1}}))
}

func TestGridString(t *testing.T) {
	grid := tetris.NewGrid(4, 2)
	require.NoError(t, grid.Occupy([]tetris.Cell{{X: 0, Y: 0}, {X: 3, Y: 1}}, tetris.T.Color()))

	expected := "--------\n" +
		"......##\n" +
		"##......\n" +
		"--------\n"
	assert.Equal(t, expected, grid.String())
}
