package tetris

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a cell outside the grid is addressed.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrAlreadyOccupied is returned when occupying a cell that is not empty.
	ErrAlreadyOccupied = errors.New("cell already occupied")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid config")
)

// CellError records the cell an occupancy operation failed on.
type CellError struct {
	Cell Cell
	Err  error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("tetris: %v at %v", e.Err, e.Cell)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
