package tetris

import (
	"fmt"
	"time"
)

// Config holds the options resolved once at startup.
type Config struct {
	Width  int
	Height int

	// FallInterval is the time between automatic one-row drops.
	FallInterval time.Duration
	// LockDelay is how long a grounded piece may stay movable before it locks.
	LockDelay time.Duration
	// SoftDropMultiplier divides FallInterval while soft drop is held.
	SoftDropMultiplier int
}

// DefaultConfig returns a 10x20 board with a one second fall interval.
func DefaultConfig() Config {
	return Config{
		Width:              10,
		Height:             20,
		FallInterval:       time.Second,
		LockDelay:          500 * time.Millisecond,
		SoftDropMultiplier: 20,
	}
}

// Validate reports the first option that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Width < 4:
		return fmt.Errorf("%w: width %d is narrower than a piece", ErrInvalidConfig, c.Width)
	case c.Height < 4:
		return fmt.Errorf("%w: height %d is shorter than a piece", ErrInvalidConfig, c.Height)
	case c.FallInterval <= 0:
		return fmt.Errorf("%w: fall interval must be positive", ErrInvalidConfig)
	case c.LockDelay < 0:
		return fmt.Errorf("%w: lock delay must not be negative", ErrInvalidConfig)
	case c.SoftDropMultiplier < 1:
		return fmt.Errorf("%w: soft drop multiplier must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// SpawnCell is the pivot new pieces appear at: horizontally centered, three
// rows below the top so every orientation fits.
func (c Config) SpawnCell() Cell {
	return Cell{X: c.Width / 2, Y: c.Height - 3}
}

// SoftDropInterval is the fall interval while soft drop is held.
func (c Config) SoftDropInterval() time.Duration {
	interval := c.FallInterval / time.Duration(c.SoftDropMultiplier)
	if interval <= 0 {
		return 1
	}
	return interval
}
