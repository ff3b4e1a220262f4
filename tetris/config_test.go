package tetris_test

import (
	"testing"
	"time"

	"github.com/plus3/fallingblocks/tetris"
	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*tetris.Config)
		valid  bool
	}{
		{"defaults", func(*tetris.Config) {}, true},
		{"narrow", func(c *tetris.Config) { c.Width = 3 }, false},
		{"short", func(c *tetris.Config) { c.Height = 2 }, false},
		{"zero fall interval", func(c *tetris.Config) { c.FallInterval = 0 }, false},
		{"negative lock delay", func(c *tetris.Config) { c.LockDelay = -time.Millisecond }, false},
		{"zero lock delay", func(c *tetris.Config) { c.LockDelay = 0 }, true},
		{"zero soft drop multiplier", func(c *tetris.Config) { c.SoftDropMultiplier = 0 }, false},
		{"minimal board", func(c *tetris.Config) { c.Width, c.Height = 4, 4 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tetris.DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
			}
		})
	}
}

func TestConfigDerivedValues(t *testing.T) {
	cfg := tetris.DefaultConfig()
	assert.Equal(t, tetris.Cell{X: 5, Y: 17}, cfg.SpawnCell())
	assert.Equal(t, 50*time.Millisecond, cfg.SoftDropInterval())

	cfg.FallInterval = 10
	cfg.SoftDropMultiplier = 100
	assert.Equal(t, time.Duration(1), cfg.SoftDropInterval())
}
