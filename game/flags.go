package game

import (
	"flag"

	"github.com/plus3/fallingblocks/tetris"
)

// ConfigFlags binds every option of cfg to fs, using the current values as
// defaults. Call cfg.Validate after fs.Parse.
func ConfigFlags(fs *flag.FlagSet, cfg *tetris.Config) {
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Board width in cells.")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Board height in cells.")
	fs.DurationVar(&cfg.FallInterval, "fall", cfg.FallInterval, "Time between automatic one-row drops.")
	fs.DurationVar(&cfg.LockDelay, "lock-delay", cfg.LockDelay, "How long a grounded piece stays movable before it locks.")
	fs.IntVar(&cfg.SoftDropMultiplier, "soft-drop", cfg.SoftDropMultiplier, "Gravity speed-up while soft drop is held.")
}
