package game_test

import (
	"testing"

	"github.com/plus3/fallingblocks/game"
	"github.com/plus3/fallingblocks/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoreSystems(t *testing.T) {
	t.Run("first frame spawns", func(t *testing.T) {
		scheduler := newCoreScheduler(t, tetris.O)
		scheduler.Once(0)

		session := scheduler.Session()
		assert.Equal(t, 1, session.Spawned())
		piece, ok := session.Machine().Piece()
		require.True(t, ok)
		assert.Equal(t, tetris.O, piece.Kind)
	})

	t.Run("intents are applied next frame", func(t *testing.T) {
		scheduler := newCoreScheduler(t, tetris.T)
		scheduler.Once(0)
		session := scheduler.Session()

		session.Queue(game.MoveLeft)
		session.Queue(game.MoveLeft)
		session.Queue(game.RotateRight)
		assert.Equal(t, 3, session.Pending())

		scheduler.Once(0)

		assert.Equal(t, 0, session.Pending())
		piece, _ := session.Machine().Piece()
		assert.Equal(t, 3, piece.Pivot.X)
		assert.Equal(t, tetris.RotationRight, piece.Rotation)
	})

	t.Run("hard drop spawns the next piece in the same frame", func(t *testing.T) {
		scheduler := newCoreScheduler(t, tetris.I, tetris.O)
		session := scheduler.Session()
		locks := 0
		session.OnLock(func(tetris.Shape) { locks++ })

		scheduler.Once(0)
		session.Queue(game.HardDrop)
		scheduler.Once(0)

		assert.Equal(t, 1, locks)
		assert.Equal(t, 2, session.Spawned())
		assert.Equal(t, 4, session.Machine().Grid().Len())
		piece, ok := session.Machine().Piece()
		require.True(t, ok)
		assert.Equal(t, tetris.O, piece.Kind)
	})

	t.Run("gravity and lock delay", func(t *testing.T) {
		scheduler := newCoreScheduler(t, tetris.O)
		session := scheduler.Session()
		locks := 0
		session.OnLock(func(tetris.Shape) { locks++ })

		scheduler.Once(0)
		scheduler.Once(1.0)
		piece, _ := session.Machine().Piece()
		assert.Equal(t, 16, piece.Pivot.Y)

		scheduler.Once(20.0)

		assert.Equal(t, 1, locks)
		assert.Equal(t, 1, session.Machine().LockCount())
		assert.Equal(t, 2, session.Spawned())
	})

	t.Run("reset intent clears the board at end of frame", func(t *testing.T) {
		scheduler := newCoreScheduler(t, tetris.I)
		session := scheduler.Session()
		scheduler.Once(0)
		session.Queue(game.HardDrop)
		scheduler.Once(0)
		require.Equal(t, 4, session.Machine().Grid().Len())

		session.Queue(game.Reset)
		scheduler.Once(0)

		assert.Equal(t, 0, session.Machine().Grid().Len())
		assert.Equal(t, tetris.StateLocked, session.Machine().State())
		assert.Equal(t, 2, session.Spawned())

		scheduler.Once(0)
		assert.Equal(t, tetris.StateFalling, session.Machine().State())
		assert.Equal(t, 3, session.Spawned())
	})

	t.Run("pause freezes gravity", func(t *testing.T) {
		scheduler := newCoreScheduler(t, tetris.T)
		session := scheduler.Session()
		scheduler.Once(0)
		session.Queue(game.TogglePause)
		scheduler.Once(0)

		before, _ := session.Machine().Piece()
		scheduler.Once(10.0)
		after, _ := session.Machine().Piece()
		assert.Equal(t, before, after)
	})

	t.Run("stacking to the top restarts", func(t *testing.T) {
		scheduler := newCoreScheduler(t, tetris.O)
		session := scheduler.Session()

		for range 12 {
			scheduler.Once(0)
			session.Queue(game.HardDrop)
		}
		scheduler.Once(0)

		assert.Equal(t, 1, session.Restarts())
	})
}
