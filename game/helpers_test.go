package game_test

import (
	"testing"

	"github.com/plus3/fallingblocks/game"
	"github.com/plus3/fallingblocks/tetris"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, kinds ...tetris.Kind) *game.Session {
	t.Helper()
	m, err := tetris.NewMachine(tetris.DefaultConfig())
	require.NoError(t, err)
	return game.NewSession(m, game.NewSequence(kinds...))
}

func newCoreScheduler(t *testing.T, kinds ...tetris.Kind) *game.Scheduler {
	t.Helper()
	scheduler := game.NewScheduler(newSession(t, kinds...))
	game.RegisterCore(scheduler)
	return scheduler
}
