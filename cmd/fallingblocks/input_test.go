package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fallingblocks/game"
	"github.com/plus3/fallingblocks/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKeys struct {
	pressed  map[ebiten.Key]bool
	just     map[ebiten.Key]bool
	released map[ebiten.Key]bool
}

func (k fakeKeys) Pressed(key ebiten.Key) bool      { return k.pressed[key] }
func (k fakeKeys) JustPressed(key ebiten.Key) bool  { return k.just[key] }
func (k fakeKeys) JustReleased(key ebiten.Key) bool { return k.released[key] }

func TestInputUpdate(t *testing.T) {
	m, err := tetris.NewMachine(tetris.DefaultConfig())
	require.NoError(t, err)
	session := game.NewSession(m, nil)
	require.True(t, session.Spawn(tetris.T))
	scheduler := game.NewScheduler(session)
	scheduler.Register(&game.InputSystem{})
	in := NewInput()

	in.Update(session, 1.0/60, fakeKeys{
		pressed: map[ebiten.Key]bool{ebiten.KeyArrowLeft: true, ebiten.KeyArrowDown: true},
		just:    map[ebiten.Key]bool{ebiten.KeyArrowLeft: true, ebiten.KeyArrowDown: true, ebiten.KeySpace: true},
	})
	assert.Equal(t, 3, session.Pending())

	scheduler.Once(0)
	assert.Equal(t, 3, session.Applied())
	assert.Equal(t, 1, m.LockCount())
	assert.Equal(t, tetris.Shape{{X: 4, Y: 1}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}}, m.LastLocked())
	assert.True(t, m.SoftDrop())

	in.Update(session, 1.0/60, fakeKeys{
		pressed:  map[ebiten.Key]bool{ebiten.KeyArrowLeft: true},
		released: map[ebiten.Key]bool{ebiten.KeyArrowDown: true},
	})
	assert.Equal(t, 1, session.Pending(), "held left does not repeat yet")
}

func TestCellColor(t *testing.T) {
	_, ok := cellColor(game.BoardCell{})
	assert.False(t, ok)

	c, ok := cellColor(game.BoardCell{Layer: game.LayerGhost, Kind: tetris.T})
	assert.True(t, ok)
	assert.Equal(t, uint8(80), c.A)

	c, _ = cellColor(game.BoardCell{Layer: game.LayerLocked, Kind: tetris.T})
	assert.Equal(t, kindColors[tetris.T], c)
}
