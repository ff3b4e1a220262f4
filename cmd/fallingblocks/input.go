package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/fallingblocks/game"
)

// Keys is the slice of keyboard state the input mapping reads.
type Keys interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
	JustReleased(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(key ebiten.Key) bool      { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) JustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (ebitenKeys) JustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }

var pressKeys = []struct {
	key    ebiten.Key
	intent game.Intent
}{
	{ebiten.KeyArrowUp, game.RotateRight},
	{ebiten.KeyX, game.RotateRight},
	{ebiten.KeyZ, game.RotateLeft},
	{ebiten.KeySpace, game.HardDrop},
	{ebiten.KeyP, game.TogglePause},
	{ebiten.KeyR, game.Reset},
}

// Input maps the keyboard to session intents. Horizontal moves auto-repeat
// while held; soft drop lasts as long as the down key is held.
type Input struct {
	left  *game.Repeater
	right *game.Repeater
}

func NewInput() *Input {
	return &Input{
		left:  game.NewRepeater(game.MoveLeft),
		right: game.NewRepeater(game.MoveRight),
	}
}

func (in *Input) Update(session *game.Session, dt float64, keys Keys) {
	in.left.Update(session, dt, keys.Pressed(ebiten.KeyArrowLeft))
	in.right.Update(session, dt, keys.Pressed(ebiten.KeyArrowRight))

	if keys.JustPressed(ebiten.KeyArrowDown) {
		session.Queue(game.SoftDropStart)
	}
	if keys.JustReleased(ebiten.KeyArrowDown) {
		session.Queue(game.SoftDropStop)
	}

	for _, pk := range pressKeys {
		if keys.JustPressed(pk.key) {
			session.Queue(pk.intent)
		}
	}
}
