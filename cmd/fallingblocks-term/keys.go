package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/fallingblocks/game"
)

// Terminals report no key releases, so a soft drop key press is a single
// accelerated step rather than a held state.
var softDropStep = []game.Intent{game.SoftDropStart, game.SoftDropStop}

var specialKeys = map[tcell.Key][]game.Intent{
	tcell.KeyLeft:  {game.MoveLeft},
	tcell.KeyRight: {game.MoveRight},
	tcell.KeyUp:    {game.RotateRight},
	tcell.KeyDown:  softDropStep,
}

var runeKeys = map[rune][]game.Intent{
	'h': {game.MoveLeft},
	'l': {game.MoveRight},
	'j': softDropStep,
	'k': {game.RotateRight},
	'x': {game.RotateRight},
	'z': {game.RotateLeft},
	' ': {game.HardDrop},
	'p': {game.TogglePause},
	'r': {game.Reset},
}

func intentsForKey(ev *tcell.EventKey) []game.Intent {
	if ev.Key() == tcell.KeyRune {
		return runeKeys[ev.Rune()]
	}
	return specialKeys[ev.Key()]
}

func quitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}
