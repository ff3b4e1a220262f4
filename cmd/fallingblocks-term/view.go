package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/fallingblocks/game"
	"github.com/plus3/fallingblocks/tetris"
)

var kindColors = [...]tcell.Color{
	tetris.I: tcell.ColorAqua,
	tetris.O: tcell.ColorYellow,
	tetris.T: tcell.ColorPurple,
	tetris.S: tcell.ColorGreen,
	tetris.Z: tcell.ColorRed,
	tetris.J: tcell.ColorBlue,
	tetris.L: tcell.ColorOrange,
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	pausedStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

const (
	boardLeft = 2
	boardTop  = 1
)

// View draws a session onto a terminal screen.
type View struct {
	screen tcell.Screen
	board  game.Board
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

func (v *View) Draw(session *game.Session) {
	m := session.Machine()
	v.board.Capture(m)
	v.screen.Clear()

	w, h := v.board.Width, v.board.Height
	for y := 0; y <= h+1; y++ {
		v.screen.SetContent(boardLeft-1, boardTop+y-1, '│', nil, borderStyle)
		v.screen.SetContent(boardLeft+w*2, boardTop+y-1, '│', nil, borderStyle)
	}
	for x := -1; x <= w*2; x++ {
		v.screen.SetContent(boardLeft+x, boardTop+h, '─', nil, borderStyle)
	}

	for y := 0; y < h; y++ {
		row := boardTop + h - 1 - y
		for x := 0; x < w; x++ {
			glyph, style := cellGlyph(v.board.At(x, y))
			v.screen.SetContent(boardLeft+x*2, row, glyph, nil, style)
			v.screen.SetContent(boardLeft+x*2+1, row, glyph, nil, style)
		}
	}

	v.drawStatus(session, boardLeft+w*2+3)
	v.screen.Show()
}

func cellGlyph(cell game.BoardCell) (rune, tcell.Style) {
	switch cell.Layer {
	case game.LayerLocked, game.LayerActive:
		return '█', tcell.StyleDefault.Foreground(kindColors[cell.Kind])
	case game.LayerGhost:
		return '░', tcell.StyleDefault.Foreground(kindColors[cell.Kind])
	}
	return '·', emptyStyle
}

func (v *View) drawStatus(session *game.Session, x int) {
	m := session.Machine()
	y := boardTop

	if m.Paused() {
		v.drawText(x, y, pausedStyle, "PAUSED")
	}
	y += 2

	lines := []string{
		fmt.Sprintf("State    %v", m.State()),
		fmt.Sprintf("Locked   %d", m.LockCount()),
		fmt.Sprintf("Spawned  %d", session.Spawned()),
		fmt.Sprintf("Restarts %d", session.Restarts()),
		"",
		"←/→ h/l  move",
		"↑ x k    rotate right",
		"z        rotate left",
		"↓ j      soft drop",
		"space    hard drop",
		"p        pause",
		"r        reset",
		"q esc    quit",
	}
	for _, line := range lines {
		v.drawText(x, y, textStyle, line)
		y++
	}
}

func (v *View) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
