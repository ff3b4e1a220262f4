package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/fallingblocks/game"
	"github.com/plus3/fallingblocks/tetris"
)

var kindColors = [...]color.RGBA{
	tetris.I: {102, 204, 255, 255},
	tetris.O: {255, 215, 0, 255},
	tetris.T: {186, 85, 211, 255},
	tetris.S: {124, 205, 124, 255},
	tetris.Z: {255, 105, 97, 255},
	tetris.J: {65, 105, 225, 255},
	tetris.L: {255, 165, 79, 255},
}

var (
	backgroundColor = color.RGBA{24, 24, 32, 255}
	wellColor       = color.RGBA{36, 36, 48, 255}
	borderColor     = color.RGBA{128, 128, 140, 255}
)

const (
	offsetX = 40
	offsetY = 40
)

// Renderer draws the board with the active piece and its ghost.
type Renderer struct {
	cellSize float32
	board    game.Board
}

func NewRenderer(cellSize float32) *Renderer {
	return &Renderer{cellSize: cellSize}
}

// cellRect returns the screen rectangle of a board cell. Row 0 is drawn at
// the bottom of the well.
func (r *Renderer) cellRect(x, y int) (float32, float32) {
	sx := offsetX + float32(x)*r.cellSize
	sy := offsetY + float32(r.board.Height-1-y)*r.cellSize
	return sx, sy
}

func cellColor(cell game.BoardCell) (color.RGBA, bool) {
	switch cell.Layer {
	case game.LayerLocked, game.LayerActive:
		return kindColors[cell.Kind], true
	case game.LayerGhost:
		c := kindColors[cell.Kind]
		c.A = 80
		return c, true
	}
	return color.RGBA{}, false
}

func (r *Renderer) Draw(screen *ebiten.Image, session *game.Session) {
	m := session.Machine()
	r.board.Capture(m)
	screen.Fill(backgroundColor)

	w := float32(r.board.Width) * r.cellSize
	h := float32(r.board.Height) * r.cellSize
	vector.DrawFilledRect(screen, offsetX, offsetY, w, h, wellColor, false)
	vector.StrokeRect(screen, offsetX-2, offsetY-2, w+4, h+4, 2, borderColor, false)

	for y := 0; y < r.board.Height; y++ {
		for x := 0; x < r.board.Width; x++ {
			c, ok := cellColor(r.board.At(x, y))
			if !ok {
				continue
			}
			sx, sy := r.cellRect(x, y)
			vector.DrawFilledRect(screen, sx+1, sy+1, r.cellSize-2, r.cellSize-2, c, false)
		}
	}

	status := fmt.Sprintf("State: %v\nLocked: %d\nSpawned: %d\nRestarts: %d",
		m.State(), m.LockCount(), session.Spawned(), session.Restarts())
	if m.Paused() {
		status = "PAUSED\n\n" + status
	}
	status += "\n\nArrows move/rotate\nZ/X rotate\nSpace hard drop\nP pause  R reset"
	ebitenutil.DebugPrintAt(screen, status, offsetX+int(w)+24, offsetY)
}
