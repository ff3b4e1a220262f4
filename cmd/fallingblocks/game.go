package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fallingblocks/game"
	"github.com/plus3/fallingblocks/game/debugui"
	debugui_ebiten "github.com/plus3/fallingblocks/game/debugui/ebiten"
)

// Game implements ebiten.Game. The debug fields are nil unless the overlay
// was requested.
type Game struct {
	Session   *game.Session
	Scheduler *game.Scheduler
	Input     *Input
	Renderer  *Renderer

	ImguiBackend *debugui_ebiten.ImguiBackend
	Imgui        *debugui.ImguiSystem
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := 1.0 / float64(ebiten.TPS())

	if g.ImguiBackend != nil {
		g.ImguiBackend.BeginFrame()
	}

	if g.Imgui == nil || !g.Imgui.InputState.WantCaptureKeyboard {
		g.Input.Update(g.Session, dt, ebitenKeys{})
	}
	g.Scheduler.Once(dt)

	if g.ImguiBackend != nil {
		g.ImguiBackend.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen, g.Session)

	if g.ImguiBackend != nil {
		g.ImguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.ImguiBackend != nil {
		g.ImguiBackend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
