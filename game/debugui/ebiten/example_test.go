package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fallingblocks/game"
	"github.com/plus3/fallingblocks/game/debugui"
	debugui_ebiten "github.com/plus3/fallingblocks/game/debugui/ebiten"
	"github.com/plus3/fallingblocks/tetris"
)

// Game implements ebiten.Game and drives a session with the debug overlay.
type Game struct {
	scheduler    *game.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imguiBackend.BeginFrame()

	// Execute all systems, including ImguiSystem
	g.scheduler.Once(1.0 / 60.0)

	// End ImGui frame after systems complete
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	imguiBackend := debugui_ebiten.NewImguiBackend("Falling Blocks Debug", 1280, 720)

	m, err := tetris.NewMachine(tetris.DefaultConfig())
	if err != nil {
		panic(err)
	}
	session := game.NewSession(m, nil)

	scheduler := game.NewScheduler(session)
	game.RegisterCore(scheduler)
	debugui.Install(scheduler)

	g := &Game{
		scheduler:    scheduler,
		imguiBackend: imguiBackend,
	}

	if err := ebiten.RunGame(g); err != nil {
		panic(err)
	}
}
