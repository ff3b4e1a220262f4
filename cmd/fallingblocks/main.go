package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fallingblocks/game"
	"github.com/plus3/fallingblocks/game/debugui"
	debugui_ebiten "github.com/plus3/fallingblocks/game/debugui/ebiten"
	"github.com/plus3/fallingblocks/tetris"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	CellSize     = 28
)

func main() {
	cfg := tetris.DefaultConfig()
	game.ConfigFlags(flag.CommandLine, &cfg)
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug windows.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	m, err := tetris.NewMachine(cfg)
	if err != nil {
		log.Fatalf("Failed to create machine: %v", err)
	}
	session := game.NewSession(m, game.NewSequence())
	scheduler := game.NewScheduler(session)
	game.RegisterCore(scheduler)

	g := &Game{
		Session:   session,
		Scheduler: scheduler,
		Input:     NewInput(),
		Renderer:  NewRenderer(CellSize),
	}

	if *debug {
		g.ImguiBackend = debugui_ebiten.NewImguiBackend("Falling Blocks", ScreenWidth, ScreenHeight)
		g.Imgui = debugui.Install(scheduler)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("Falling Blocks")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
}
