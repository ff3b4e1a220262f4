package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/fallingblocks/game"
	"github.com/plus3/fallingblocks/tetris"
)

func main() {
	cfg := tetris.DefaultConfig()
	game.ConfigFlags(flag.CommandLine, &cfg)
	frame := flag.Duration("frame", 16*time.Millisecond, "Time between frames.")
	mute := flag.Bool("mute", false, "Disable the lock tone.")
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

	if !*mute {
		tone, err := NewLockTone()
		if err != nil {
			// Non-fatal, the game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer tone.Close()
			session.OnLock(tone.Play)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	run(screen, scheduler, *frame)
}

// run owns the session: terminal events arrive over a channel so only this
// loop touches game state.
func run(screen tcell.Screen, scheduler *game.Scheduler, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	view := NewView(screen)
	session := scheduler.Session()
	lastTime := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					return
				}
				for _, intent := range intentsForKey(ev) {
					session.Queue(intent)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			scheduler.Once(dt)
			view.Draw(session)
		}
	}
}
