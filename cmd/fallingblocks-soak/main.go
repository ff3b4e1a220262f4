package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/fallingblocks/game"
	"github.com/plus3/fallingblocks/tetris"
)

func main() {
	cfg := tetris.DefaultConfig()
	game.ConfigFlags(flag.CommandLine, &cfg)
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	frameStep := flag.Duration("frame", time.Second/60, "Simulated time per frame.")
	intentsPerFrame := flag.Int("intents", 3, "Maximum number of random intents queued per frame.")
	hardDropChance := flag.Float64("hard-drop", 0.02, "Chance per frame of a checked hard drop.")
	seed := flag.Uint64("seed", 1, "Seed for the random intent stream.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Println("Starting soak test...")

	m, err := tetris.NewMachine(cfg)
	if err != nil {
		log.Fatalf("Failed to create machine: %v", err)
	}
	session := game.NewSession(m, game.NewSequence())
	scheduler := game.NewScheduler(session)
	game.RegisterCore(scheduler)

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	checker := &Checker{}
	session.OnLock(checker.Locked)

	report := &Report{
		Config:         cfg,
		Duration:       *duration,
		FrameStep:      *frameStep,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	dt := frameStep.Seconds()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if rng.Float64() < *hardDropChance {
				checker.HardDrop(session)
			}
			for range rng.IntN(*intentsPerFrame + 1) {
				session.Queue(randomIntent(rng))
			}

			updateStart := time.Now()
			scheduler.Once(dt)
			updateDuration := time.Since(updateStart)

			checker.Frame(m)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Collect(session, scheduler, checker)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if len(checker.Violations) > 0 {
		log.Fatalf("Soak found %d invariant violations", len(checker.Violations))
	}
	log.Println("Soak test complete.")
}

// soakIntents excludes Reset and TogglePause, which would hide most of the
// interesting states. Hard drops go through Checker instead.
var soakIntents = []game.Intent{
	game.MoveLeft,
	game.MoveRight,
	game.RotateLeft,
	game.RotateRight,
	game.SoftDropStart,
	game.SoftDropStop,
}

func randomIntent(rng *rand.Rand) game.Intent {
	return soakIntents[rng.IntN(len(soakIntents))]
}
