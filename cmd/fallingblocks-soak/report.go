package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/fallingblocks/game"
	"github.com/plus3/fallingblocks/tetris"
)

type Report struct {
	// Configuration
	Config    tetris.Config
	Duration  time.Duration
	FrameStep time.Duration
	Seed      uint64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	Spawned     int
	Locked      int
	Restarts    int
	Applied     int
	Rejected    int
	GhostChecks int
	Violations  []string
	Systems     []game.SystemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Collect copies the session counters and scheduler timings into the report.
func (r *Report) Collect(session *game.Session, scheduler *game.Scheduler, checker *Checker) {
	r.Spawned = session.Spawned()
	r.Locked = session.Machine().LockCount()
	r.Restarts = session.Restarts()
	r.Applied = session.Applied()
	r.Rejected = session.Rejected()
	r.GhostChecks = checker.GhostChecks
	r.Violations = checker.Violations
	r.Systems = scheduler.GetStats().Systems
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Falling Blocks Soak Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Board:** {{.Config.Width}}x{{.Config.Height}}
- **Fall Interval:** {{.Config.FallInterval}} (soft drop x{{.Config.SoftDropMultiplier}})
- **Lock Delay:** {{.Config.LockDelay}}
- **Simulated Frame:** {{.FrameStep}}
- **Seed:** {{.Seed}}

## Game Results
- **Pieces Spawned:** {{.Spawned}}
- **Pieces Locked:** {{.Locked}}
- **Restarts:** {{.Restarts}}
- **Intents:** {{.Applied}} applied, {{.Rejected}} rejected
- **Ghost/Hard Drop Checks:** {{.GhostChecks}}
- **Violations:** {{len .Violations}}
{{range .Violations}}  - {{.}}
{{end}}
## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{range .Systems}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}} ({{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}} MB)
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
