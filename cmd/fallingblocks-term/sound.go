package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/fallingblocks/tetris"
)

const sampleRate = beep.SampleRate(44100)

// LockTone plays a short sine beep whenever a piece locks.
type LockTone struct {
	duration int
}

func NewLockTone() (*LockTone, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &LockTone{duration: sampleRate.N(50 * time.Millisecond)}, nil
}

// Play pitches the tone by the row the piece locked on, lower rows lower.
func (t *LockTone) Play(cells tetris.Shape) {
	sine, err := generators.SineTone(sampleRate, lockPitch(cells))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(t.duration, sine))
}

func (t *LockTone) Close() {
	speaker.Close()
}

func lockPitch(cells tetris.Shape) float64 {
	lowest := cells[0].Y
	for _, c := range cells[1:] {
		lowest = min(lowest, c.Y)
	}
	return 440 + float64(lowest)*40
}
