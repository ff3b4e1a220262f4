package game

import "github.com/plus3/fallingblocks/tetris"

// InputSystem applies the intents queued since the last frame, one machine
// transition per intent. Reset is deferred to the end of the frame.
type InputSystem struct {
	Applied int
}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	for _, intent := range frame.Session.drain() {
		if intent == Reset {
			frame.Commands.Reset()
			continue
		}
		if frame.Session.Apply(intent) {
			s.Applied++
		}
	}
}

// GravitySystem advances the fall timer.
type GravitySystem struct {
	Rows int
}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	s.Rows += frame.Session.Machine().TickFall(frame.Elapsed())
}

// LockSystem advances the lock delay and reports locked pieces.
type LockSystem struct{}

func (s *LockSystem) Execute(frame *UpdateFrame) {
	m := frame.Session.Machine()
	if m.TickLockDelay(frame.Elapsed()) {
		frame.Session.notifyLock(m.LastLocked())
	}
}

// SpawnSystem asks the chooser for a new piece whenever none is active.
type SpawnSystem struct{}

func (s *SpawnSystem) Execute(frame *UpdateFrame) {
	if frame.Session.Machine().State() == tetris.StateLocked {
		frame.Commands.Spawn(frame.Session.Chooser().Next())
	}
}

// RegisterCore registers the input, gravity, lock and spawn systems in the
// order the game needs them.
func RegisterCore(s *Scheduler) {
	s.Register(&InputSystem{})
	s.Register(&GravitySystem{})
	s.Register(&LockSystem{})
	s.Register(&SpawnSystem{})
}
