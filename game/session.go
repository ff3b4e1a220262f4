package game

import "github.com/plus3/fallingblocks/tetris"

// Session ties a state machine to the piece chooser and the input queue, and
// counts what happened to it. It is owned by a single frame loop.
type Session struct {
	machine *tetris.Machine
	chooser Chooser
	intents []Intent
	onLock  []func(tetris.Shape)

	spawned  int
	restarts int
	applied  int
	rejected int
}

// NewSession creates a session. A nil chooser cycles through every kind.
func NewSession(machine *tetris.Machine, chooser Chooser) *Session {
	if chooser == nil {
		chooser = NewSequence()
	}
	return &Session{machine: machine, chooser: chooser}
}

func (s *Session) Machine() *tetris.Machine { return s.machine }
func (s *Session) Chooser() Chooser          { return s.chooser }

// Spawned is the number of pieces spawned.
func (s *Session) Spawned() int { return s.spawned }

// Restarts is the number of times a blocked spawn cleared the board.
func (s *Session) Restarts() int { return s.restarts }

// Applied and Rejected count intents by outcome.
func (s *Session) Applied() int  { return s.applied }
func (s *Session) Rejected() int { return s.rejected }

// OnLock registers fn to be called with the footprint of every locked piece.
func (s *Session) OnLock(fn func(tetris.Shape)) {
	s.onLock = append(s.onLock, fn)
}

// Queue records an intent for the next frame's input system.
func (s *Session) Queue(intent Intent) {
	s.intents = append(s.intents, intent)
}

// Pending returns the number of queued intents.
func (s *Session) Pending() int {
	return len(s.intents)
}

func (s *Session) drain() []Intent {
	intents := s.intents
	s.intents = nil
	return intents
}

// Apply performs intent on the machine at once and reports whether it
// changed anything. Reset is applied immediately too; systems should queue it
// through Commands instead.
func (s *Session) Apply(intent Intent) bool {
	m := s.machine
	ok := false

	switch intent {
	case MoveLeft:
		ok = m.MoveHorizontal(tetris.ShiftLeft)
	case MoveRight:
		ok = m.MoveHorizontal(tetris.ShiftRight)
	case SoftDropStart:
		m.SetSoftDrop(true)
		ok = m.MoveDown(true)
	case SoftDropStop:
		m.SetSoftDrop(false)
		ok = true
	case HardDrop:
		var locked tetris.Shape
		if locked, ok = m.HardDrop(); ok {
			s.notifyLock(locked)
		}
	case RotateLeft:
		ok = m.Rotate(tetris.SpinLeft)
	case RotateRight:
		ok = m.Rotate(tetris.SpinRight)
	case TogglePause:
		m.TogglePause()
		ok = true
	case Reset:
		s.Reset()
		ok = true
	}

	if ok {
		s.applied++
	} else {
		s.rejected++
	}
	return ok
}

// Spawn places the next piece. If the spawn area is blocked the board is
// cleared and the spawn retried, which counts as a restart. It returns false
// only when a piece is already active.
func (s *Session) Spawn(kind tetris.Kind) bool {
	m := s.machine
	if m.State() != tetris.StateLocked {
		return false
	}

	if !m.Spawn(kind) {
		m.Reset()
		s.restarts++
		if !m.Spawn(kind) {
			panic("spawn blocked on an empty board: " + kind.String())
		}
	}
	s.spawned++
	return true
}

// Reset empties the board and drops the active piece and any queued input.
func (s *Session) Reset() {
	s.machine.Reset()
	s.intents = nil
}

func (s *Session) notifyLock(locked tetris.Shape) {
	for _, fn := range s.onLock {
		fn(locked)
	}
}
