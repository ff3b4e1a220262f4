package tetris

import (
	"fmt"
	"time"
)

// State is the lifecycle stage of the active piece.
type State uint8

const (
	// StateLocked means there is no active piece: either nothing has spawned
	// yet or the last piece was committed to the grid. The spawner acts next.
	StateLocked State = iota
	// StateFalling means the active piece is movable and not grounded.
	StateFalling
	// StateLockDelayPending means the piece failed to move down and the lock
	// delay is counting.
	StateLockDelayPending
)

func (s State) String() string {
	switch s {
	case StateLocked:
		return "Locked"
	case StateFalling:
		return "Falling"
	case StateLockDelayPending:
		return "LockDelayPending"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Option configures a Machine.
type Option func(*Machine)

// WithGrid makes the machine lock pieces into grid instead of a fresh one.
// The grid's dimensions take precedence over Config.Width and Config.Height.
func WithGrid(grid *Grid) Option {
	return func(m *Machine) {
		m.grid = grid
	}
}

// WithKickTable replaces the default SRS kick table.
func WithKickTable(kicks *KickTable) Option {
	return func(m *Machine) {
		m.kicks = kicks
	}
}

// Machine owns the grid and the active piece and applies every movement,
// rotation and timer transition. It is not safe for concurrent use.
type Machine struct {
	cfg   Config
	grid  *Grid
	kicks *KickTable

	piece    Piece
	state    State
	paused   bool
	softDrop bool

	fallElapsed time.Duration
	lockElapsed time.Duration

	lastKick   Cell
	lastLocked Shape
	lockCount  int
}

// NewMachine validates cfg and creates a machine with no active piece.
func NewMachine(cfg Config, opts ...Option) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Machine{cfg: cfg, state: StateLocked}
	for _, opt := range opts {
		opt(m)
	}

	if m.grid == nil {
		m.grid = NewGrid(cfg.Width, cfg.Height)
	} else {
		m.cfg.Width = m.grid.Width()
		m.cfg.Height = m.grid.Height()
	}
	if m.kicks == nil {
		m.kicks = DefaultKickTable()
	}
	return m, nil
}

func (m *Machine) Config() Config { return m.cfg }
func (m *Machine) Grid() *Grid    { return m.grid }
func (m *Machine) State() State   { return m.state }
func (m *Machine) Paused() bool   { return m.paused }
func (m *Machine) SoftDrop() bool { return m.softDrop }

// Piece returns the active piece, if any.
func (m *Machine) Piece() (Piece, bool) {
	return m.piece, m.state != StateLocked
}

// Ghost returns where the active piece would land on a hard drop.
func (m *Machine) Ghost() (Shape, bool) {
	if m.state == StateLocked {
		return Shape{}, false
	}
	return Project(m.piece, m.grid), true
}

// LockElapsed is the time spent in the current lock delay.
func (m *Machine) LockElapsed() time.Duration { return m.lockElapsed }

// FallElapsed is the time accumulated toward the next automatic drop.
func (m *Machine) FallElapsed() time.Duration { return m.fallElapsed }

// LastKick is the offset applied by the most recent successful rotation.
func (m *Machine) LastKick() Cell { return m.lastKick }

// LastLocked is the footprint of the most recently locked piece.
func (m *Machine) LastLocked() Shape { return m.lastLocked }

// LockCount is the number of pieces locked since the machine was created.
func (m *Machine) LockCount() int { return m.lockCount }

// Spawn places a new piece of kind at the spawn cell. It fails if a piece is
// still active or if the spawn footprint is blocked; what a blocked spawn
// means for the game is up to the caller.
func (m *Machine) Spawn(kind Kind) bool {
	if m.state != StateLocked || !kind.Valid() {
		return false
	}

	p := Piece{Kind: kind, Rotation: RotationSpawn, Pivot: m.cfg.SpawnCell()}
	if !fits(p, m.grid) {
		return false
	}

	m.piece = p
	m.state = StateFalling
	m.fallElapsed = 0
	m.lockElapsed = 0
	m.lastKick = zero
	return true
}

// MoveHorizontal shifts the piece one column. Blocked moves are ignored.
func (m *Machine) MoveHorizontal(shift Shift) bool {
	if m.state == StateLocked {
		return false
	}

	next := m.piece.Translated(Cell{X: int(shift)})
	if !fits(next, m.grid) {
		return false
	}

	m.piece = next
	m.resetLockDelay()
	return true
}

// MoveDown moves the piece one row. A blocked move starts the lock delay.
// Soft moves also restart the fall countdown so gravity does not add a
// second step in the same interval.
func (m *Machine) MoveDown(soft bool) bool {
	if m.state == StateLocked {
		return false
	}

	next := m.piece.Translated(down)
	if !fits(next, m.grid) {
		if m.state != StateLockDelayPending {
			m.state = StateLockDelayPending
			m.lockElapsed = 0
		}
		return false
	}

	m.piece = next
	m.state = StateFalling
	m.lockElapsed = 0
	if soft {
		m.fallElapsed = 0
	}
	return true
}

// HardDrop drops the piece to its resting position and locks it at once,
// skipping the lock delay. It returns the locked footprint.
func (m *Machine) HardDrop() (Shape, bool) {
	if m.state == StateLocked {
		return Shape{}, false
	}

	m.piece, _ = dropPiece(m.piece, m.grid)
	return m.lock(), true
}

// Rotate turns the piece one step, trying each kick offset in order. If none
// fits the piece is left as it was.
func (m *Machine) Rotate(spin Spin) bool {
	if m.state == StateLocked {
		return false
	}

	from := m.piece.Rotation
	to := from.Step(spin)
	rotated := Piece{Kind: m.piece.Kind, Rotation: to, Pivot: m.piece.Pivot}

	for _, kick := range m.kicks.TrialsFor(m.piece.Kind, from, to) {
		candidate := rotated.Translated(kick)
		if fits(candidate, m.grid) {
			m.piece = candidate
			m.lastKick = kick
			m.resetLockDelay()
			return true
		}
	}
	return false
}

// TickFall advances the fall timer and moves the piece down once per elapsed
// interval. It returns the number of rows moved. Nothing happens while paused.
func (m *Machine) TickFall(dt time.Duration) int {
	if m.paused || m.state == StateLocked {
		return 0
	}

	interval := m.cfg.FallInterval
	if m.softDrop {
		interval = m.cfg.SoftDropInterval()
	}

	m.fallElapsed += dt
	rows := 0
	for m.fallElapsed >= interval {
		m.fallElapsed -= interval
		if !m.MoveDown(false) {
			m.fallElapsed = 0
			break
		}
		rows++
	}
	return rows
}

// TickLockDelay advances the lock delay of a grounded piece and locks it once
// the delay has run out. It returns true if the piece locked during this call.
// Nothing happens while paused.
func (m *Machine) TickLockDelay(dt time.Duration) bool {
	if m.paused || m.state != StateLockDelayPending {
		return false
	}

	m.lockElapsed += dt
	if m.lockElapsed < m.cfg.LockDelay {
		return false
	}

	if fits(m.piece.Translated(down), m.grid) {
		m.state = StateFalling
		m.lockElapsed = 0
		return false
	}

	m.lock()
	return true
}

// Update advances both timers by dt.
func (m *Machine) Update(dt time.Duration) {
	m.TickFall(dt)
	m.TickLockDelay(dt)
}

// SetSoftDrop switches gravity to the accelerated soft drop interval.
func (m *Machine) SetSoftDrop(on bool) {
	if m.softDrop == on {
		return
	}
	m.softDrop = on
	m.fallElapsed = 0
}

// Pause suspends both timers. Player movement and rotation still apply.
func (m *Machine) Pause() { m.paused = true }

// Resume restarts the timers where they were suspended.
func (m *Machine) Resume() { m.paused = false }

// TogglePause flips the pause flag and returns the new value.
func (m *Machine) TogglePause() bool {
	m.paused = !m.paused
	return m.paused
}

// Reset discards the active piece and empties the grid. Pause and soft drop
// are left as they are.
func (m *Machine) Reset() {
	m.grid.Clear()
	m.state = StateLocked
	m.piece = Piece{}
	m.fallElapsed = 0
	m.lockElapsed = 0
	m.lastKick = zero
	m.lastLocked = Shape{}
}

// resetLockDelay restarts a pending lock after a successful move or rotation.
// The piece goes back to falling if it is no longer grounded.
func (m *Machine) resetLockDelay() {
	if m.state != StateLockDelayPending {
		return
	}
	m.lockElapsed = 0
	if fits(m.piece.Translated(down), m.grid) {
		m.state = StateFalling
	}
}

func (m *Machine) lock() Shape {
	cells := m.piece.Cells()
	if err := m.grid.Occupy(cells[:], m.piece.Kind.Color()); err != nil {
		panic(fmt.Sprintf("locking %v: %v", m.piece, err))
	}

	m.lastLocked = cells
	m.lockCount++
	m.state = StateLocked
	m.piece = Piece{}
	m.fallElapsed = 0
	m.lockElapsed = 0
	return cells
}
