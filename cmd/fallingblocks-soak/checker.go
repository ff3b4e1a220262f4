package main

import (
	"fmt"

	"github.com/plus3/fallingblocks/game"
	"github.com/plus3/fallingblocks/tetris"
)

// Checker verifies machine invariants between frames.
type Checker struct {
	GhostChecks int
	Frames      int
	Violations  []string

	lockedShape tetris.Shape
	locked      bool
}

// Locked is registered as the session's lock hook.
func (c *Checker) Locked(cells tetris.Shape) {
	c.lockedShape = cells
	c.locked = true
}

// HardDrop applies a hard drop and checks that the locked footprint is the
// ghost that was shown right before it.
func (c *Checker) HardDrop(session *game.Session) {
	ghost, ok := session.Machine().Ghost()
	if !ok {
		return
	}

	c.locked = false
	if !session.Apply(game.HardDrop) {
		c.violate("hard drop rejected with an active piece")
		return
	}
	c.GhostChecks++
	if !c.locked {
		c.violate("hard drop did not report a lock")
		return
	}
	if c.lockedShape != ghost {
		c.violate(fmt.Sprintf("hard drop locked %v, ghost showed %v", c.lockedShape, ghost))
	}
}

// Frame checks the state left behind by a frame.
func (c *Checker) Frame(m *tetris.Machine) {
	c.Frames++

	piece, ok := m.Piece()
	if !ok {
		return
	}
	cells := piece.Cells()
	if !m.Grid().CellsAreFree(cells[:]) {
		c.violate(fmt.Sprintf("frame %d: active piece %v overlaps the grid", c.Frames, piece))
	}

	grounded := tetris.DropDistance(piece, m.Grid()) == 0
	if m.State() == tetris.StateLockDelayPending && !grounded && !m.Paused() {
		c.violate(fmt.Sprintf("frame %d: lock delay pending for %v with room below", c.Frames, piece))
	}
	if m.LockElapsed() > 0 && m.State() != tetris.StateLockDelayPending {
		c.violate(fmt.Sprintf("frame %d: lock timer running in %v", c.Frames, m.State()))
	}
}

func (c *Checker) violate(msg string) {
	if len(c.Violations) < 100 {
		c.Violations = append(c.Violations, msg)
	}
}
