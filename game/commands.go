package game

import "github.com/plus3/fallingblocks/tetris"

// Commands buffers changes that replace the active piece so that systems
// later in the frame still see the state the frame started with. The buffer
// is applied by Flush at the end of the frame.
type Commands struct {
	reset  bool
	spawns []tetris.Kind
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues a spawn of kind.
func (c *Commands) Spawn(kind tetris.Kind) {
	c.spawns = append(c.spawns, kind)
}

// Reset queues a board reset. It is applied before any queued spawn.
func (c *Commands) Reset() {
	c.reset = true
}

// Defer queues a function to run after resets and spawns.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	n := len(c.spawns) + len(c.defers)
	if c.reset {
		n++
	}
	return n
}

// Flush applies every queued operation to session, resetting the buffer state.
func (c *Commands) Flush(session *Session) {
	if c.reset {
		session.Reset()
	}

	for _, kind := range c.spawns {
		session.Spawn(kind)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.reset = false
	c.spawns = c.spawns[:0]
	c.defers = c.defers[:0]
}
