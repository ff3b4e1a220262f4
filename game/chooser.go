package game

import "github.com/plus3/fallingblocks/tetris"

// Chooser supplies the kind of the next piece to spawn.
type Chooser interface {
	Next() tetris.Kind
}

// Sequence cycles through a fixed list of kinds.
type Sequence struct {
	kinds []tetris.Kind
	pos   int
}

// NewSequence returns a chooser that repeats kinds in order. With no kinds it
// cycles through all seven.
func NewSequence(kinds ...tetris.Kind) *Sequence {
	if len(kinds) == 0 {
		kinds = tetris.Kinds()
	}
	for _, k := range kinds {
		if !k.Valid() {
			panic("sequence: invalid kind " + k.String())
		}
	}
	return &Sequence{kinds: kinds}
}

func (s *Sequence) Next() tetris.Kind {
	k := s.kinds[s.pos]
	s.pos = (s.pos + 1) % len(s.kinds)
	return k
}

// Peek returns the kind Next will return without advancing.
func (s *Sequence) Peek() tetris.Kind {
	return s.kinds[s.pos]
}
