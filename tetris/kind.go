package tetris

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L

	kindCount = 7
)

var kindNames = [kindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

// Kinds returns every tetromino kind in declaration order.
func Kinds() []Kind {
	return []Kind{I, O, T, S, Z, J, L}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Color returns the color tag locked cells of this kind are stored with.
func (k Kind) Color() Color {
	return Color(k) + 1
}

// Color tags an occupied grid cell. ColorNone is never stored in a Grid.
type Color uint8

const ColorNone Color = 0

// Kind returns the tetromino kind a color tag was produced from.
func (c Color) Kind() (Kind, bool) {
	if c == ColorNone || c > kindCount {
		return 0, false
	}
	return Kind(c - 1), true
}
