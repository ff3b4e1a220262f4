package tetris

// Rotation is one of the four orientations of a piece, cyclic in the order
// spawn, right, 180, left.
type Rotation uint8

const (
	RotationSpawn Rotation = iota
	RotationRight
	Rotation180
	RotationLeft

	rotationCount = 4
)

func (r Rotation) String() string {
	switch r {
	case RotationSpawn:
		return "0"
	case RotationRight:
		return "R"
	case Rotation180:
		return "2"
	case RotationLeft:
		return "L"
	}
	return "Rotation(?)"
}

// Step moves one position along the rotation cycle in the spin direction.
func (r Rotation) Step(spin Spin) Rotation {
	return Rotation((int(r) + int(spin) + rotationCount) % rotationCount)
}

// Spin is a rotation direction.
type Spin int8

const (
	SpinLeft  Spin = -1
	SpinRight Spin = 1
)

// Opposite returns the reverse spin.
func (s Spin) Opposite() Spin {
	return -s
}

func (s Spin) String() string {
	if s == SpinLeft {
		return "left"
	}
	return "right"
}

// Shift is a horizontal movement direction.
type Shift int8

const (
	ShiftLeft  Shift = -1
	ShiftRight Shift = 1
)
