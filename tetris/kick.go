package tetris

// KickFamily holds the kick trials for one family of pieces, indexed by the
// rotation a piece turns from. Every list starts with the zero offset.
type KickFamily struct {
	right [rotationCount][]Cell
	left  [rotationCount][]Cell
}

// NewKickFamily builds a family from per-rotation offset lists. The zero
// offset is prepended to every list, so callers only supply actual kicks.
func NewKickFamily(right, left [rotationCount][]Cell) *KickFamily {
	f := &KickFamily{}
	for r := range rotationCount {
		f.right[r] = withZero(right[r])
		f.left[r] = withZero(left[r])
	}
	return f
}

func withZero(kicks []Cell) []Cell {
	out := make([]Cell, 0, len(kicks)+1)
	out = append(out, zero)
	return append(out, kicks...)
}

// Trials returns the ordered offsets to try when turning from in spin
// direction. The returned slice must not be modified.
func (f *KickFamily) Trials(from Rotation, spin Spin) []Cell {
	if spin == SpinLeft {
		return f.left[from%rotationCount]
	}
	return f.right[from%rotationCount]
}

var zeroTrials = []Cell{zero}

// KickTable maps each piece kind to its kick family. Kinds without a family
// only ever try the plain rotation.
type KickTable struct {
	families [kindCount]*KickFamily
}

// NewKickTable creates a table from the given assignments.
func NewKickTable(families map[Kind]*KickFamily) *KickTable {
	t := &KickTable{}
	for kind, family := range families {
		if !kind.Valid() {
			panic("kick table: invalid kind " + kind.String())
		}
		t.families[kind] = family
	}
	return t
}

// TrialsFor returns the ordered kick offsets for turning kind from one
// rotation to the next. The first entry is always the zero offset.
// Transitions that are not a single step only try the plain rotation.
func (t *KickTable) TrialsFor(kind Kind, from, to Rotation) []Cell {
	family := t.families[kind]
	if family == nil {
		return zeroTrials
	}

	switch to {
	case from.Step(SpinRight):
		return family.Trials(from, SpinRight)
	case from.Step(SpinLeft):
		return family.Trials(from, SpinLeft)
	}
	return zeroTrials
}

// StandardKicks is the SRS family shared by J, L, S, T and Z.
var StandardKicks = NewKickFamily(
	[rotationCount][]Cell{
		RotationSpawn: {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		RotationRight: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
		Rotation180:   {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
		RotationLeft:  {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	},
	[rotationCount][]Cell{
		RotationSpawn: {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
		RotationRight: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
		Rotation180:   {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		RotationLeft:  {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	},
)

// IKicks is the family for the I piece.
var IKicks = NewKickFamily(
	[rotationCount][]Cell{
		RotationSpawn: {{-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		RotationRight: {{-1, 0}, {2, 0}, {-1, -2}, {2, -1}},
		Rotation180:   {{2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		RotationLeft:  {{1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	},
	[rotationCount][]Cell{
		RotationSpawn: {{-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		RotationRight: {{2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		Rotation180:   {{1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		RotationLeft:  {{-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	},
)

// NoKicks only tries the plain rotation.
var NoKicks = NewKickFamily([rotationCount][]Cell{}, [rotationCount][]Cell{})

// DefaultKickTable returns the SRS assignment of families to kinds.
func DefaultKickTable() *KickTable {
	return NewKickTable(map[Kind]*KickFamily{
		I: IKicks,
		O: NoKicks,
		T: StandardKicks,
		S: StandardKicks,
		Z: StandardKicks,
		J: StandardKicks,
		L: StandardKicks,
	})
}
