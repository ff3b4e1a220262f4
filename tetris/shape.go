package tetris

// spawnShapes lists each kind's cells in the spawn orientation, relative to
// the pivot. The remaining orientations are derived by rotating clockwise.
var spawnShapes = [kindCount]Shape{
	I: {{-2, 0}, {-1, 0}, {0, 0}, {1, 0}},
	O: {{0, 1}, {1, 1}, {0, 0}, {1, 0}},
	T: {{0, 1}, {-1, 0}, {0, 0}, {1, 0}},
	S: {{0, 1}, {1, 1}, {-1, 0}, {0, 0}},
	Z: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
	J: {{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
	L: {{1, 1}, {-1, 0}, {0, 0}, {1, 0}},
}

// pivotOnCorner marks kinds whose pivot sits on a cell corner rather than a
// cell center. The I piece rotates this way, which shifts it by one cell on
// some transitions; its kick table compensates.
var pivotOnCorner = [kindCount]bool{I: true}

// fixedShape marks kinds that look identical in every orientation.
var fixedShape = [kindCount]bool{O: true}

var shapeTable = buildShapeTable()

func buildShapeTable() [kindCount][rotationCount]Shape {
	var table [kindCount][rotationCount]Shape
	for k := range Kind(kindCount) {
		shape := spawnShapes[k]
		for r := range Rotation(rotationCount) {
			table[k][r] = shape
			if !fixedShape[k] {
				shape = rotateShape(shape, pivotOnCorner[k])
			}
		}
	}
	return table
}

// rotateShape turns every offset a quarter turn clockwise. Around a corner
// the cell center (x+0.5, y+0.5) is rotated instead, which lands on (y, -x-1).
func rotateShape(shape Shape, aroundCorner bool) Shape {
	var out Shape
	for i, c := range shape {
		if aroundCorner {
			out[i] = Cell{X: c.Y, Y: -c.X - 1}
		} else {
			out[i] = Cell{X: c.Y, Y: -c.X}
		}
	}
	return out
}

// OffsetsFor returns the four pivot-relative offsets of kind in rotation.
func OffsetsFor(kind Kind, rotation Rotation) Shape {
	return shapeTable[kind][rotation]
}
