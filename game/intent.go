package game

import "fmt"

// Intent is a player action, already decoupled from the device that
// produced it.
type Intent uint8

const (
	MoveLeft Intent = iota
	MoveRight
	SoftDropStart
	SoftDropStop
	HardDrop
	RotateLeft
	RotateRight
	TogglePause
	Reset

	intentCount
)

var intentNames = [intentCount]string{
	MoveLeft:      "MoveLeft",
	MoveRight:     "MoveRight",
	SoftDropStart: "SoftDropStart",
	SoftDropStop:  "SoftDropStop",
	HardDrop:      "HardDrop",
	RotateLeft:    "RotateLeft",
	RotateRight:   "RotateRight",
	TogglePause:   "TogglePause",
	Reset:         "Reset",
}

// Intents returns every intent in declaration order.
func Intents() []Intent {
	out := make([]Intent, 0, intentCount)
	for i := range intentCount {
		out = append(out, i)
	}
	return out
}

func (i Intent) String() string {
	if i >= intentCount {
		return fmt.Sprintf("Intent(%d)", uint8(i))
	}
	return intentNames[i]
}
