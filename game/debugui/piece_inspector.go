package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fallingblocks/game"
	"github.com/plus3/fallingblocks/tetris"
)

// PieceInspector shows the state machine and lets the session be driven by
// hand. Pausing from here freezes gravity while the buttons keep working.
type PieceInspector struct{}

func NewPieceInspector() *PieceInspector {
	return &PieceInspector{}
}

func (pi *PieceInspector) Render(frame *game.UpdateFrame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 330), imgui.CondOnce)

	if !imgui.BeginV("Piece Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	session := frame.Session
	m := session.Machine()
	cfg := m.Config()

	if m.Paused() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}
	imgui.Text(fmt.Sprintf("State: %v", m.State()))

	if piece, ok := m.Piece(); ok {
		imgui.Text(fmt.Sprintf("Kind: %v  Rotation: %v", piece.Kind, piece.Rotation))
		imgui.Text(fmt.Sprintf("Pivot: %v", piece.Pivot))
		imgui.Text(fmt.Sprintf("Drop distance: %d", tetris.DropDistance(piece, m.Grid())))
	} else {
		imgui.Text("No active piece")
	}
	imgui.Text(fmt.Sprintf("Last kick: %v", m.LastKick()))

	imgui.Separator()
	fall := cfg.FallInterval
	if m.SoftDrop() {
		fall = cfg.SoftDropInterval()
	}
	imgui.Text("Fall timer")
	imgui.ProgressBarV(fraction(m.FallElapsed().Seconds(), fall.Seconds()), imgui.NewVec2(-1, 0),
		fmt.Sprintf("%v / %v", m.FallElapsed().Round(time.Millisecond), fall))
	imgui.Text("Lock delay")
	imgui.ProgressBarV(fraction(m.LockElapsed().Seconds(), cfg.LockDelay.Seconds()), imgui.NewVec2(-1, 0),
		fmt.Sprintf("%v / %v", m.LockElapsed().Round(time.Millisecond), cfg.LockDelay))

	imgui.Separator()
	paused := m.Paused()
	if imgui.Checkbox("Paused", &paused) {
		session.Queue(game.TogglePause)
	}
	soft := m.SoftDrop()
	if imgui.Checkbox("Soft drop", &soft) {
		if soft {
			session.Queue(game.SoftDropStart)
		} else {
			session.Queue(game.SoftDropStop)
		}
	}

	intentButton(session, "<", game.MoveLeft)
	imgui.SameLine()
	intentButton(session, ">", game.MoveRight)
	imgui.SameLine()
	intentButton(session, "Rotate L", game.RotateLeft)
	imgui.SameLine()
	intentButton(session, "Rotate R", game.RotateRight)
	intentButton(session, "Hard drop", game.HardDrop)
	imgui.SameLine()
	intentButton(session, "Reset", game.Reset)

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Spawned: %d  Locked: %d  Restarts: %d", session.Spawned(), m.LockCount(), session.Restarts()))
	imgui.Text(fmt.Sprintf("Intents applied: %d  rejected: %d", session.Applied(), session.Rejected()))

	imgui.End()
}

func intentButton(session *game.Session, label string, intent game.Intent) {
	if imgui.Button(label) {
		session.Queue(intent)
	}
}

func fraction(v, of float64) float32 {
	if of <= 0 {
		return 0
	}
	f := v / of
	if f > 1 {
		f = 1
	}
	return float32(f)
}
