package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fallingblocks/game"
)

// BoardViewer dumps the board as text and exposes the row removal helpers,
// which nothing else in the game calls.
type BoardViewer struct {
	board   game.Board
	cleared int
}

func NewBoardViewer() *BoardViewer {
	return &BoardViewer{}
}

func (bv *BoardViewer) Render(frame *game.UpdateFrame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(320, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 520), imgui.CondOnce)

	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	m := frame.Session.Machine()
	grid := m.Grid()
	bv.board.Capture(m)

	imgui.Text(fmt.Sprintf("%dx%d, %d occupied", grid.Width(), grid.Height(), grid.Len()))
	imgui.Separator()
	for _, line := range bv.board.Lines() {
		imgui.Text(line)
	}
	imgui.Separator()

	full := grid.FullRows()
	imgui.Text(fmt.Sprintf("Full rows: %v", full))
	if imgui.Button("Clear full rows") {
		bv.cleared += grid.ClearFullRows()
	}
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("cleared %d", bv.cleared))

	imgui.End()
}
