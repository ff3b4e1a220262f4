// Package debugui provides Dear ImGui debug windows for a running game
// session. Windows are rendered by ImguiSystem at the end of each frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fallingblocks/game"
)

// Window renders one Dear ImGui window for the current frame.
type Window interface {
	Render(frame *game.UpdateFrame)
}

// WindowFunc adapts a plain function to a Window.
type WindowFunc func(frame *game.UpdateFrame)

func (f WindowFunc) Render(frame *game.UpdateFrame) { f(frame) }

// ImguiInputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render of every window to the end of the frame, after
// the frame's spawns and resets have been applied.
type ImguiSystem struct {
	Windows    []Window
	InputState ImguiInputState
}

// Add registers w after the existing windows.
func (i *ImguiSystem) Add(w Window) {
	i.Windows = append(i.Windows, w)
}

// Execute updates input state and queues all window renders for execution.
func (i *ImguiSystem) Execute(frame *game.UpdateFrame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, w := range i.Windows {
		frame.Commands.Defer(func() { w.Render(frame) })
	}
}

// Install registers an ImguiSystem with the standard windows on scheduler,
// followed by any extra windows.
func Install(scheduler *game.Scheduler, extra ...Window) *ImguiSystem {
	system := &ImguiSystem{}
	system.Add(NewPieceInspector())
	system.Add(NewBoardViewer())
	system.Add(NewPerformanceStats(scheduler, 120))
	for _, w := range extra {
		system.Add(w)
	}
	scheduler.Register(system)
	return system
}
