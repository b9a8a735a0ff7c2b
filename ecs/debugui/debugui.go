// Package debugui provides immediate-mode GUI inspection for worlds
// using Dear ImGui. Panels render through ImguiItem components driven
// by ImguiSystem.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/grit/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// InputState reports whether Dear ImGui is consuming mouse or keyboard
// input this frame. Game input handling should skip captured devices.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem queues the render function of every ImguiItem entity.
// Render functions run deferred, after all systems, so panels observe
// the frame's final state.
type ImguiSystem struct {
	Input InputState
}

func (s *ImguiSystem) Execute(frame *ecs.Frame) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, e := range frame.Entities {
		item := ecs.Get[ImguiItem](frame.World, e)
		frame.Commands.Defer(item.Render)
	}
}

// Register wires the ImguiItem component and ImguiSystem into w. Call
// once, before spawning panels.
func Register(w *ecs.World) {
	bit := ecs.RegisterComponent[ImguiItem](w, "ImguiItem")
	ecs.RegisterSystem(w, &ImguiSystem{})
	ecs.SetSystemSignature[*ImguiSystem](w, ecs.NewSignature(bit))
}
