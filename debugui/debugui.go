// Package debugui provides the Dear ImGui debug overlay: a frame system that
// queues ImGui windows after the simulation step, and the windows themselves.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/yock/frame"
)

// ImguiItem holds a Dear ImGui render function, called once per frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether ImGui is consuming mouse or keyboard input,
// so the driver can ignore input aimed at the overlay.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is a frame system that defers every item's render function to the
// end of the frame, after the simulation has stepped.
type Overlay struct {
	Items      []ImguiItem
	InputState ImguiInputState
	Hidden     bool
}

// Add appends items to the overlay.
func (o *Overlay) Add(items ...ImguiItem) {
	o.Items = append(o.Items, items...)
}

// Execute updates input state and queues all ImGui render functions.
func (o *Overlay) Execute(f *frame.UpdateFrame) {
	io := imgui.CurrentIO()
	o.InputState.WantCaptureMouse = io.WantCaptureMouse()
	o.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if o.Hidden {
		return
	}
	for _, item := range o.Items {
		f.Commands.Defer(item.Render)
	}
}

// Name implements frame.Named.
func (o *Overlay) Name() string {
	return "Imgui"
}
