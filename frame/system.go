// Package frame drives per-frame work: systems run in registration order once
// per frame, followed by any work they deferred to the end of the frame.
package frame

// System is a unit of per-frame work. Systems keep whatever state they need
// between frames in their own fields.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame)

// Execute calls f(frame).
func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}

// UpdateFrame is handed to every system during one scheduler pass.
type UpdateFrame struct {
	DeltaTime float64
	Index     uint64
	Commands  *Commands
}

func newUpdateFrame(dt float64, index uint64, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Index:     index,
		Commands:  commands,
	}
}
