package sim

import "github.com/plus3/yock/frame"

// StepSystem advances a World once per scheduler frame. Expired sprites are
// deleted through the frame's commands, so the scheduler must be built with
// the World's storage.
type StepSystem struct {
	World *World
	// OnStep, when set, receives the statistics of every step.
	OnStep func(stats StepStats)

	// Paused stops stepping until StepOnce is called or Paused is cleared.
	Paused bool

	Last StepStats

	stepRequested bool
}

// StepOnce makes a paused system advance exactly one nominal frame on the
// next scheduler frame.
func (s *StepSystem) StepOnce() {
	s.stepRequested = true
}

// Execute steps the world with the frame's delta time.
func (s *StepSystem) Execute(f *frame.UpdateFrame) {
	dt := f.DeltaTime
	if s.Paused {
		if !s.stepRequested {
			return
		}
		s.stepRequested = false
		dt = 1.0 / float64(s.World.Config().ReferenceFPS)
	}

	s.Last = s.World.step(dt, f.Commands.Delete)
	if s.OnStep != nil {
		s.OnStep(s.Last)
	}
}

// Name implements frame.Named.
func (s *StepSystem) Name() string {
	return "Simulation"
}
