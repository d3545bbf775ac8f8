package frame

import "time"

// Timer measures the real time elapsed between frames.
type Timer struct {
	last time.Time
	now  func() time.Time
}

// NewTimer creates a timer whose first delta is measured from now.
func NewTimer() *Timer {
	return &Timer{
		last: time.Now(),
		now:  time.Now,
	}
}

// Delta returns the seconds elapsed since the previous call (or since the
// timer was created) and restarts the measurement.
func (t *Timer) Delta() float64 {
	now := t.now()
	delta := now.Sub(t.last).Seconds()
	t.last = now
	return delta
}
