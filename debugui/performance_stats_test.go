package debugui

import (
	"testing"

	"github.com/plus3/yock/frame"
	"github.com/stretchr/testify/assert"
)

func TestPerformanceStatsAverage(t *testing.T) {
	ps := NewPerformanceStats(frame.NewScheduler(nil), 4)
	assert.Equal(t, float32(0), ps.AverageFrameTime())

	ps.Record(0.010)
	ps.Record(0.020)
	assert.InDelta(t, 15.0, ps.AverageFrameTime(), 1e-3)

	for range 4 {
		ps.Record(0.016)
	}
	assert.InDelta(t, 16.0, ps.AverageFrameTime(), 1e-3, "old samples roll out of the history")
}

func TestLessSystem(t *testing.T) {
	a := frame.SystemStats{Name: "a", AvgDuration: 3, MinDuration: 1, MaxDuration: 9}
	b := frame.SystemStats{Name: "b", AvgDuration: 2, MinDuration: 2, MaxDuration: 8}

	assert.True(t, lessSystem(a, b, 0))
	assert.False(t, lessSystem(a, b, 1))
	assert.True(t, lessSystem(a, b, 2))
	assert.False(t, lessSystem(a, b, 3))
}
