package frame

import (
	"testing"
	"time"

	"github.com/plus3/yock/ecs"
	"github.com/stretchr/testify/assert"
)

func TestCommandsFlush(t *testing.T) {
	c := newCommands()
	var calls []int

	c.Defer(func() { calls = append(calls, 1) })
	c.Defer(func() {
		calls = append(calls, 2)
		c.Defer(func() { calls = append(calls, 3) })
	})
	assert.Len(t, c.defers, 2)

	c.Flush(nil)

	assert.Equal(t, []int{1, 2, 3}, calls)
	assert.Empty(t, c.defers)

	c.Flush(nil)
	assert.Equal(t, []int{1, 2, 3}, calls, "flushed work must not run twice")
}

type health int

func TestCommandsDelete(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[health](registry)
	storage := ecs.NewStorage(registry)

	first := storage.Spawn(health(3))
	second := storage.Spawn(health(5))

	c := newCommands()
	var seen int
	c.Delete(first)
	c.Defer(func() { seen = storage.Len() })
	assert.Equal(t, 2, storage.Len(), "deletions wait for the flush")

	c.Flush(storage)

	assert.Equal(t, 1, seen, "deferred work observes applied deletions")
	assert.Equal(t, 1, storage.Len())
	assert.Empty(t, c.deletes)

	c.Delete(second)
	c.Delete(second)
	c.Flush(storage)
	assert.Equal(t, 0, storage.Len())
}

func TestTimerDelta(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	timer := &Timer{last: base, now: func() time.Time { return now }}

	now = base.Add(16 * time.Millisecond)
	assert.InDelta(t, 0.016, timer.Delta(), 1e-9)

	now = now.Add(500 * time.Millisecond)
	assert.InDelta(t, 0.5, timer.Delta(), 1e-9)

	assert.Equal(t, 0.0, timer.Delta())
}
