package frame

import "github.com/plus3/yock/ecs"

// Commands buffers work that must run after every system of the frame has
// executed: entity deletions, and deferred calls such as UI draws that read
// the final state of the frame.
type Commands struct {
	deletes []ecs.EntityId
	defers  []func()
	stop    bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Delete queues an entity deletion.
func (c *Commands) Delete(entity ecs.EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Defer queues fn to run when the frame is flushed. Deferred functions run in
// the order they were queued.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Stop asks the driver to end the frame loop after this frame.
func (c *Commands) Stop() {
	c.stop = true
}

// Flush applies queued deletions to storage, then runs every deferred
// function and resets the buffer. A function may queue more work while
// flushing; deferred calls run in the same flush, deletions in the next one.
// storage may be nil if no system queues deletions.
func (c *Commands) Flush(storage *ecs.Storage) {
	for _, id := range c.deletes {
		storage.Delete(id)
	}
	c.deletes = c.deletes[:0]

	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	clear(c.defers)
	c.defers = c.defers[:0]
}
