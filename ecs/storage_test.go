package ecs_test

import (
	"testing"

	"github.com/plus3/yock/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		archetypeId uint32
		index       uint32
	}{
		{archetypeId: 0, index: 0},
		{archetypeId: 12345, index: 67890},
		{archetypeId: 0xFFFFFFFF, index: 0xFFFFFFFF},
		{archetypeId: 1, index: 0},
	}

	for _, tt := range tests {
		id := ecs.NewEntityId(tt.archetypeId, tt.index)
		assert.Equal(t, tt.archetypeId, id.ArchetypeId())
		assert.Equal(t, tt.index, id.Index())
	}
}

func TestStorageSpawnAndDelete(t *testing.T) {
	storage := newStorage()

	a := storage.Spawn(Position{X: 1}, Velocity{DX: 1})
	b := storage.Spawn(Velocity{DX: 2}, Position{X: 2})
	c := storage.Spawn(Health(10))

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId(), "component order does not matter")
	assert.NotEqual(t, a.ArchetypeId(), c.ArchetypeId())
	assert.Equal(t, uint32(0), a.Index())
	assert.Equal(t, uint32(1), b.Index())
	assert.Equal(t, 3, storage.Len())

	storage.Delete(a)
	assert.Equal(t, 2, storage.Len())

	storage.Delete(a)
	storage.Delete(ecs.NewEntityId(0xDEAD, 3))
	assert.Equal(t, 2, storage.Len(), "deleting twice or deleting unknown ids is a no-op")

	d := storage.Spawn(Position{X: 4}, Velocity{DX: 4})
	assert.Equal(t, a, d, "the freed slot is reused")
	assert.Equal(t, 3, storage.Len())
}

func TestStorageSpawnPanics(t *testing.T) {
	storage := newStorage()

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(Tag("unregistered")) })
	assert.Panics(t, func() { storage.Spawn(Health(1), Health(2)) })
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
}

func TestStorageCompact(t *testing.T) {
	storage := newStorage()
	view := ecs.NewView[body](storage)

	var ids []ecs.EntityId
	for i := range 5 {
		ids = append(ids, storage.Spawn(Position{X: i}, Velocity{}))
	}
	storage.Delete(ids[1])
	storage.Delete(ids[3])

	storage.Compact()

	var xs []int
	var slots []uint32
	for id, b := range view.Iter() {
		xs = append(xs, b.X)
		slots = append(slots, id.Index())
	}
	assert.Equal(t, []int{0, 2, 4}, xs, "compaction keeps relative order")
	assert.Equal(t, []uint32{0, 1, 2}, slots)
	assert.Equal(t, 3, storage.Len())

	next := storage.Spawn(Position{X: 9}, Velocity{})
	assert.Equal(t, uint32(3), next.Index())
}

func TestStorageCompactEmpty(t *testing.T) {
	storage := newStorage()
	id := storage.Spawn(Health(1))
	storage.Delete(id)

	storage.Compact()

	assert.Equal(t, 0, storage.Len())
	again := storage.Spawn(Health(2))
	assert.Equal(t, uint32(0), again.Index())
}

func TestStorageAcrossBlocks(t *testing.T) {
	storage := newStorage()
	view := ecs.NewView[body](storage)

	first := storage.Spawn(Position{X: -1}, Velocity{})
	held := view.Get(first)
	require.NotNil(t, held)

	for i := range 200 {
		storage.Spawn(Position{X: i}, Velocity{})
	}
	require.Equal(t, 201, storage.Len())

	held.X = 42
	again := view.Get(first)
	require.NotNil(t, again)
	assert.Equal(t, 42, again.X, "component pointers survive later spawns")

	last := view.Get(ecs.NewEntityId(first.ArchetypeId(), 200))
	require.NotNil(t, last)
	assert.Equal(t, 199, last.X)
}
