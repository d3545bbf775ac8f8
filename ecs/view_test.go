package ecs_test

import (
	"testing"

	"github.com/plus3/yock/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewGet(t *testing.T) {
	storage := newStorage()
	view := ecs.NewView[body](storage)

	moving := storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 3})
	still := storage.Spawn(Position{X: 5})

	b := view.Get(moving)
	require.NotNil(t, b)
	assert.Equal(t, Position{X: 1, Y: 2}, *b.Position)
	assert.Equal(t, Velocity{DX: 3}, *b.Velocity)

	b.Position.X = 10
	assert.Equal(t, 10, view.Get(moving).X, "views point at stored components")

	assert.Nil(t, view.Get(still), "archetype without velocity does not match")

	storage.Delete(moving)
	assert.Nil(t, view.Get(moving))
}

func TestViewIter(t *testing.T) {
	storage := newStorage()
	view := ecs.NewView[body](storage)

	for i := range 4 {
		storage.Spawn(Position{X: i}, Velocity{DX: 1})
	}
	storage.Spawn(Position{X: 100})
	storage.Spawn(Position{X: 200}, Velocity{}, Health(3))

	var xs []int
	for _, b := range view.Iter() {
		xs = append(xs, b.X)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 200}, xs, "archetypes in creation order, slots in order")
}

func TestViewIterDeleteWhileIterating(t *testing.T) {
	storage := newStorage()
	view := ecs.NewView[body](storage)

	for i := range 10 {
		storage.Spawn(Position{X: i}, Velocity{})
	}

	visited := map[int]int{}
	for id, b := range view.Iter() {
		visited[b.X]++
		if b.X%2 == 1 {
			storage.Delete(id)
		}
	}

	assert.Len(t, visited, 10)
	for x, n := range visited {
		assert.Equal(t, 1, n, "entity %d visited %d times", x, n)
	}

	var left []int
	for _, b := range view.Iter() {
		left = append(left, b.X)
	}
	assert.Equal(t, []int{0, 2, 4, 6, 8}, left)
}

func TestViewSpawn(t *testing.T) {
	storage := newStorage()
	view := ecs.NewView[body](storage)

	id := view.Spawn(body{Position: &Position{X: 7}, Velocity: &Velocity{DY: -1}})

	b := view.Get(id)
	require.NotNil(t, b)
	assert.Equal(t, 7, b.X)
	assert.Equal(t, -1, b.DY)
	assert.Equal(t, id.ArchetypeId(), storage.Spawn(Velocity{}, Position{}).ArchetypeId())

	assert.Panics(t, func() { view.Spawn(body{Position: &Position{}}) })
}

func TestQuery(t *testing.T) {
	storage := newStorage()
	query := ecs.NewQuery[body](storage)

	assert.Panics(t, func() {
		for range query.Iter() {
		}
	})

	a := storage.Spawn(Position{X: 1}, Velocity{DX: 2})
	storage.Spawn(Position{X: 5}, Velocity{DX: -1})

	query.Execute()
	require.Equal(t, 2, query.Len())

	for _, b := range query.Iter() {
		b.X += b.DX
	}

	id, first := query.At(0)
	assert.Equal(t, a, id)
	assert.Equal(t, 3, first.X)
	_, second := query.At(1)
	assert.Equal(t, 4, second.X)

	storage.Delete(a)
	query.Execute()
	assert.Equal(t, 1, query.Len())
}
