package ecs

import (
	"iter"
	"reflect"
)

// componentStorage is a type-erased column of one component type.
type componentStorage interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Len() int
	Compact() map[int]int
	Iter() iter.Seq[int]
}

// ComponentRegistry knows how to build a column for every registered
// component type. Each Storage has its own registry.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentStorage
}

func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentStorage),
	}
}

// RegisterComponent registers T. Spawning an entity with an unregistered
// component type panics.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() componentStorage {
		return &blockStorage[T]{}
	}
}

func (r *ComponentRegistry) factory(t reflect.Type) func() componentStorage {
	return r.factories[t]
}

const blockSize = 64

// blockStorage keeps components in fixed-size blocks. Deleting leaves a hole
// that the next Append reuses, so the indices of live components never move
// until Compact.
type blockStorage[T any] struct {
	blocks    []*[blockSize]T
	filled    []*[blockSize]bool
	freeSlots []int
	nextIndex int
}

func (cs *blockStorage[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		return -1
	}

	var index int
	if n := len(cs.freeSlots); n > 0 {
		index = cs.freeSlots[n-1]
		cs.freeSlots = cs.freeSlots[:n-1]
	} else {
		index = cs.nextIndex
		cs.nextIndex++
		if index/blockSize >= len(cs.blocks) {
			cs.blocks = append(cs.blocks, new([blockSize]T))
			cs.filled = append(cs.filled, new([blockSize]bool))
		}
	}

	cs.blocks[index/blockSize][index%blockSize] = value
	cs.filled[index/blockSize][index%blockSize] = true
	return index
}

func (cs *blockStorage[T]) has(index int) bool {
	return index >= 0 && index < cs.nextIndex && cs.filled[index/blockSize][index%blockSize]
}

// Get returns a *T for a live index and nil otherwise. Blocks are allocated
// separately, so the pointer survives later appends.
func (cs *blockStorage[T]) Get(index int) any {
	if !cs.has(index) {
		return nil
	}
	return &cs.blocks[index/blockSize][index%blockSize]
}

func (cs *blockStorage[T]) Delete(index int) {
	if !cs.has(index) {
		return
	}
	var zero T
	cs.blocks[index/blockSize][index%blockSize] = zero
	cs.filled[index/blockSize][index%blockSize] = false
	cs.freeSlots = append(cs.freeSlots, index)
}

func (cs *blockStorage[T]) Len() int {
	return cs.nextIndex - len(cs.freeSlots)
}

// Compact moves live components to the front, keeping their relative order,
// and returns the old to new index mapping.
func (cs *blockStorage[T]) Compact() map[int]int {
	indexMap := make(map[int]int, cs.Len())
	write := 0
	for read := 0; read < cs.nextIndex; read++ {
		if !cs.has(read) {
			continue
		}
		indexMap[read] = write
		if read != write {
			cs.blocks[write/blockSize][write%blockSize] = cs.blocks[read/blockSize][read%blockSize]
			cs.filled[write/blockSize][write%blockSize] = true
		}
		write++
	}

	var zero T
	for i := write; i < cs.nextIndex; i++ {
		cs.blocks[i/blockSize][i%blockSize] = zero
		cs.filled[i/blockSize][i%blockSize] = false
	}

	blocks := (write + blockSize - 1) / blockSize
	clear(cs.blocks[blocks:])
	clear(cs.filled[blocks:])
	cs.blocks = cs.blocks[:blocks]
	cs.filled = cs.filled[:blocks]
	cs.freeSlots = cs.freeSlots[:0]
	cs.nextIndex = write
	return indexMap
}

// Iter yields every live index in ascending order.
func (cs *blockStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.nextIndex; i++ {
			if cs.filled[i/blockSize][i%blockSize] && !yield(i) {
				return
			}
		}
	}
}
