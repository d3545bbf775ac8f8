package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View reads and spawns entities through a struct of component pointers.
// Every field of T must be a pointer to a registered component type, e.g.
//
//	type body struct {
//		Position *Position
//		Velocity *Velocity
//	}
//
// The view matches entities that have all of those components.
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	fieldOffset []uintptr
}

// NewView creates a view for the struct type T.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	types := make([]reflect.Type, 0, structType.NumField())
	fieldOffset := make([]uintptr, 0, structType.NumField())

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}
		types = append(types, field.Type.Elem())
		fieldOffset = append(fieldOffset, field.Offset)
	}

	return &View[T]{
		storage:     storage,
		types:       types,
		fieldOffset: fieldOffset,
	}
}

func (v *View[T]) matchesArchetype(archetype *Archetype) bool {
	for _, typ := range v.types {
		if archetype.column(typ) < 0 {
			return false
		}
	}
	return true
}

func (v *View[T]) storageIndices(archetype *Archetype) []int {
	indices := make([]int, len(v.types))
	for i, typ := range v.types {
		indices[i] = archetype.column(typ)
	}
	return indices
}

// populate points every field of the struct at resultPtr to the entity's
// components. It reports false if the slot is empty.
func (v *View[T]) populate(resultPtr unsafe.Pointer, archetype *Archetype, entityIndex int, storageIndices []int) bool {
	for i, storageIdx := range storageIndices {
		component := archetype.storages[storageIdx].Get(entityIndex)
		if component == nil {
			return false
		}

		fieldPtr := unsafe.Pointer(uintptr(resultPtr) + v.fieldOffset[i])
		*(*unsafe.Pointer)(fieldPtr) = (*iface)(unsafe.Pointer(&component)).data
	}
	return true
}

// Get returns the populated view struct for id, or nil if id is not a live
// entity with all of the view's components.
func (v *View[T]) Get(id EntityId) *T {
	archetype, ok := v.storage.archetypes[id.ArchetypeId()]
	if !ok || !v.matchesArchetype(archetype) {
		return nil
	}

	var result T
	if !v.populate(unsafe.Pointer(&result), archetype, int(id.Index()), v.storageIndices(archetype)) {
		return nil
	}
	return &result
}

// Iter yields every matching entity, archetypes in creation order and
// entities in slot order. Deleting the yielded entity during iteration is
// safe; spawning is not.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.order {
			if !v.matchesArchetype(archetype) {
				continue
			}

			storageIndices := v.storageIndices(archetype)
			var result T
			resultPtr := unsafe.Pointer(&result)

			for entityIndex := range archetype.storages[0].Iter() {
				if !v.populate(resultPtr, archetype, entityIndex, storageIndices) {
					continue
				}
				if !yield(NewEntityId(archetype.id, uint32(entityIndex)), result) {
					return
				}
			}
		}
	}
}

// Spawn creates an entity from the components data points at. Every field
// must be non-nil.
func (v *View[T]) Spawn(data T) EntityId {
	structPtr := unsafe.Pointer(&data)

	components := make([]any, len(v.types))
	for i, typ := range v.types {
		componentPtr := *(*unsafe.Pointer)(unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i]))
		if componentPtr == nil {
			panic("required component is nil in View.Spawn")
		}
		components[i] = reflect.NewAt(typ, componentPtr).Elem().Interface()
	}

	return v.storage.Spawn(components...)
}
