package ecs

import "iter"

// Query is a View whose matches are collected once per frame by Execute and
// then iterated by index. Systems that need random access or pairwise passes
// over the same entities use a Query.
type Query[T any] struct {
	view *View[T]

	entities   []EntityId
	components []T
	cacheValid bool
}

func NewQuery[T any](storage *Storage) *Query[T] {
	return &Query[T]{view: NewView[T](storage)}
}

// Execute collects the current matches. Call it after the frame's spawns and
// before iterating.
func (q *Query[T]) Execute() {
	q.entities = q.entities[:0]
	q.components = q.components[:0]

	for id, item := range q.view.Iter() {
		q.entities = append(q.entities, id)
		q.components = append(q.components, item)
	}

	q.cacheValid = true
}

// Len returns the number of entities collected by the last Execute.
func (q *Query[T]) Len() int {
	return len(q.entities)
}

// At returns the i-th match of the last Execute.
func (q *Query[T]) At(i int) (EntityId, T) {
	return q.entities[i], q.components[i]
}

// Iter returns an iterator over entity IDs and component data.
// Panics if Execute() has not been called.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(EntityId, T) bool) {
		for i := range q.entities {
			if !yield(q.entities[i], q.components[i]) {
				return
			}
		}
	}
}
