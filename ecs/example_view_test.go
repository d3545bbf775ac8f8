package ecs_test

import (
	"fmt"

	"github.com/plus3/yock/ecs"
)

// ExampleView spawns entities through a view, moves them and deletes the ones
// that left the area, all while iterating.
func ExampleView() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	storage := ecs.NewStorage(registry)

	view := ecs.NewView[body](storage)
	view.Spawn(body{Position: &Position{X: 0}, Velocity: &Velocity{DX: 3}})
	view.Spawn(body{Position: &Position{X: 8}, Velocity: &Velocity{DX: 4}})
	view.Spawn(body{Position: &Position{X: 5}, Velocity: &Velocity{DX: -1}})

	for id, b := range view.Iter() {
		b.X += b.DX
		if b.X > 10 {
			storage.Delete(id)
		}
	}

	for id, b := range view.Iter() {
		fmt.Printf("entity %d at %d\n", id.Index(), b.X)
	}
	fmt.Println("alive:", storage.Len())

	// Output:
	// entity 0 at 3
	// entity 2 at 4
	// alive: 2
}
