package ecs_test

import "github.com/plus3/yock/ecs"

type Position struct {
	X, Y int
}

type Velocity struct {
	DX, DY int
}

type Health int

type Tag string

type body struct {
	*Position
	*Velocity
}

func newStorage() *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	return ecs.NewStorage(registry)
}
