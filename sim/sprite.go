// Package sim implements the sprite simulation: spawning, kinematic
// integration, boundary bounce, pairwise collision response and expiration.
//
// The package does no rendering and no I/O. A frame driver calls World.Step
// once per frame and hands World.Sprites to whatever renders the frame.
package sim

import (
	"github.com/plus3/yock/ecs"
	"github.com/plus3/yock/geom"
)

// TextureID is a non-owning index into a texture registry owned by the render
// layer. The simulation copies it around and never releases it.
type TextureID uint32

// Velocity is a signed speed in screen units per nominal frame.
type Velocity struct {
	X, Y int
}

// Lifetime is the number of steps a sprite has left.
type Lifetime int

// Sprite is a copy of one active entity's components. The World stores
// sprites as entities with Bounds, Velocity, Lifetime and Texture components.
type Sprite struct {
	Id       ecs.EntityId
	Bounds   geom.Rect
	Velocity Velocity
	Lifetime int
	Texture  TextureID
}

// Expired reports whether the sprite has run out of lifetime.
func (s *Sprite) Expired() bool {
	return s.Lifetime <= 0
}

func (v *Velocity) reverse() {
	v.X = -v.X
	v.Y = -v.Y
}
