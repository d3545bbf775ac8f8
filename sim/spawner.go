package sim

import (
	"math/rand/v2"

	"github.com/plus3/yock/geom"
)

// TexturePool is the part of a texture registry the Spawner needs: the number
// of textures, addressed as TextureID 0..Len()-1.
type TexturePool interface {
	Len() int
}

// Spawner produces sprites with randomized position, velocity, lifetime and
// texture.
type Spawner struct {
	cfg  Config
	pool TexturePool
	rng  *rand.Rand
}

// NewSpawner creates a spawner drawing from rng. Two spawners built from
// generators with the same seed produce the same sprites.
func NewSpawner(cfg Config, pool TexturePool, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:  cfg,
		pool: pool,
		rng:  rng,
	}
}

// Spawn returns a new sprite that fits entirely on screen. It panics if the
// texture pool is empty; callers check the registry before the frame loop.
func (s *Spawner) Spawn() Sprite {
	textures := s.pool.Len()
	if textures <= 0 {
		panic("sim: spawn from empty texture pool")
	}

	return Sprite{
		Bounds: geom.Rect{
			X: s.rng.IntN(s.cfg.ScreenWidth - s.cfg.SpriteWidth),
			Y: s.rng.IntN(s.cfg.ScreenHeight - s.cfg.SpriteHeight),
			W: s.cfg.SpriteWidth,
			H: s.cfg.SpriteHeight,
		},
		Velocity: Velocity{
			X: s.speed(),
			Y: s.speed(),
		},
		Lifetime: s.cfg.MinLifetime + s.rng.IntN(s.cfg.MaxLifetime-s.cfg.MinLifetime),
		Texture:  TextureID(s.rng.IntN(textures)),
	}
}

// speed returns a nonzero speed with a random sign.
func (s *Spawner) speed() int {
	v := s.cfg.MinSpeed + s.rng.IntN(s.cfg.MaxSpeed-s.cfg.MinSpeed+1)
	if s.rng.IntN(2) == 0 {
		return -v
	}
	return v
}
