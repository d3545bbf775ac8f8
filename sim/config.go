package sim

import (
	"errors"
	"fmt"
)

const (
	// MaxSpawnInterval is the upper bound of the live-tunable spawn interval.
	MaxSpawnInterval = 60
	// ReferenceFPS converts per-frame velocities into per-second motion.
	ReferenceFPS = 60
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds the tunables of a World and its Spawner.
type Config struct {
	ScreenWidth  int
	ScreenHeight int

	SpriteWidth  int
	SpriteHeight int

	// Speed magnitude range per axis, inclusive.
	MinSpeed int
	MaxSpeed int

	// Lifetime range in frames, MaxLifetime exclusive.
	MinLifetime int
	MaxLifetime int

	// SpawnInterval is the number of frames the spawn timer must exceed
	// before a new sprite is spawned.
	SpawnInterval int

	ReferenceFPS int
}

// DefaultConfig returns the configuration of the stock 800x600 scene.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   800,
		ScreenHeight:  600,
		SpriteWidth:   50,
		SpriteHeight:  50,
		MinSpeed:      1,
		MaxSpeed:      5,
		MinLifetime:   100,
		MaxLifetime:   400,
		SpawnInterval: 30,
		ReferenceFPS:  ReferenceFPS,
	}
}

// Validate checks that the config can produce well-formed sprites.
func (c Config) Validate() error {
	switch {
	case c.SpriteWidth <= 0 || c.SpriteHeight <= 0:
		return fmt.Errorf("%w: sprite size %dx%d must be positive", ErrInvalidConfig, c.SpriteWidth, c.SpriteHeight)
	case c.ScreenWidth <= c.SpriteWidth || c.ScreenHeight <= c.SpriteHeight:
		return fmt.Errorf("%w: screen %dx%d must be larger than sprite %dx%d",
			ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight, c.SpriteWidth, c.SpriteHeight)
	case c.MinSpeed < 1:
		return fmt.Errorf("%w: min speed %d must be at least 1", ErrInvalidConfig, c.MinSpeed)
	case c.MaxSpeed < c.MinSpeed:
		return fmt.Errorf("%w: max speed %d below min speed %d", ErrInvalidConfig, c.MaxSpeed, c.MinSpeed)
	case c.MinLifetime < 1:
		return fmt.Errorf("%w: min lifetime %d must be at least 1", ErrInvalidConfig, c.MinLifetime)
	case c.MaxLifetime <= c.MinLifetime:
		return fmt.Errorf("%w: max lifetime %d must exceed min lifetime %d", ErrInvalidConfig, c.MaxLifetime, c.MinLifetime)
	case c.SpawnInterval < 0 || c.SpawnInterval > MaxSpawnInterval:
		return fmt.Errorf("%w: spawn interval %d outside [0, %d]", ErrInvalidConfig, c.SpawnInterval, MaxSpawnInterval)
	case c.ReferenceFPS <= 0:
		return fmt.Errorf("%w: reference fps %d must be positive", ErrInvalidConfig, c.ReferenceFPS)
	}
	return nil
}
