// Package config loads process configuration: simulation defaults, optional
// .env files and YOCK_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/plus3/yock/sim"
)

// ErrInvalid is wrapped by every error caused by a malformed value. It is the
// same sentinel the simulation config reports.
var ErrInvalid = sim.ErrInvalidConfig

// Config is everything a driver needs before it enters the frame loop.
type Config struct {
	Sim sim.Config

	// Seed for the spawner's generator. Zero means seed from the current time.
	Seed uint64

	// Textures are image files for the window backend. Empty means generated
	// placeholders.
	Textures         []string
	PlaceholderCount int

	WindowTitle string
	MetricsAddr string
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Sim:              sim.DefaultConfig(),
		PlaceholderCount: 3,
		WindowTitle:      "YockEngine",
	}
}

// Load applies the given .env files (missing files are skipped) and then the
// process environment on top of Default, and validates the result. Variables
// already set in the environment win over .env files.
func Load(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"YOCK_SCREEN_WIDTH", &c.Sim.ScreenWidth},
		{"YOCK_SCREEN_HEIGHT", &c.Sim.ScreenHeight},
		{"YOCK_SPAWN_INTERVAL", &c.Sim.SpawnInterval},
		{"YOCK_MIN_LIFETIME", &c.Sim.MinLifetime},
		{"YOCK_MAX_LIFETIME", &c.Sim.MaxLifetime},
		{"YOCK_MAX_SPEED", &c.Sim.MaxSpeed},
		{"YOCK_PLACEHOLDERS", &c.PlaceholderCount},
	}
	for _, v := range ints {
		if err := envInt(v.key, v.dst); err != nil {
			return err
		}
	}

	var size int
	if err := envInt("YOCK_SPRITE_SIZE", &size); err != nil {
		return err
	}
	if size != 0 {
		c.Sim.SpriteWidth = size
		c.Sim.SpriteHeight = size
	}

	if raw, ok := os.LookupEnv("YOCK_SEED"); ok && raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: YOCK_SEED: %w", ErrInvalid, err)
		}
		c.Seed = seed
	}

	if raw := os.Getenv("YOCK_TEXTURES"); raw != "" {
		c.Textures = splitList(raw)
	}
	if title := os.Getenv("YOCK_WINDOW_TITLE"); title != "" {
		c.WindowTitle = title
	}
	c.MetricsAddr = os.Getenv("YOCK_METRICS_ADDR")
	return nil
}

// Validate checks the simulation config and the texture settings.
func (c Config) Validate() error {
	if err := c.Sim.Validate(); err != nil {
		return err
	}
	if len(c.Textures) == 0 && c.PlaceholderCount <= 0 {
		return fmt.Errorf("%w: no textures and no placeholders", ErrInvalid)
	}
	return nil
}

// SeedOrNow returns the configured seed, or one derived from the current time.
func (c Config) SeedOrNow() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// TextureCount returns how many textures the registry will hold.
func (c Config) TextureCount() int {
	if len(c.Textures) > 0 {
		return len(c.Textures)
	}
	return c.PlaceholderCount
}

func envInt(key string, dst *int) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
	}
	*dst = v
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
