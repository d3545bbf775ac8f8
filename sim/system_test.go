package sim_test

import (
	"testing"

	"github.com/plus3/yock/frame"
	"github.com/plus3/yock/sim"
	"github.com/stretchr/testify/assert"
)

func TestStepSystem(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.SpawnInterval = 0
	world := sim.NewWorld(cfg, sim.NewSpawner(cfg, texturePool(2), seeded(3)))

	var observed []sim.StepStats
	system := &sim.StepSystem{
		World: world,
		OnStep: func(stats sim.StepStats) {
			observed = append(observed, stats)
		},
	}

	scheduler := frame.NewScheduler(world.Storage())
	scheduler.Register(system)

	scheduler.Once(1.0 / 60.0)
	scheduler.Once(1.0 / 60.0)

	assert.Len(t, observed, 2)
	assert.Equal(t, 1, observed[0].Spawned)
	assert.Equal(t, 2, system.Last.Active)
	assert.Equal(t, 2, world.Len())
	assert.Equal(t, "Simulation", scheduler.GetStats().Systems[0].Name)
}

func TestStepSystemPause(t *testing.T) {
	world := sim.NewWorld(sim.DefaultConfig(), nil)
	world.SetSpawnInterval(0)
	system := &sim.StepSystem{World: world, Paused: true}

	scheduler := frame.NewScheduler(world.Storage())
	scheduler.Register(system)

	steps := 0
	system.OnStep = func(sim.StepStats) { steps++ }

	scheduler.Once(1.0 / 60.0)
	scheduler.Once(1.0 / 60.0)
	assert.Equal(t, 0, steps, "paused system must not step")

	system.StepOnce()
	scheduler.Once(5.0)
	scheduler.Once(5.0)
	assert.Equal(t, 1, steps, "StepOnce advances exactly one frame")

	system.Paused = false
	scheduler.Once(1.0 / 60.0)
	assert.Equal(t, 2, steps)
}

func TestStepSystemDefersExpiry(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.MinLifetime = 1
	cfg.MaxLifetime = 2
	cfg.SpawnInterval = sim.MaxSpawnInterval
	world := sim.NewWorld(cfg, sim.NewSpawner(cfg, texturePool(1), seeded(9)))
	spawned := world.Spawn()

	system := &sim.StepSystem{World: world}
	scheduler := frame.NewScheduler(world.Storage())
	scheduler.Register(system)

	var lenDuringFrame, lenAtFlush int
	scheduler.Register(frame.SystemFunc(func(f *frame.UpdateFrame) {
		lenDuringFrame = world.Len()
		f.Commands.Defer(func() { lenAtFlush = world.Len() })
	}))

	scheduler.Once(1.0 / 60.0)

	assert.Equal(t, 1, system.Last.Expired)
	assert.Equal(t, 0, system.Last.Active)
	assert.Equal(t, 1, lenDuringFrame, "expired sprites stay until the frame is flushed")
	assert.Equal(t, 0, lenAtFlush)
	_, ok := world.Sprite(spawned.Id)
	assert.False(t, ok)
}
