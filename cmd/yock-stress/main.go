package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/plus3/yock/config"
	"github.com/plus3/yock/frame"
	"github.com/plus3/yock/metrics"
	"github.com/plus3/yock/render"
	"github.com/plus3/yock/render/snapshot"
	"github.com/plus3/yock/sim"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	initial := flag.Int("initial", 200, "The number of sprites to spawn before the first step.")
	interval := flag.Int("interval", 0, "Spawn interval in frames, clamped to [0, 60].")
	seed := flag.Uint64("seed", 0, "Spawner seed, overrides YOCK_SEED. Zero keeps the configured seed.")
	fixedStep := flag.Bool("fixed-step", true, "Step with a nominal 1/60s delta instead of wall-clock time.")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile to the current directory.")
	snapshotPath := flag.String("snapshot", "", "Write a PNG of the final frame to this path.")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address while running.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("Unknown profile mode %q, want cpu or mem", *profileMode)
	}

	log.Println("Starting sprite stress test...")

	// 1. Setup textures, world and scheduler
	colors := render.NewRegistry[color.Color]()
	if err := colors.Load(render.Values(snapshot.DefaultColors...)...); err != nil {
		log.Fatalf("Failed to load colors: %v", err)
	}

	seedValue := cfg.SeedOrNow()
	rng := rand.New(rand.NewPCG(seedValue, seedValue^0x9e3779b97f4a7c15))
	world := sim.NewWorld(cfg.Sim, sim.NewSpawner(cfg.Sim, colors, rng))
	world.SetSpawnInterval(*interval)

	step := &sim.StepSystem{World: world}
	if *metricsAddr != "" {
		m := metrics.New()
		step.OnStep = m.Recorder(world)
		go func() {
			log.Printf("Serving metrics on %s", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, m.Handler()); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	scheduler := frame.NewScheduler(world.Storage())
	scheduler.Register(step)

	// 2. Populate the world
	log.Printf("Spawning %d sprites...\n", *initial)
	for range *initial {
		world.Spawn()
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		RunID:          uuid.New(),
		Seed:           seedValue,
		Duration:       *duration,
		InitialSprites: *initial,
		SpawnInterval:  world.SpawnInterval(),
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	timer := frame.NewTimer()
	nominal := 1.0 / float64(cfg.Sim.ReferenceFPS)

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			dt := timer.Delta()
			if *fixedStep {
				dt = nominal
			}

			updateStart := time.Now()
			scheduler.Once(dt)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			report.PeakSprites = max(report.PeakSprites, world.Len())
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = int64(len(report.UpdateTime.Samples))
	report.UpdateTime.Finalize()
	report.Totals = world.Totals()
	report.Systems = scheduler.GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	if *snapshotPath != "" {
		renderer := snapshot.NewRenderer(colors, cfg.Sim.ScreenWidth, cfg.Sim.ScreenHeight)
		if err := renderer.Save(*snapshotPath, world.Sprites()); err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		log.Printf("Wrote snapshot to %s", *snapshotPath)
	}

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
