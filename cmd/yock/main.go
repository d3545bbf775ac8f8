package main

import (
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"net/http"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/yock/config"
	"github.com/plus3/yock/debugui"
	debugui_ebiten "github.com/plus3/yock/debugui/ebiten"
	"github.com/plus3/yock/frame"
	"github.com/plus3/yock/metrics"
	"github.com/plus3/yock/render"
	"github.com/plus3/yock/render/window"
	"github.com/plus3/yock/sim"
)

// Game implements ebiten.Game. Update steps the world inside an ImGui frame,
// Draw renders the sprites and then the overlay.
type Game struct {
	World     *sim.World
	Scheduler *frame.Scheduler
	Timer     *frame.Timer
	Overlay   *debugui.Overlay
	Renderer  *window.Renderer
	Imgui     *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	if !g.Overlay.InputState.WantCaptureKeyboard {
		if ebiten.IsKeyPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			g.Overlay.Hidden = !g.Overlay.Hidden
		}
	}

	g.Imgui.Frame(func() {
		g.Scheduler.Once(g.Timer.Delta())
	})
	if g.Scheduler.Stopped() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen, g.World.Sprites())
	g.Imgui.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.World.Config()
	g.Imgui.Layout(cfg.ScreenWidth, cfg.ScreenHeight)
	return cfg.ScreenWidth, cfg.ScreenHeight
}

func main() {
	envFile := flag.String("env", ".env", "Optional .env file with YOCK_* settings.")
	seed := flag.Uint64("seed", 0, "Spawner seed, overrides YOCK_SEED. Zero seeds from the clock.")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address, overrides YOCK_METRICS_ADDR.")
	initial := flag.Int("initial", 0, "Number of sprites to spawn before the first frame.")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}

	// The backend creates the window, so it has to exist before textures are
	// uploaded.
	imguiBackend := debugui_ebiten.NewImguiBackend(cfg.WindowTitle, cfg.Sim.ScreenWidth, cfg.Sim.ScreenHeight)

	textures := render.NewRegistry[*ebiten.Image]()
	loaders := window.PlaceholderLoaders(cfg.PlaceholderCount, max(cfg.Sim.SpriteWidth, cfg.Sim.SpriteHeight))
	if len(cfg.Textures) > 0 {
		loaders = window.FileLoaders(cfg.Textures...)
	}
	if err := textures.Load(loaders...); err != nil {
		if errors.Is(err, render.ErrEmptyRegistry) {
			log.Fatalf("No textures configured")
		}
		log.Fatalf("Failed to load textures: %v", err)
	}
	log.Printf("Loaded %d textures", textures.Len())

	seedValue := cfg.SeedOrNow()
	log.Printf("Spawner seed: %d", seedValue)
	rng := rand.New(rand.NewPCG(seedValue, seedValue^0x9e3779b97f4a7c15))

	world := sim.NewWorld(cfg.Sim, sim.NewSpawner(cfg.Sim, textures, rng))
	for range *initial {
		world.Spawn()
	}

	step := &sim.StepSystem{World: world}
	if cfg.MetricsAddr != "" {
		m := metrics.New()
		step.OnStep = m.Recorder(world)
		go func() {
			log.Printf("Serving metrics on %s", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, m.Handler()); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	scheduler := frame.NewScheduler(world.Storage())
	scheduler.Register(step)

	overlay := &debugui.Overlay{}
	overlay.Add(
		debugui.SimulationPanel(world, step),
		debugui.NewPerformanceStats(scheduler, 120).Item(),
	)
	scheduler.Register(overlay)

	game := &Game{
		World:     world,
		Scheduler: scheduler,
		Timer:     frame.NewTimer(),
		Overlay:   overlay,
		Renderer:  window.NewRenderer(textures),
		Imgui:     imguiBackend,
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game loop failed: %v", err)
	}
}
