package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/yock/config"
	"github.com/plus3/yock/frame"
	"github.com/plus3/yock/metrics"
	"github.com/plus3/yock/render"
	"github.com/plus3/yock/render/term"
	"github.com/plus3/yock/sim"
)

const frameInterval = 16 * time.Millisecond

// InputSystem drains terminal events polled on another goroutine and applies
// them on the frame goroutine.
type InputSystem struct {
	Events <-chan tcell.Event
	World  *sim.World
	Step   *sim.StepSystem
	Screen tcell.Screen
}

func (s *InputSystem) Execute(f *frame.UpdateFrame) {
	for {
		select {
		case ev := <-s.Events:
			s.handle(f, ev)
		default:
			return
		}
	}
}

func (s *InputSystem) handle(f *frame.UpdateFrame, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.Screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			f.Commands.Stop()
			return
		case tcell.KeyRune:
		default:
			return
		}

		switch ev.Rune() {
		case 'q':
			f.Commands.Stop()
		case '+', '=':
			s.World.SetSpawnInterval(s.World.SpawnInterval() + 1)
		case '-', '_':
			s.World.SetSpawnInterval(s.World.SpawnInterval() - 1)
		case ' ':
			s.Step.Paused = !s.Step.Paused
		case '.':
			s.Step.StepOnce()
		case 's':
			s.World.Spawn()
		case 'c':
			s.World.Clear()
		}
	}
}

func (s *InputSystem) Name() string {
	return "Input"
}

// DrawSystem renders the world and a status line, then presents the screen.
// Drawing is deferred to the end of the frame so expired sprites are gone.
type DrawSystem struct {
	Screen   tcell.Screen
	World    *sim.World
	Step     *sim.StepSystem
	Renderer *term.Renderer
}

func (s *DrawSystem) Execute(f *frame.UpdateFrame) {
	f.Commands.Defer(s.draw)
}

func (s *DrawSystem) draw() {
	s.Renderer.Draw(s.Screen, s.World.Sprites())

	state := "running"
	if s.Step.Paused {
		state = "paused"
	}
	status := fmt.Sprintf(" sprites %d | spawn interval %d (+/-) | timer %d | %s (space, .) | s spawn | c clear | q quit ",
		s.World.Len(), s.World.SpawnInterval(), s.World.SpawnTimer(), state)

	_, rows := s.Screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	for x, r := range []rune(status) {
		s.Screen.SetContent(x, rows-1, r, nil, style)
	}
	s.Screen.Show()
}

func (s *DrawSystem) Name() string {
	return "Draw"
}

func main() {
	envFile := flag.String("env", ".env", "Optional .env file with YOCK_* settings.")
	seed := flag.Uint64("seed", 0, "Spawner seed, overrides YOCK_SEED. Zero seeds from the clock.")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address, overrides YOCK_METRICS_ADDR.")
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

	styles := render.NewRegistry[tcell.Style]()
	if err := styles.Load(render.Values(term.DefaultStyles...)...); err != nil {
		log.Fatalf("Failed to load styles: %v", err)
	}

	seedValue := cfg.SeedOrNow()
	rng := rand.New(rand.NewPCG(seedValue, seedValue^0x9e3779b97f4a7c15))
	world := sim.NewWorld(cfg.Sim, sim.NewSpawner(cfg.Sim, styles, rng))
	step := &sim.StepSystem{World: world}

	if cfg.MetricsAddr != "" {
		m := metrics.New()
		step.OnStep = m.Recorder(world)
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, m.Handler()); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	scheduler := frame.NewScheduler(world.Storage())
	scheduler.Register(&InputSystem{Events: events, World: world, Step: step, Screen: screen})
	scheduler.Register(step)
	scheduler.Register(&DrawSystem{
		Screen:   screen,
		World:    world,
		Step:     step,
		Renderer: term.NewRenderer(styles, cfg.Sim.ScreenWidth, cfg.Sim.ScreenHeight),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scheduler.Run(ctx, frameInterval)
}
