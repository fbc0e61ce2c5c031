package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/input"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/render"
	"github.com/lixenwraith/asteroids/status"
	"github.com/lixenwraith/asteroids/vmath"
)

type options struct {
	configPath string
	seed       string
	mode       string
	debug      bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("asteroids", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to a YAML configuration file")
	fs.StringVar(&opts.seed, "seed", "", "Random seed: integer or any string (default: wall clock)")
	fs.StringVar(&opts.mode, "mode", "", "Reseed policy: batch or interval")
	fs.BoolVar(&opts.debug, "debug", false, "Write a JSON log to logs/asteroids.log")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

// buildConfig loads the file (or defaults) and applies flag overrides
func buildConfig(opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if opts.seed != "" {
		cfg.Seed = opts.seed
	}
	if opts.mode != "" {
		cfg.Spawn.Mode = config.SpawnMode(opts.mode)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// buildKeyTable applies configured overrides to the default bindings
func buildKeyTable(bindings map[string]string) (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(bindings) == 0 {
		return base, nil
	}
	override, err := input.ParseBindings(bindings)
	if err != nil {
		return nil, fmt.Errorf("config keys: %w", err)
	}
	return input.MergeKeyTable(base, override), nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "asteroids: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	logger, err := setupLogging(opts.debug)
	if err != nil {
		return err
	}
	defer logger.Sync()
	logger = logger.With(zap.String("session", uuid.NewString()))

	seed := cfg.SeedValue(time.Now())
	logger.Info("starting",
		zap.Uint64("seed", seed),
		zap.String("spawn_mode", string(cfg.Spawn.Mode)),
		zap.Float64("arena_width", cfg.Arena.Width),
		zap.Float64("arena_height", cfg.Arena.Height),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(render.StyleBackground)
	screen.HideCursor()

	keys, err := buildKeyTable(cfg.Keys)
	if err != nil {
		return err
	}

	metrics := status.NewRegistry()
	g := &game{
		screen:   screen,
		world:    engine.NewWorld(cfg, vmath.NewFastRand(seed), metrics),
		keyboard: input.NewKeyboard(keys, input.DefaultHoldWindow),
		renderer: render.NewRenderer(0, 0, metrics),
		clock:    engine.SystemClock{},
		logger:   logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(guard(screen, func() error { return g.pollEvents(ctx, cancel) }))
	eg.Go(guard(screen, func() error { return g.loop(ctx) }))
	err = eg.Wait()

	logger.Info("stopped",
		zap.Int("high_score", max(g.world.HighScore, g.world.Score)),
		zap.Uint64("ticks", g.world.Tick),
	)
	return err
}

// guard restores the terminal and reports the stack if fn panics
func guard(screen tcell.Screen, fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mASTEROIDS CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		return fn()
	}
}

type game struct {
	screen   tcell.Screen
	world    *engine.World
	keyboard *input.Keyboard
	renderer *render.Renderer
	clock    engine.Clock
	logger   *zap.Logger
}

// pollEvents feeds key presses to the keyboard tracker until quit or shutdown
func (g *game) pollEvents(ctx context.Context, quit context.CancelFunc) error {
	for {
		ev := g.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			if g.keyboard.HandleEvent(ev, g.clock.Now()) == input.ActionQuit {
				g.logger.Info("quit requested")
				quit()
				return nil
			}
		}
	}
}

// loop steps the world and redraws on every accepted tick
func (g *game) loop(ctx context.Context) error {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()
	pacer := engine.NewPacer(g.clock, parameter.MinTickInterval, parameter.MaxTickInterval)

	var tracker input.Tracker
	cols, rows := -1, -1
	for {
		select {
		case <-ctx.Done():
			// Wake the poller blocked in PollEvent
			_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
			return nil
		case <-ticker.C:
		}

		dt, ok := pacer.Next()
		if !ok {
			continue
		}
		snap := g.world.Step(tracker.Next(g.keyboard.Flags(g.clock.Now())), dt)
		logEvents(g.logger, snap.Events)

		if w, h := g.screen.Size(); w != cols || h != rows {
			cols, rows = w, h
			g.renderer.Resize(w, h)
		}
		g.renderer.Draw(snap)
		g.renderer.Present(g.screen)
	}
}
