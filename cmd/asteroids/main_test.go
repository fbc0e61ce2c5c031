package main

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/input"
	"github.com/lixenwraith/asteroids/render"
	"github.com/lixenwraith/asteroids/status"
	"github.com/lixenwraith/asteroids/vmath"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-seed", "nebula", "-mode", "interval", "-debug", "-config", "x.yaml"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, options{configPath: "x.yaml", seed: "nebula", mode: "interval", debug: true}, opts)

	_, err = parseFlags([]string{"-bogus"}, io.Discard)
	assert.Error(t, err)
}

func TestBuildConfig(t *testing.T) {
	cfg, err := buildConfig(options{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = buildConfig(options{configPath: "../../config/testdata/hard.yaml", seed: "42", mode: "batch"})
	require.NoError(t, err)
	assert.Equal(t, 200.0, cfg.Arena.Width)
	assert.Equal(t, "42", cfg.Seed)
	assert.Equal(t, config.SpawnBatch, cfg.Spawn.Mode)

	_, err = buildConfig(options{mode: "swarm"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")

	_, err = buildConfig(options{configPath: "missing.yaml"})
	assert.Error(t, err)
}

func TestBuildKeyTable(t *testing.T) {
	kt, err := buildKeyTable(nil)
	require.NoError(t, err)
	assert.Equal(t, input.DefaultKeyTable(), kt)

	kt, err = buildKeyTable(map[string]string{"w": "thrust", "k": "none"})
	require.NoError(t, err)
	assert.Equal(t, input.ActionThrust, kt.Runes['w'])
	_, bound := kt.Runes['k']
	assert.False(t, bound)

	_, err = buildKeyTable(map[string]string{"w": "teleport"})
	assert.ErrorContains(t, err, "config keys")
}

func newTestGame(t *testing.T) (*game, tcell.SimulationScreen, *status.Registry) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	metrics := status.NewRegistry()
	return &game{
		screen:   screen,
		world:    engine.NewWorld(config.Default(), vmath.NewFastRand(1), metrics),
		keyboard: input.NewKeyboard(nil, 0),
		renderer: render.NewRenderer(0, 0, metrics),
		clock:    engine.SystemClock{},
		logger:   zap.NewNop(),
	}, screen, metrics
}

func TestGameRunsUntilQuit(t *testing.T) {
	g, screen, metrics := newTestGame(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return g.pollEvents(ctx, cancel) })
	eg.Go(func() error { return g.loop(ctx) })

	require.Eventually(t, func() bool {
		return metrics.Count(status.TickCount) >= 3
	}, 2*time.Second, 10*time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, eg.Wait())
	assert.True(t, g.keyboard.QuitRequested())

	w, h := g.renderer.Buffer().Bounds()
	assert.Equal(t, 80, w)
	assert.Equal(t, 25, h)
	var bar strings.Builder
	for x := 0; x < 16; x++ {
		mainc, _, _, _ := screen.GetContent(x, 24)
		bar.WriteRune(mainc)
	}
	assert.Equal(t, " SCORE 0  HIGH 0", bar.String())
}

func TestGameStopsOnCancel(t *testing.T) {
	g, _, _ := newTestGame(t)

	ctx, cancel := context.WithCancel(context.Background())
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return g.pollEvents(ctx, cancel) })
	eg.Go(func() error { return g.loop(ctx) })

	time.Sleep(50 * time.Millisecond)
	cancel()
	assert.NoError(t, eg.Wait())
	assert.False(t, g.keyboard.QuitRequested())
}
