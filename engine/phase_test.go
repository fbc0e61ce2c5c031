package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/core"
	"github.com/lixenwraith/asteroids/input"
	"github.com/lixenwraith/asteroids/status"
	"github.com/lixenwraith/asteroids/vmath"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to GamePhase
		want     bool
	}{
		{PhasePlaying, PhaseReset, true},
		{PhaseReset, PhasePlaying, true},
		{PhasePlaying, PhasePlaying, false},
		{PhaseReset, PhaseReset, false},
		{GamePhase(9), PhasePlaying, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestGamePhaseString(t *testing.T) {
	assert.Equal(t, "Playing", PhasePlaying.String())
	assert.Equal(t, "Reset", PhaseReset.String())
	assert.Equal(t, "Unknown", GamePhase(9).String())
}

func TestCraftCollisionResets(t *testing.T) {
	metrics := status.NewRegistry()
	w := NewWorld(config.Default(), vmath.NewFastRand(20), metrics)
	w.Craft.Velocity = vmath.V(3, -2)
	w.Craft.Body.Rotation += 1
	w.Craft.Acceleration = 31
	w.Cooldown = 900 * time.Millisecond
	w.Score = 7
	w.HighScore = 4
	w.Bodies = []*core.Body{staticBody(w.Craft.Center(), 8)}
	w.Projectiles = []*core.Projectile{core.NewProjectile(vmath.V(150, 10), vmath.V(0, 1))}

	snap := w.Step(input.Frame{}, tick)
	cfg := w.Config()

	assert.Equal(t, PhasePlaying, w.Phase)
	require.Len(t, w.Bodies, 1)
	assert.False(t, w.Bodies[0].Bounds().ContainsAny(w.Craft.ProbePoints()...))
	assert.Empty(t, w.Projectiles)
	assert.Equal(t, 0, w.Score)
	assert.Equal(t, 7, w.HighScore)
	assert.Equal(t, vmath.V(cfg.Arena.Width/2, cfg.Arena.Height/2), w.Craft.Center())
	assert.Equal(t, vmath.Vec2{}, w.Craft.Velocity)
	assert.Equal(t, cfg.Craft.Rotation, w.Craft.Body.Rotation)
	assert.Equal(t, cfg.Craft.Acceleration, w.Craft.Acceleration)
	assert.Equal(t, cfg.Weapon.Cooldown, w.Cooldown)
	assert.Equal(t, int64(1), metrics.Count(status.ResetCount))

	require.NotEmpty(t, snap.Events)
	last := snap.Events[len(snap.Events)-1]
	assert.Equal(t, EventReset, last.Type)
	assert.Equal(t, 7, last.Score)
	assert.Equal(t, 7, last.HighScore)
	assert.Equal(t, 0, snap.Score)
}

func TestResetKeepsHigherHighScore(t *testing.T) {
	w := newTestWorld(21)
	w.Score = 3
	w.HighScore = 10
	w.Bodies = []*core.Body{staticBody(w.Craft.Center(), 8)}

	w.Step(input.Frame{}, tick)
	assert.Equal(t, 0, w.Score)
	assert.Equal(t, 10, w.HighScore)
}

func TestFireAllowedRightAfterReset(t *testing.T) {
	w := newTestWorld(22)
	w.Step(input.Frame{Current: input.Flags{Fire: true}}, tick)
	require.Len(t, w.Projectiles, 1)

	w.Bodies = []*core.Body{staticBody(w.Craft.Center(), 8)}
	w.Step(input.Frame{}, tick)
	require.Empty(t, w.Projectiles)

	w.Step(input.Frame{Current: input.Flags{Fire: true}}, tick)
	assert.Len(t, w.Projectiles, 1)
}
