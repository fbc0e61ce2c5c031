package engine

import (
	"time"

	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/core"
	"github.com/lixenwraith/asteroids/status"
	"github.com/lixenwraith/asteroids/system"
	"github.com/lixenwraith/asteroids/vmath"
)

// World is the complete simulation state
// It is owned by a single caller; Step is not safe for concurrent use and the
// renderer only ever sees Snapshot copies
type World struct {
	cfg *config.Config

	Craft       *core.Craft
	Bodies      []*core.Body
	Projectiles []*core.Projectile

	Score     int
	HighScore int

	// Cooldown is the current minimum time between shots
	Cooldown time.Duration
	// Now is simulation time, the sum of every dt stepped
	Now time.Duration
	// LastFire is the simulation time of the last shot
	LastFire time.Duration

	Phase GamePhase
	Debug bool
	Tick  uint64

	// Metrics may be nil
	Metrics *status.Registry

	spawner    *system.Spawner
	difficulty system.Difficulty
	reseeder   *system.Reseeder
	dangerZone []vmath.Rect
	events     []Event
}

// NewWorld creates a world with the craft centered and the initial bodies seeded
// rng drives every random decision; pass a seeded vmath.FastRand for replays
func NewWorld(cfg *config.Config, rng vmath.Rand, metrics *status.Registry) *World {
	w := &World{
		cfg:        cfg,
		Cooldown:   cfg.Weapon.Cooldown,
		Phase:      PhasePlaying,
		Metrics:    metrics,
		spawner:    system.NewSpawner(cfg, rng, metrics),
		difficulty: system.NewDifficulty(cfg.Weapon),
		reseeder:   system.NewReseeder(cfg.Spawn),
		dangerZone: system.DangerZone(cfg.Arena),
	}
	w.LastFire = -w.Cooldown
	w.Craft = core.NewCraft(w.center(), cfg.Craft.Rotation, cfg.Craft.Scale, cfg.Craft.Acceleration)
	w.Bodies = w.spawner.SpawnN(w.Craft, cfg.Spawn.Initial)
	return w
}

// Config returns the tuning the world was built with
func (w *World) Config() *config.Config {
	return w.cfg
}

func (w *World) center() vmath.Vec2 {
	return vmath.V(w.cfg.Arena.Width/2, w.cfg.Arena.Height/2)
}

func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}
