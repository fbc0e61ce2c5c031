package engine

import (
	"time"

	"github.com/lixenwraith/asteroids/core"
	"github.com/lixenwraith/asteroids/input"
	"github.com/lixenwraith/asteroids/physics"
	"github.com/lixenwraith/asteroids/status"
)

// Step advances the simulation by dt using one input frame and returns the
// resulting snapshot. dt <= 0 leaves the world untouched
//
// Pipeline: craft -> fire -> bodies -> projectiles -> hits and fragmentation
// -> prune -> reseed -> craft collision and reset -> snapshot
func (w *World) Step(frame input.Frame, dt time.Duration) Snapshot {
	w.events = w.events[:0]
	if dt <= 0 {
		return w.Snapshot()
	}

	w.Tick++
	w.Now += dt
	secs := dt.Seconds()

	if frame.DebugToggled() {
		w.Debug = !w.Debug
	}

	w.stepCraft(frame, secs)
	w.fire(frame)
	w.stepBodies(secs)
	w.stepProjectiles(secs)
	w.resolveHits()
	w.reseed(dt)

	if physics.FirstCraftHit(w.Craft, w.Bodies) >= 0 {
		w.reset()
	}

	w.Metrics.Add(status.TickCount, 1)
	w.Metrics.Set(status.TickRate, 1/secs)
	w.Metrics.Set(status.BodyLive, float64(len(w.Bodies)))
	w.Metrics.Set(status.ProjectileLive, float64(len(w.Projectiles)))

	return w.Snapshot()
}

func (w *World) stepCraft(frame input.Frame, dt float64) {
	c := w.Craft
	cfg := w.cfg.Craft

	physics.Turn(c, frame.Turn()*cfg.TurnRate, dt)
	if frame.Thrusting() {
		physics.Thrust(c, frame.ThrustDirection(), dt)
	} else {
		c.Velocity = physics.Decay(c.Velocity, c.Acceleration/cfg.DecayDivisor, cfg.Deadzone, dt)
	}

	pos := physics.Integrate(c.Body.Position, c.Velocity, dt)
	c.Body.Position = physics.Wrap(pos, w.cfg.Arena.Width, w.cfg.Arena.Height)
	c.Apply()
}

// fire spawns a projectile on a rising fire edge once the cooldown has elapsed
func (w *World) fire(frame input.Frame) {
	if !frame.FirePressed() || w.Now-w.LastFire < w.Cooldown {
		return
	}
	p := core.NewProjectile(w.Craft.Nose(), w.Craft.Heading())
	w.Projectiles = append(w.Projectiles, p)
	w.LastFire = w.Now
	w.emit(Event{Type: EventFire, Position: p.Position})
}

func (w *World) stepBodies(dt float64) {
	for _, b := range w.Bodies {
		pos := physics.Integrate(b.Position(), b.Velocity, dt)
		b.Shape.SetPosition(physics.Wrap(pos, w.cfg.Arena.Width, w.cfg.Arena.Height))
	}
}

// stepProjectiles moves every projectile and drops those past their wrap limit
func (w *World) stepProjectiles(dt float64) {
	cfg := w.cfg.Projectile
	live := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if physics.AdvanceProjectile(p, cfg.Speed, dt, w.cfg.Arena.Width, w.cfg.Arena.Height, cfg.MaxWraps) {
			live = append(live, p)
		}
	}
	clearTail(w.Projectiles, len(live))
	w.Projectiles = live
}

// resolveHits runs the projectile/body pass in two phases
// Phase one only marks: each body consumes at most one projectile and each
// projectile strikes at most one body; fragments go to a staging list.
// Phase two compacts both collections and appends the staged fragments
func (w *World) resolveHits() {
	if len(w.Projectiles) == 0 {
		w.pruneBodies(nil, nil)
		return
	}

	consumed := make([]bool, len(w.Projectiles))
	destroyed := make([]bool, len(w.Bodies))
	var staged []*core.Body

	for i, b := range w.Bodies {
		for j, p := range w.Projectiles {
			if consumed[j] || !physics.PointInBody(p.Position, b) {
				continue
			}
			consumed[j] = true
			destroyed[i] = true

			w.Score = w.difficulty.Award(w.Score, w.Craft, &w.Cooldown)
			w.Metrics.Add(status.BodyDestroyed, 1)
			w.emit(Event{Type: EventBodyDestroyed, Position: b.Position(), Score: w.Score})

			children := w.spawner.Fragment(b)
			if len(children) > 0 {
				staged = append(staged, children...)
				w.emit(Event{Type: EventFragment, Position: b.Position(), Count: len(children)})
			}
			break
		}
	}

	live := w.Projectiles[:0]
	for j, p := range w.Projectiles {
		if !consumed[j] {
			live = append(live, p)
		}
	}
	clearTail(w.Projectiles, len(live))
	w.Projectiles = live

	w.pruneBodies(destroyed, staged)
}

// pruneBodies drops destroyed and undersized bodies, then appends staged ones
func (w *World) pruneBodies(destroyed []bool, staged []*core.Body) {
	live := w.Bodies[:0]
	for i, b := range w.Bodies {
		if destroyed != nil && destroyed[i] {
			continue
		}
		if !w.spawner.Survives(b) {
			continue
		}
		live = append(live, b)
	}
	clearTail(w.Bodies, len(live))
	w.Bodies = live

	for _, b := range staged {
		if w.spawner.Survives(b) {
			w.Bodies = append(w.Bodies, b)
		}
	}
}

func (w *World) reseed(dt time.Duration) {
	n := w.reseeder.Due(len(w.Bodies), w.Score, dt)
	if n == 0 {
		return
	}
	w.Bodies = append(w.Bodies, w.spawner.SpawnN(w.Craft, n)...)
	w.emit(Event{Type: EventSpawn, Count: n})
}

// clearTail nils out pointers past n so compacted slices release them
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
