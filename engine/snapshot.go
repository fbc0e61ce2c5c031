package engine

import (
	"time"

	"github.com/lixenwraith/asteroids/vmath"
)

// Snapshot is a read-only copy of world geometry for the renderer
// Every slice is freshly allocated; mutating it cannot affect the World
type Snapshot struct {
	Tick  uint64
	Phase GamePhase

	Width, Height float64

	Craft []vmath.Vec2
	// Hitbox is nil unless debug display is on
	Hitbox      []vmath.Vec2
	Bodies      [][]vmath.Vec2
	Projectiles []vmath.Vec2
	DangerZone  []vmath.Rect

	Score     int
	HighScore int
	Cooldown  time.Duration
	Debug     bool

	Events []Event
}

// Snapshot copies the current world state
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        w.Tick,
		Phase:       w.Phase,
		Width:       w.cfg.Arena.Width,
		Height:      w.cfg.Arena.Height,
		Craft:       append([]vmath.Vec2(nil), w.Craft.Body.World...),
		Bodies:      make([][]vmath.Vec2, 0, len(w.Bodies)),
		Projectiles: make([]vmath.Vec2, 0, len(w.Projectiles)),
		DangerZone:  append([]vmath.Rect(nil), w.dangerZone...),
		Score:       w.Score,
		HighScore:   w.HighScore,
		Cooldown:    w.Cooldown,
		Debug:       w.Debug,
		Events:      append([]Event(nil), w.events...),
	}
	if w.Debug {
		s.Hitbox = append([]vmath.Vec2(nil), w.Craft.Hitbox.World...)
	}
	for _, b := range w.Bodies {
		s.Bodies = append(s.Bodies, b.Polygon())
	}
	for _, p := range w.Projectiles {
		s.Projectiles = append(s.Projectiles, p.Position)
	}
	return s
}
