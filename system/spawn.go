package system

import (
	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/core"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/physics"
	"github.com/lixenwraith/asteroids/status"
	"github.com/lixenwraith/asteroids/vmath"
)

// quadrantSigns orders one shape vertex per quadrant so the quad never self-intersects
var quadrantSigns = [4]vmath.Vec2{
	{X: 1, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: -1},
	{X: 1, Y: -1},
}

// Spawner generates hostile bodies from an injected random source
type Spawner struct {
	cfg     *config.Config
	rng     vmath.Rand
	metrics *status.Registry
}

// NewSpawner binds the spawn tuning to rng; metrics may be nil
func NewSpawner(cfg *config.Config, rng vmath.Rand, metrics *status.Registry) *Spawner {
	return &Spawner{
		cfg:     cfg,
		rng:     rng,
		metrics: metrics,
	}
}

// RandomShape returns four unit vertices, one per quadrant, near-circular
// Degenerate samples are redrawn before normalizing
func (s *Spawner) RandomShape() []vmath.Vec2 {
	shape := make([]vmath.Vec2, 0, len(quadrantSigns))
	for _, sign := range quadrantSigns {
		for {
			off := vmath.V(
				sign.X*vmath.Uniform(s.rng, parameter.BodyVertexMinOffset, 1),
				sign.Y*vmath.Uniform(s.rng, parameter.BodyVertexMinOffset, 1),
			)
			if n, ok := off.NormalizeSafe(); ok {
				shape = append(shape, n)
				break
			}
		}
	}
	return shape
}

// edgePosition places a body in the danger-zone band on the edge it drifts away from
// The dominant velocity axis picks the edge; the other coordinate is uniform
func (s *Spawner) edgePosition(velocity vmath.Vec2) vmath.Vec2 {
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	m := s.cfg.Arena.DangerZoneMargin

	band := func(positive bool, max float64) float64 {
		if positive {
			return vmath.Uniform(s.rng, 0, m)
		}
		return vmath.Uniform(s.rng, max-m, max)
	}

	if abs(velocity.X) >= abs(velocity.Y) {
		return vmath.V(band(velocity.X > 0, w), vmath.Uniform(s.rng, 0, h))
	}
	return vmath.V(vmath.Uniform(s.rng, 0, w), band(velocity.Y > 0, h))
}

// Candidate samples one body without any placement constraint
func (s *Spawner) Candidate() *core.Body {
	b := s.cfg.Body
	velocity := vmath.UnitVector(s.rng).Scale(vmath.Uniform(s.rng, b.SpeedMin, b.SpeedMax))
	position := s.edgePosition(velocity)
	shape := s.RandomShape()
	rotation := vmath.RandomAngle(s.rng)
	scale := vmath.Uniform(s.rng, b.ScaleMin, b.ScaleMax)
	return core.NewBody(shape, position, velocity, rotation, scale)
}

// Spawn rejection-samples candidates until one is clear of the craft
// After MaxAttempts the last candidate is moved to the point antipodal to the
// craft on the torus. That point is clear whenever the body and craft reach
// together stay below half the smaller arena side, which Config.Validate
// enforces; an unvalidated config that still overlaps is counted under
// SpawnOverlap and the body is returned as placed
func (s *Spawner) Spawn(craft *core.Craft) *core.Body {
	var body *core.Body
	for attempt := 0; attempt < s.cfg.Spawn.MaxAttempts; attempt++ {
		body = s.Candidate()
		s.metrics.Add(status.SpawnAttempts, 1)
		if physics.ClearOfCraft(body.Bounds(), craft) {
			return body
		}
	}

	s.metrics.Add(status.SpawnFallback, 1)
	if body == nil {
		body = s.Candidate()
	}
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	body.Shape.SetPosition(wrapOnce(craft.Center().Add(vmath.V(w/2, h/2)), w, h))
	if !physics.ClearOfCraft(body.Bounds(), craft) {
		s.metrics.Add(status.SpawnOverlap, 1)
	}
	return body
}

// SpawnN returns n bodies, each placed clear of the craft
func (s *Spawner) SpawnN(craft *core.Craft, n int) []*core.Body {
	bodies := make([]*core.Body, 0, n)
	for i := 0; i < n; i++ {
		bodies = append(bodies, s.Spawn(craft))
	}
	return bodies
}

// wrapOnce folds a point that overshot by less than one arena length back inside
func wrapOnce(p vmath.Vec2, w, h float64) vmath.Vec2 {
	if p.X >= w {
		p.X -= w
	}
	if p.Y >= h {
		p.Y -= h
	}
	return p
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
