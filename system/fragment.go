package system

import (
	"github.com/lixenwraith/asteroids/core"
	"github.com/lixenwraith/asteroids/vmath"
)

// Fragment splits a struck body into 1-3 smaller children
// Children inherit shape and position, get a fresh rotation and a random
// direction at fragment speed; any child at or below the destroy scale is dropped
func (s *Spawner) Fragment(parent *core.Body) []*core.Body {
	f := s.cfg.Fragment
	n := f.CountMin + s.rng.Intn(f.CountMax-f.CountMin+1)

	children := make([]*core.Body, 0, n)
	for i := 0; i < n; i++ {
		scale := parent.Scale() / vmath.Uniform(s.rng, f.DivisorMin, f.DivisorMax)
		rotation := vmath.RandomAngle(s.rng)
		velocity := vmath.UnitVector(s.rng).Scale(f.Speed)
		if scale <= s.cfg.Body.ScaleDestroy {
			continue
		}
		children = append(children, core.NewBody(parent.Shape.Local, parent.Position(), velocity, rotation, scale))
	}
	return children
}

// Survives reports whether a body is above the destroy threshold
func (s *Spawner) Survives(b *core.Body) bool {
	return b.Scale() > s.cfg.Body.ScaleDestroy
}
