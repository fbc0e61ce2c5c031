package core

import "github.com/lixenwraith/asteroids/vmath"

// Projectile is a point shot travelling along a fixed unit direction
// Wraps counts edge crossings; the projectile expires on reaching the configured limit
type Projectile struct {
	Position  vmath.Vec2
	Direction vmath.Vec2
	Wraps     int
}

// NewProjectile fires from origin along direction
func NewProjectile(origin, direction vmath.Vec2) *Projectile {
	return &Projectile{
		Position:  origin,
		Direction: direction,
	}
}
