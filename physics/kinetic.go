package physics

import (
	"github.com/lixenwraith/asteroids/core"
	"github.com/lixenwraith/asteroids/vmath"
)

// Integrate advances position by velocity over dt seconds
func Integrate(position, velocity vmath.Vec2, dt float64) vmath.Vec2 {
	return position.Add(velocity.Scale(dt))
}

// Turn rotates the craft by rate*dt; negative rate turns left
func Turn(c *core.Craft, rate, dt float64) {
	c.Body.Rotation += rate * dt
}

// Thrust adds heading*acceleration*dt to velocity; direction is +1 forward, -1 reverse
func Thrust(c *core.Craft, direction, dt float64) {
	c.Velocity = c.Velocity.Add(c.Heading().Scale(direction * c.Acceleration * dt))
}

// DecayAxis moves v toward zero by rate*dt, snapping to exactly zero inside the deadzone
// A step never crosses zero, so long frames cannot flip the sign
func DecayAxis(v, rate, deadzone, dt float64) float64 {
	switch {
	case v >= deadzone:
		return max(v-rate*dt, 0)
	case v <= -deadzone:
		return min(v+rate*dt, 0)
	default:
		return 0
	}
}

// Decay applies DecayAxis independently to both velocity components
func Decay(velocity vmath.Vec2, rate, deadzone, dt float64) vmath.Vec2 {
	return vmath.Vec2{
		X: DecayAxis(velocity.X, rate, deadzone, dt),
		Y: DecayAxis(velocity.Y, rate, deadzone, dt),
	}
}

// WrapAxis re-enters at the opposite edge: v<0 -> max-1, v>=max -> 0
func WrapAxis(v, max float64) float64 {
	if v < 0 {
		return max - 1
	}
	if v >= max {
		return 0
	}
	return v
}

// Wrap applies toroidal wrap to both axes, keeping p within [0,w) x [0,h)
func Wrap(p vmath.Vec2, width, height float64) vmath.Vec2 {
	return vmath.Vec2{
		X: WrapAxis(p.X, width),
		Y: WrapAxis(p.Y, height),
	}
}

// projectileWrapAxis clamps to the opposite edge and reports a crossing
func projectileWrapAxis(v, max float64) (float64, bool) {
	if v < 0 {
		return max, true
	}
	if v > max {
		return 0, true
	}
	return v, false
}

// AdvanceProjectile moves p along its direction and handles edge crossings
// Returns false once the projectile has wrapped maxWraps times and must be removed
func AdvanceProjectile(p *core.Projectile, speed, dt, width, height float64, maxWraps int) bool {
	pos := p.Position.Add(p.Direction.Scale(speed * dt))

	var crossedX, crossedY bool
	pos.X, crossedX = projectileWrapAxis(pos.X, width)
	pos.Y, crossedY = projectileWrapAxis(pos.Y, height)
	p.Position = pos

	if crossedX || crossedY {
		p.Wraps++
	}
	return p.Wraps < maxWraps
}
