package core

import (
	"math"

	"github.com/lixenwraith/asteroids/vmath"
)

// craftShape is the unit triangle, nose at (0, 1)
var craftShape = []vmath.Vec2{
	{X: 0, Y: 1},
	vmath.V(-1, -1).Normalize(),
	vmath.V(1, -1).Normalize(),
}

// CraftShape returns a copy of the unit triangle
func CraftShape() []vmath.Vec2 {
	return append([]vmath.Vec2(nil), craftShape...)
}

// craftHitboxShape is the local bounding box of the triangle, as a quad
func craftHitboxShape() []vmath.Vec2 {
	c := vmath.BoundsOf(craftShape).Corners()
	return c[:]
}

// Craft is the player vessel
// Hitbox shares position, rotation and scale with Body so both caches move together
type Craft struct {
	Body         vmath.Transform
	Hitbox       vmath.Transform
	Velocity     vmath.Vec2
	Acceleration float64
}

// NewCraft places a stationary craft at position
func NewCraft(position vmath.Vec2, rotation, scale, acceleration float64) *Craft {
	return &Craft{
		Body:         vmath.NewTransform(craftShape, position, rotation, scale),
		Hitbox:       vmath.NewTransform(craftHitboxShape(), position, rotation, scale),
		Acceleration: acceleration,
	}
}

// Apply syncs the hitbox to the body transform and recomputes both world polygons
func (c *Craft) Apply() {
	c.Hitbox.Position = c.Body.Position
	c.Hitbox.Rotation = c.Body.Rotation
	c.Hitbox.Scale = c.Body.Scale
	c.Body.Apply()
	c.Hitbox.Apply()
}

// Center returns the craft position
func (c *Craft) Center() vmath.Vec2 {
	return c.Body.Position
}

// Heading is the unit thrust direction, aligned with the rotated nose vertex
func (c *Craft) Heading() vmath.Vec2 {
	return vmath.Direction(c.Body.Rotation + vmath.HalfPi)
}

// Nose returns the projectile spawn point one scale-length ahead of center
func (c *Craft) Nose() vmath.Vec2 {
	return c.Body.Position.Add(c.Heading().Scale(c.Body.Scale))
}

// Bounds returns the axis-aligned box of the world hitbox
func (c *Craft) Bounds() vmath.Rect {
	return c.Hitbox.Bounds()
}

// ProbePoints returns the hitbox corners followed by the center
// These are the points tested against a body's box
func (c *Craft) ProbePoints() []vmath.Vec2 {
	pts := make([]vmath.Vec2, 0, len(c.Hitbox.World)+1)
	pts = append(pts, c.Hitbox.World...)
	return append(pts, c.Body.Position)
}

// Reset recenters the craft at rest with the given defaults
func (c *Craft) Reset(position vmath.Vec2, rotation, acceleration float64) {
	c.Body.Position = position
	c.Body.Rotation = rotation
	c.Velocity = vmath.Vec2{}
	c.Acceleration = acceleration
	c.Apply()
}

// Speed returns the velocity magnitude
func (c *Craft) Speed() float64 {
	return math.Hypot(c.Velocity.X, c.Velocity.Y)
}
