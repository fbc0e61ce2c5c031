package core

import "github.com/lixenwraith/asteroids/vmath"

// Body is a hostile drifting quadrilateral
type Body struct {
	Shape    vmath.Transform
	Velocity vmath.Vec2
}

// NewBody builds a body and computes its world polygon
func NewBody(local []vmath.Vec2, position, velocity vmath.Vec2, rotation, scale float64) *Body {
	return &Body{
		Shape:    vmath.NewTransform(local, position, rotation, scale),
		Velocity: velocity,
	}
}

// Position is the representative point used for craft containment tests
func (b *Body) Position() vmath.Vec2 {
	return b.Shape.Position
}

// Scale returns the current body scale
func (b *Body) Scale() float64 {
	return b.Shape.Scale
}

// Bounds returns the axis-aligned box of the world polygon
func (b *Body) Bounds() vmath.Rect {
	return b.Shape.Bounds()
}

// Polygon returns a copy of the world vertices
func (b *Body) Polygon() []vmath.Vec2 {
	return append([]vmath.Vec2(nil), b.Shape.World...)
}
