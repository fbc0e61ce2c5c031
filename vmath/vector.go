package vmath

import "math"

// Vec2 is a point or direction in world units
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns a + b
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale multiplies both components by s
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{X: a.X * s, Y: a.Y * s}
}

// Magnitude returns the Euclidean length
func (a Vec2) Magnitude() float64 {
	return math.Hypot(a.X, a.Y)
}

// MagnitudeSq returns squared length without sqrt
func (a Vec2) MagnitudeSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Dot returns a·b
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Normalize returns a / |a|
// Caller guarantees |a| > 0; the zero vector yields NaN components
func (a Vec2) Normalize() Vec2 {
	mag := math.Sqrt(a.X*a.X + a.Y*a.Y)
	return Vec2{X: a.X / mag, Y: a.Y / mag}
}

// NormalizeSafe returns the unit vector and false for degenerate input
// Use when the vector comes from random sampling and may collapse to zero
func (a Vec2) NormalizeSafe() (Vec2, bool) {
	mag := a.Magnitude()
	if mag < Epsilon || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return Vec2{}, false
	}
	return Vec2{X: a.X / mag, Y: a.Y / mag}, true
}

// IsFinite reports whether both components are finite numbers
func (a Vec2) IsFinite() bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) && !math.IsNaN(a.Y) && !math.IsInf(a.Y, 0)
}

// Rotate rotates v by theta radians, sin/cos evaluated once
// cos(x + y) = cos x * cos y - sin x * sin y
// sin(x + y) = sin x * cos y + cos x * sin y
func Rotate(v Vec2, theta float64) Vec2 {
	s, c := math.Sincos(theta)
	return Vec2{
		X: v.X*c - v.Y*s,
		Y: v.Y*c + v.X*s,
	}
}

// Direction returns the unit vector at angle theta from +X
func Direction(theta float64) Vec2 {
	s, c := math.Sincos(theta)
	return Vec2{X: c, Y: s}
}

// Perpendicular returns vector rotated 90° counter-clockwise
func Perpendicular(v Vec2) Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}
