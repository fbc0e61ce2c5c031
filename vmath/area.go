package vmath

import "math"

// Rect is an axis-aligned box in world units, Top < Bottom in y-down space
type Rect struct {
	Left, Top, Right, Bottom float64
}

// BoundsOf returns the min/max box enclosing points
// Empty input yields the zero Rect, which contains nothing
func BoundsOf(points []Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{
		Left:   math.Inf(1),
		Top:    math.Inf(1),
		Right:  math.Inf(-1),
		Bottom: math.Inf(-1),
	}
	for _, p := range points {
		r.Left = math.Min(r.Left, p.X)
		r.Right = math.Max(r.Right, p.X)
		r.Top = math.Min(r.Top, p.Y)
		r.Bottom = math.Max(r.Bottom, p.Y)
	}
	return r
}

// Contains is half-open: left and top edges inside, right and bottom outside
func (r Rect) Contains(p Vec2) bool {
	return r.Left <= p.X && p.X < r.Right && r.Top <= p.Y && p.Y < r.Bottom
}

// ContainsAny reports whether any of points lies inside r
func (r Rect) ContainsAny(points ...Vec2) bool {
	for _, p := range points {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Overlaps reports whether r and o share interior area
// Boxes that only touch along an edge do not overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right && r.Top < o.Bottom && o.Top < r.Bottom
}

// Width returns Right - Left
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns Bottom - Top
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the midpoint of the box
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Corners returns the four corners clockwise from top-left
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Right, Y: r.Bottom},
		{X: r.Left, Y: r.Bottom},
	}
}
