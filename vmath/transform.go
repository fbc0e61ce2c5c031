package vmath

// Transform maps a fixed local polygon into world space
// World is a cache derived from Local, Position, Rotation and Scale; the setters
// re-apply it so collision tests never read a stale polygon
type Transform struct {
	Local    []Vec2
	World    []Vec2
	Position Vec2
	Rotation float64 // radians
	Scale    float64
}

// NewTransform copies local and computes the initial world polygon
func NewTransform(local []Vec2, position Vec2, rotation, scale float64) Transform {
	t := Transform{
		Local:    append([]Vec2(nil), local...),
		World:    make([]Vec2, len(local)),
		Position: position,
		Rotation: rotation,
		Scale:    scale,
	}
	t.Apply()
	return t
}

// Apply recomputes every world vertex: rotate, then scale, then translate
func (t *Transform) Apply() {
	if len(t.World) != len(t.Local) {
		t.World = make([]Vec2, len(t.Local))
	}
	for i, v := range t.Local {
		t.World[i] = Rotate(v, t.Rotation).Scale(t.Scale).Add(t.Position)
	}
}

// SetPosition moves the transform and re-applies
func (t *Transform) SetPosition(p Vec2) {
	t.Position = p
	t.Apply()
}

// SetRotation re-orients the transform and re-applies
func (t *Transform) SetRotation(theta float64) {
	t.Rotation = theta
	t.Apply()
}

// SetScale resizes the transform and re-applies
func (t *Transform) SetScale(s float64) {
	t.Scale = s
	t.Apply()
}

// Place sets all three parameters with a single re-apply
func (t *Transform) Place(p Vec2, theta, s float64) {
	t.Position = p
	t.Rotation = theta
	t.Scale = s
	t.Apply()
}

// Bounds returns the axis-aligned box of the world polygon
func (t *Transform) Bounds() Rect {
	return BoundsOf(t.World)
}

// Clone returns a deep copy sharing no slices with t
func (t Transform) Clone() Transform {
	return Transform{
		Local:    append([]Vec2(nil), t.Local...),
		World:    append([]Vec2(nil), t.World...),
		Position: t.Position,
		Rotation: t.Rotation,
		Scale:    t.Scale,
	}
}
