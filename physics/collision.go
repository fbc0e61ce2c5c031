package physics

import (
	"github.com/lixenwraith/asteroids/core"
	"github.com/lixenwraith/asteroids/vmath"
)

// Collision uses axis-aligned bounding boxes of the world polygons, not exact
// polygon intersection. The boxes are looser than the drawn outlines; this is
// the intended gameplay feel.

// CraftHitsBody reports a craft/body contact:
// any hitbox corner or the craft center inside the body box, or the body
// position inside the craft box
func CraftHitsBody(c *core.Craft, b *core.Body) bool {
	if b.Bounds().ContainsAny(c.ProbePoints()...) {
		return true
	}
	return c.Bounds().Contains(b.Position())
}

// PointInBody reports whether p lies inside the body box
func PointInBody(p vmath.Vec2, b *core.Body) bool {
	return b.Bounds().Contains(p)
}

// FirstCraftHit returns the index of the first body touching the craft, or -1
func FirstCraftHit(c *core.Craft, bodies []*core.Body) int {
	for i, b := range bodies {
		if CraftHitsBody(c, b) {
			return i
		}
	}
	return -1
}

// ClearOfCraft reports whether a box neither overlaps the craft box nor
// contains a craft probe point
// Used as the spawn placement constraint; a clear box can never satisfy
// CraftHitsBody for a body inside it
func ClearOfCraft(box vmath.Rect, c *core.Craft) bool {
	return !box.Overlaps(c.Bounds()) && !box.ContainsAny(c.ProbePoints()...)
}
