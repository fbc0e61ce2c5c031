package system

import (
	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/vmath"
)

// DangerZone returns the four static margin bands where new bodies appear:
// top, bottom, left, right; side bands exclude the corners already covered
func DangerZone(a config.Arena) []vmath.Rect {
	w, h, m := a.Width, a.Height, a.DangerZoneMargin
	return []vmath.Rect{
		{Left: 0, Top: 0, Right: w, Bottom: m},
		{Left: 0, Top: h - m, Right: w, Bottom: h},
		{Left: 0, Top: m, Right: m, Bottom: h - m},
		{Left: w - m, Top: m, Right: w, Bottom: h - m},
	}
}

// InDangerZone reports whether p lies in any margin band
func InDangerZone(a config.Arena, p vmath.Vec2) bool {
	for _, r := range DangerZone(a) {
		if r.Contains(p) {
			return true
		}
	}
	return false
}
