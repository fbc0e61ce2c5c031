package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asteroids/vmath"
)

// Viewport maps arena coordinates onto the cell grid
// Each axis scales independently so the whole arena fills the play area
type Viewport struct {
	Cols, Rows    int
	Width, Height float64
}

// ToCell returns the cell holding world point p
func (v Viewport) ToCell(p vmath.Vec2) (int, int) {
	x := int(math.Floor(p.X * float64(v.Cols) / v.Width))
	y := int(math.Floor(p.Y * float64(v.Rows) / v.Height))
	return x, y
}

// CellCenter returns the world point at the middle of cell x, y
func (v Viewport) CellCenter(x, y int) vmath.Vec2 {
	return vmath.V(
		(float64(x)+0.5)*v.Width/float64(v.Cols),
		(float64(y)+0.5)*v.Height/float64(v.Rows),
	)
}

// Line draws a Bresenham segment, both endpoints included
func Line(b *Buffer, x0, y0, x1, y1 int, r rune, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		b.Set(x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Polygon draws the closed outline through pts
func Polygon(b *Buffer, v Viewport, pts []vmath.Vec2, r rune, style tcell.Style) {
	n := len(pts)
	if n == 0 {
		return
	}
	for i := range pts {
		x0, y0 := v.ToCell(pts[i])
		x1, y1 := v.ToCell(pts[(i+1)%n])
		Line(b, x0, y0, x1, y1, r, style)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
