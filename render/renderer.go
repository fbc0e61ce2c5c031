package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/status"
)

const (
	runeCraft      = '*'
	runeHitbox     = '+'
	runeBody       = '#'
	runeProjectile = 'o'
)

// Renderer rasterizes snapshots into a Buffer
// The bottom row is the status bar; everything above is the arena
type Renderer struct {
	buf     *Buffer
	metrics *status.Registry
}

// NewRenderer creates a renderer for a cols x rows terminal; metrics may be nil
func NewRenderer(cols, rows int, metrics *status.Registry) *Renderer {
	return &Renderer{buf: NewBuffer(cols, rows), metrics: metrics}
}

// Resize follows a terminal resize
func (r *Renderer) Resize(cols, rows int) {
	r.buf.Resize(cols, rows)
}

// Buffer exposes the last drawn frame
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Draw renders one frame: danger zone, bodies, projectiles, craft, status bar
// and, in debug mode, the hitbox and metrics overlay
func (r *Renderer) Draw(snap engine.Snapshot) {
	r.buf.Clear()
	cols, rows := r.buf.Bounds()
	if cols == 0 || rows < 2 {
		return
	}
	vp := Viewport{Cols: cols, Rows: rows - 1, Width: snap.Width, Height: snap.Height}

	r.drawDangerZone(vp, snap)
	for _, poly := range snap.Bodies {
		Polygon(r.buf, vp, poly, runeBody, StyleBody)
	}
	for _, p := range snap.Projectiles {
		x, y := vp.ToCell(p)
		r.buf.Set(x, y, runeProjectile, StyleProjectile)
	}
	if snap.Hitbox != nil {
		Polygon(r.buf, vp, snap.Hitbox, runeHitbox, StyleHitbox)
	}
	Polygon(r.buf, vp, snap.Craft, runeCraft, StyleCraft)

	r.drawStatusBar(rows-1, cols, snap)
	if snap.Debug {
		r.drawOverlay()
	}
}

// Present flushes the last frame to the screen
func (r *Renderer) Present(screen tcell.Screen) {
	r.buf.Flush(screen)
}

func (r *Renderer) drawDangerZone(vp Viewport, snap engine.Snapshot) {
	for y := 0; y < vp.Rows; y++ {
		for x := 0; x < vp.Cols; x++ {
			c := vp.CellCenter(x, y)
			for _, zone := range snap.DangerZone {
				if zone.Contains(c) {
					r.buf.SetStyle(x, y, StyleDangerZone)
					break
				}
			}
		}
	}
}

func (r *Renderer) drawStatusBar(y, cols int, snap engine.Snapshot) {
	for x := 0; x < cols; x++ {
		r.buf.Set(x, y, ' ', StyleStatusBar)
	}
	text := fmt.Sprintf(" SCORE %d  HIGH %d  COOLDOWN %dms", snap.Score, snap.HighScore, snap.Cooldown.Milliseconds())
	if snap.Debug {
		text += fmt.Sprintf("  TICK %d", snap.Tick)
	}
	r.buf.Text(0, y, text, StyleStatusBar)
}

func (r *Renderer) drawOverlay() {
	for i, line := range r.metrics.Lines() {
		r.buf.Text(1, i, line, StyleOverlay)
	}
}
