package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/status"
	"github.com/lixenwraith/asteroids/vmath"
)

func rowText(b *Buffer, y, from, n int) string {
	var sb strings.Builder
	for x := from; x < from+n; x++ {
		sb.WriteRune(b.Get(x, y).Rune)
	}
	return sb.String()
}

func TestBufferSetGet(t *testing.T) {
	b := NewBuffer(4, 3)
	b.Set(1, 2, 'x', StyleBody)
	assert.Equal(t, Cell{Rune: 'x', Style: StyleBody}, b.Get(1, 2))

	b.Set(-1, 0, 'y', StyleBody)
	b.Set(4, 0, 'y', StyleBody)
	b.Set(0, 3, 'y', StyleBody)
	assert.Equal(t, emptyCell, b.Get(4, 0))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.NotEqual(t, 'y', b.Get(x, y).Rune)
		}
	}

	b.SetStyle(1, 2, StyleCraft)
	assert.Equal(t, Cell{Rune: 'x', Style: StyleCraft}, b.Get(1, 2))
}

func TestBufferTextClips(t *testing.T) {
	b := NewBuffer(5, 1)
	b.Text(2, 0, "abcdef", StyleStatusBar)
	assert.Equal(t, "abc", rowText(b, 0, 2, 3))
	assert.Equal(t, rune(0), b.Get(1, 0).Rune)
}

func TestBufferResizeClears(t *testing.T) {
	b := NewBuffer(8, 8)
	b.Set(3, 3, 'x', StyleBody)

	b.Resize(4, 2)
	w, h := b.Bounds()
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.Equal(t, emptyCell, b.Get(x, y))
		}
	}

	b.Resize(-1, 5)
	w, h = b.Bounds()
	assert.Zero(t, w)
	assert.Equal(t, 5, h)
}

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           [][2]int
	}{
		{"point", 2, 2, 2, 2, [][2]int{{2, 2}}},
		{"horizontal", 0, 1, 3, 1, [][2]int{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{"vertical reversed", 1, 3, 1, 0, [][2]int{{1, 0}, {1, 1}, {1, 2}, {1, 3}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(5, 5)
			Line(b, tt.x0, tt.y0, tt.x1, tt.y1, '#', StyleBody)

			var got [][2]int
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					if b.Get(x, y).Rune == '#' {
						got = append(got, [2]int{x, y})
					}
				}
			}
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestLineShallowSlopeIsContinuous(t *testing.T) {
	b := NewBuffer(10, 3)
	Line(b, 0, 0, 9, 2, '#', StyleBody)
	for x := 0; x < 10; x++ {
		hits := 0
		for y := 0; y < 3; y++ {
			if b.Get(x, y).Rune == '#' {
				hits++
			}
		}
		assert.Equal(t, 1, hits, "column %d", x)
	}
}

func TestViewport(t *testing.T) {
	vp := Viewport{Cols: 80, Rows: 24, Width: 160, Height: 144}

	x, y := vp.ToCell(vmath.V(0, 0))
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
	x, y = vp.ToCell(vmath.V(159.9, 143.9))
	assert.Equal(t, [2]int{79, 23}, [2]int{x, y})
	x, y = vp.ToCell(vmath.V(80, 72))
	assert.Equal(t, [2]int{40, 12}, [2]int{x, y})

	c := vp.CellCenter(0, 0)
	assert.InDelta(t, 1.0, c.X, 1e-12)
	assert.InDelta(t, 3.0, c.Y, 1e-12)
}

func testSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Width:       160,
		Height:      144,
		Craft:       []vmath.Vec2{vmath.V(80, 62), vmath.V(73, 79), vmath.V(87, 79)},
		Bodies:      [][]vmath.Vec2{{vmath.V(20, 30), vmath.V(40, 30), vmath.V(40, 50), vmath.V(20, 50)}},
		Projectiles: []vmath.Vec2{vmath.V(100, 100)},
		DangerZone:  []vmath.Rect{{Left: 0, Top: 0, Right: 160, Bottom: 16}},
		Score:       3,
		HighScore:   9,
		Cooldown:    1300 * time.Millisecond,
	}
}

func TestDrawSnapshot(t *testing.T) {
	r := NewRenderer(40, 13, nil)
	r.Draw(testSnapshot())
	b := r.Buffer()

	assert.Equal(t, runeCraft, b.Get(20, 5).Rune)
	assert.Equal(t, StyleCraft, b.Get(20, 5).Style)
	assert.Equal(t, runeProjectile, b.Get(25, 8).Rune)
	assert.Equal(t, runeBody, b.Get(5, 2).Rune)

	assert.Equal(t, StyleDangerZone, b.Get(0, 0).Style)
	assert.Equal(t, StyleBackground, b.Get(30, 6).Style)

	assert.Equal(t, " SCORE 3  HIGH 9  COOLDOWN 1300ms", rowText(b, 12, 0, 33))
	assert.Equal(t, StyleStatusBar, b.Get(39, 12).Style)

	for y := 0; y < 13; y++ {
		for x := 0; x < 40; x++ {
			assert.NotEqual(t, runeHitbox, b.Get(x, y).Rune)
		}
	}
}

func TestDrawDebug(t *testing.T) {
	metrics := status.NewRegistry()
	metrics.Add(status.TickCount, 7)
	r := NewRenderer(60, 13, metrics)

	snap := testSnapshot()
	snap.Debug = true
	snap.Tick = 7
	snap.Hitbox = []vmath.Vec2{vmath.V(70, 60), vmath.V(90, 60), vmath.V(90, 80), vmath.V(70, 80)}
	r.Draw(snap)
	b := r.Buffer()

	assert.Equal(t, runeHitbox, b.Get(26, 5).Rune)
	lines := metrics.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, lines[0], rowText(b, 0, 1, len(lines[0])))
	assert.Contains(t, rowText(b, 12, 0, 60), "TICK 7")
}

func TestDrawTinyScreen(t *testing.T) {
	r := NewRenderer(10, 1, nil)
	assert.NotPanics(t, func() { r.Draw(testSnapshot()) })
	r.Resize(0, 0)
	assert.NotPanics(t, func() { r.Draw(testSnapshot()) })
}

func TestFlushToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(10, 3)

	b := NewBuffer(10, 3)
	b.Set(2, 1, '#', StyleBody)
	b.Flush(screen)

	mainc, _, style, _ := screen.GetContent(2, 1)
	assert.Equal(t, '#', mainc)
	assert.Equal(t, StyleBody, style)

	mainc, _, style, _ = screen.GetContent(0, 0)
	assert.Equal(t, ' ', mainc)
	assert.Equal(t, StyleBackground, style)
}
