package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal character with its style
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// emptyCell is what Clear writes; rune 0 flushes as a blank
var emptyCell = Cell{Rune: 0, Style: StyleBackground}
