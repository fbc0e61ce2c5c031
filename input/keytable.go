package input

import "github.com/gdamore/tcell/v2"

// Action is a bindable control
type Action uint8

const (
	ActionNone Action = iota
	ActionTurnLeft
	ActionTurnRight
	ActionThrust
	ActionReverse
	ActionFire
	ActionToggleDebug
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:        "none",
	ActionTurnLeft:    "turn_left",
	ActionTurnRight:   "turn_right",
	ActionThrust:      "thrust",
	ActionReverse:     "reverse",
	ActionFire:        "fire",
	ActionToggleDebug: "toggle_debug",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings, vi-style alternates included
	Runes map[rune]Action
}

// DefaultKeyTable binds arrows and hjkl for movement, space/x to fire, d for hitbox debug
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionTurnLeft,
			tcell.KeyRight:  ActionTurnRight,
			tcell.KeyUp:     ActionThrust,
			tcell.KeyDown:   ActionReverse,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'h': ActionTurnLeft,
			'l': ActionTurnRight,
			'k': ActionThrust,
			'j': ActionReverse,
			' ': ActionFire,
			'x': ActionFire,
			'd': ActionToggleDebug,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event to its action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
