package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow covers the gap between terminal auto-repeat events
const DefaultHoldWindow = 150 * time.Millisecond

// Keyboard turns terminal key presses into held flags
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held while its last press is younger than the hold window.
// HandleEvent runs on the poller goroutine, Flags on the tick loop
type Keyboard struct {
	mu    sync.Mutex
	table *KeyTable
	hold  time.Duration
	last  [actionCount]time.Time
	quit  bool
}

// NewKeyboard uses table for bindings; hold <= 0 selects DefaultHoldWindow
func NewKeyboard(table *KeyTable, hold time.Duration) *Keyboard {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Keyboard{table: table, hold: hold}
}

// HandleEvent records a press; returns the action it resolved to
func (k *Keyboard) HandleEvent(ev tcell.Event, now time.Time) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}
	action := k.table.Lookup(key)
	if action == ActionNone {
		return ActionNone
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if action == ActionQuit {
		k.quit = true
	}
	k.last[action] = now
	return action
}

// Press records action directly, bypassing key lookup
func (k *Keyboard) Press(action Action, now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if action == ActionQuit {
		k.quit = true
	}
	k.last[action] = now
}

// QuitRequested reports whether a quit binding was pressed
func (k *Keyboard) QuitRequested() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.quit
}

// Flags samples the held state at now
func (k *Keyboard) Flags(now time.Time) Flags {
	k.mu.Lock()
	defer k.mu.Unlock()
	return Flags{
		TurnLeft:    k.heldLocked(ActionTurnLeft, now),
		TurnRight:   k.heldLocked(ActionTurnRight, now),
		Thrust:      k.heldLocked(ActionThrust, now),
		Reverse:     k.heldLocked(ActionReverse, now),
		Fire:        k.heldLocked(ActionFire, now),
		ToggleDebug: k.heldLocked(ActionToggleDebug, now),
	}
}

func (k *Keyboard) heldLocked(a Action, now time.Time) bool {
	t := k.last[a]
	if t.IsZero() {
		return false
	}
	return now.Sub(t) < k.hold
}
