package parameter

import "time"

// Arena dimensions in world units
const (
	ArenaWidth  = 160.0
	ArenaHeight = 144.0

	// DangerZoneMargin is the width of the edge band where new bodies appear
	DangerZoneMargin = 16.0
)

// Tick gating for the external loop; the core itself accepts any dt > 0
const (
	MinTickInterval = 17 * time.Millisecond
	// FrameInterval is the loop ticker period, above MinTickInterval to absorb ticker jitter
	FrameInterval = 20 * time.Millisecond
	// MaxTickInterval caps a single step after a stall (suspend, slow terminal)
	MaxTickInterval = 100 * time.Millisecond
)
