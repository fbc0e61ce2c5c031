package parameter

import (
	"math"
	"time"
)

// Craft
const (
	// CraftScale converts the unit triangle to world units
	CraftScale = 10.0

	// CraftDefaultRotation points the nose toward screen-up in y-down space
	CraftDefaultRotation = math.Pi

	// CraftTurnRate in radians per second
	CraftTurnRate = 2.5

	// CraftDefaultAcceleration in units per second squared
	CraftDefaultAcceleration = 25.0

	// CraftDecayDivisor scales acceleration into the coasting deceleration
	CraftDecayDivisor = 1.2

	// CraftDeadzone is the per-axis speed under which velocity snaps to zero
	CraftDeadzone = 0.75
)

// Weapon
const (
	BulletCooldownDefault = 1500 * time.Millisecond
	BulletCooldownFloor   = 700 * time.Millisecond
	BulletCooldownStep    = 200 * time.Millisecond

	// BulletCooldownEvery is the score interval between cooldown reductions
	BulletCooldownEvery = 5

	// AccelerationScoreDivisor: each kill adds score/divisor to acceleration
	AccelerationScoreDivisor = 32.0
)
