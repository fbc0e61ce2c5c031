package parameter

import "time"

// Hostile body generation
const (
	BodyScaleMin = 6.0
	BodyScaleMax = 14.0

	// BodyScaleDestroy removes any body at or below this scale
	BodyScaleDestroy = 3.0

	BodySpeedMin = 10.0
	BodySpeedMax = 25.0

	// BodyVertexMinOffset keeps sampled shape vertices away from the quadrant axes
	BodyVertexMinOffset = 0.2

	// SpawnMaxAttempts bounds rejection sampling before the fallback placement
	SpawnMaxAttempts = 64
)

// Fragmentation
const (
	FragmentCountMin = 1
	FragmentCountMax = 3

	// FragmentDivisorMin must stay above 1 so children are strictly smaller
	FragmentDivisorMin = 1.5
	FragmentDivisorMax = 3.0

	FragmentSpeed = 30.0
)

// Reseeding
const (
	InitialBodies = 1
	ResetBodies   = 1

	// ReseedBatch is the number of bodies seeded when the field empties
	ReseedBatch = 4

	ReseedIntervalBase = 5 * time.Second
	ReseedIntervalMin  = 1 * time.Second

	// ReseedScoreDivisor: interval = base / (1 + score/divisor)
	ReseedScoreDivisor = 4.0
)
