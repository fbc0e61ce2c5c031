package engine

import "github.com/lixenwraith/asteroids/vmath"

// EventType classifies something that happened during a tick
// Events are informational; the front end logs them, the core never reads them back
type EventType uint8

const (
	// EventFire: a projectile left the craft nose
	EventFire EventType = iota + 1
	// EventBodyDestroyed: a projectile struck a body; Score is the new score
	EventBodyDestroyed
	// EventFragment: a destroyed body left Count children
	EventFragment
	// EventSpawn: Count fresh bodies were seeded
	EventSpawn
	// EventReset: craft collision; Score is the score before reset, HighScore after
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventFire:
		return "Fire"
	case EventBodyDestroyed:
		return "BodyDestroyed"
	case EventFragment:
		return "Fragment"
	case EventSpawn:
		return "Spawn"
	case EventReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// Event carries the payload for one EventType
type Event struct {
	Type      EventType
	Position  vmath.Vec2
	Score     int
	HighScore int
	Count     int
}
