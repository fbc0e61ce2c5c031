package engine

import "github.com/lixenwraith/asteroids/status"

// GamePhase is the simulation state machine position
// Reset is transient: entered and left inside the same tick
type GamePhase uint8

const (
	PhasePlaying GamePhase = iota
	PhaseReset
)

func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

var validTransitions = map[GamePhase][]GamePhase{
	PhasePlaying: {PhaseReset},
	PhaseReset:   {PhasePlaying},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// transitionPhase moves to the next phase if allowed
func (w *World) transitionPhase(to GamePhase) bool {
	if !CanTransition(w.Phase, to) {
		return false
	}
	w.Phase = to
	return true
}

// reset handles a craft collision: Playing -> Reset -> Playing within one tick
// High score is banked, craft and weapon return to defaults, the field is
// cleared and reseeded clear of the recentered craft
func (w *World) reset() {
	if !w.transitionPhase(PhaseReset) {
		return
	}

	before := w.Score
	if w.Score > w.HighScore {
		w.HighScore = w.Score
	}

	w.Projectiles = w.Projectiles[:0]
	w.Craft.Reset(w.center(), w.cfg.Craft.Rotation, w.cfg.Craft.Acceleration)
	w.Cooldown = w.cfg.Weapon.Cooldown
	w.LastFire = w.Now - w.Cooldown

	w.Bodies = w.Bodies[:0]
	w.Bodies = append(w.Bodies, w.spawner.SpawnN(w.Craft, w.cfg.Spawn.OnReset)...)
	w.reseeder.Reset()
	w.Score = 0

	w.Metrics.Add(status.ResetCount, 1)
	w.emit(Event{Type: EventReset, Position: w.Craft.Center(), Score: before, HighScore: w.HighScore})

	w.transitionPhase(PhasePlaying)
}
