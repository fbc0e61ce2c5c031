package system

import (
	"time"

	"github.com/lixenwraith/asteroids/config"
)

// Reseeder decides how many fresh bodies the field needs each tick
type Reseeder struct {
	cfg     config.Spawn
	elapsed time.Duration
}

func NewReseeder(cfg config.Spawn) *Reseeder {
	return &Reseeder{cfg: cfg}
}

// Interval is the score-scaled time between single spawns, floored at IntervalMin
func (r *Reseeder) Interval(score int) time.Duration {
	iv := time.Duration(float64(r.cfg.IntervalBase) / (1 + float64(score)/r.cfg.ScoreDivisor))
	if iv < r.cfg.IntervalMin {
		return r.cfg.IntervalMin
	}
	return iv
}

// Due advances the timer by dt and returns the number of bodies to spawn
// Batch mode refills only an empty field; interval mode also refills an empty
// field at once, then adds one body per elapsed interval
func (r *Reseeder) Due(live, score int, dt time.Duration) int {
	switch r.cfg.Mode {
	case config.SpawnInterval:
		if live == 0 {
			r.elapsed = 0
			return 1
		}
		r.elapsed += dt
		if iv := r.Interval(score); r.elapsed >= iv {
			r.elapsed -= iv
			return 1
		}
		return 0
	default:
		if live == 0 {
			return r.cfg.Batch
		}
		return 0
	}
}

// Reset clears the interval timer
func (r *Reseeder) Reset() {
	r.elapsed = 0
}
