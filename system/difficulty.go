package system

import (
	"time"

	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/core"
)

// Difficulty couples score to craft acceleration and weapon cooldown
type Difficulty struct {
	weapon config.Weapon
}

func NewDifficulty(w config.Weapon) Difficulty {
	return Difficulty{weapon: w}
}

// Award applies one kill and returns the new score
// Acceleration grows by score/divisor; every CooldownEvery points the cooldown
// shrinks by CooldownStep, never below CooldownFloor
func (d Difficulty) Award(score int, craft *core.Craft, cooldown *time.Duration) int {
	score++
	craft.Acceleration += float64(score) / d.weapon.AccelDivisor
	if score%d.weapon.CooldownEvery == 0 {
		*cooldown = d.ClampCooldown(*cooldown - d.weapon.CooldownStep)
	}
	return score
}

// ClampCooldown floors c at CooldownFloor
func (d Difficulty) ClampCooldown(c time.Duration) time.Duration {
	if c < d.weapon.CooldownFloor {
		return d.weapon.CooldownFloor
	}
	return c
}
