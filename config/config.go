// Package config holds every gameplay tunable with defaults and YAML overlay loading
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/asteroids/parameter"
)

// SpawnMode selects the steady-state reseed policy
type SpawnMode string

const (
	// SpawnBatch seeds ReseedBatch bodies whenever the field empties
	SpawnBatch SpawnMode = "batch"
	// SpawnInterval seeds one body per score-scaled interval
	SpawnInterval SpawnMode = "interval"
)

type Arena struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	DangerZoneMargin float64 `yaml:"danger_zone_margin"`
}

type Craft struct {
	Scale        float64 `yaml:"scale"`
	Rotation     float64 `yaml:"rotation"`
	TurnRate     float64 `yaml:"turn_rate"`
	Acceleration float64 `yaml:"acceleration"`
	DecayDivisor float64 `yaml:"decay_divisor"`
	Deadzone     float64 `yaml:"deadzone"`
}

type Weapon struct {
	Cooldown      time.Duration `yaml:"cooldown"`
	CooldownFloor time.Duration `yaml:"cooldown_floor"`
	CooldownStep  time.Duration `yaml:"cooldown_step"`
	CooldownEvery int           `yaml:"cooldown_every"`
	AccelDivisor  float64       `yaml:"accel_divisor"`
}

type Projectile struct {
	Speed    float64 `yaml:"speed"`
	MaxWraps int     `yaml:"max_wraps"`
}

type Body struct {
	ScaleMin     float64 `yaml:"scale_min"`
	ScaleMax     float64 `yaml:"scale_max"`
	ScaleDestroy float64 `yaml:"scale_destroy"`
	SpeedMin     float64 `yaml:"speed_min"`
	SpeedMax     float64 `yaml:"speed_max"`
}

type Fragment struct {
	CountMin   int     `yaml:"count_min"`
	CountMax   int     `yaml:"count_max"`
	DivisorMin float64 `yaml:"divisor_min"`
	DivisorMax float64 `yaml:"divisor_max"`
	Speed      float64 `yaml:"speed"`
}

type Spawn struct {
	Mode         SpawnMode     `yaml:"mode"`
	MaxAttempts  int           `yaml:"max_attempts"`
	Initial      int           `yaml:"initial"`
	OnReset      int           `yaml:"on_reset"`
	Batch        int           `yaml:"batch"`
	IntervalBase time.Duration `yaml:"interval_base"`
	IntervalMin  time.Duration `yaml:"interval_min"`
	ScoreDivisor float64       `yaml:"score_divisor"`
}

// Config is the complete simulation configuration
type Config struct {
	Arena      Arena      `yaml:"arena"`
	Craft      Craft      `yaml:"craft"`
	Weapon     Weapon     `yaml:"weapon"`
	Projectile Projectile `yaml:"projectile"`
	Body       Body       `yaml:"body"`
	Fragment   Fragment   `yaml:"fragment"`
	Spawn      Spawn      `yaml:"spawn"`

	// Keys overrides default bindings, key name -> action name ("none" unbinds)
	Keys map[string]string `yaml:"keys"`

	// Seed is an integer or an arbitrary string; empty means wall clock
	Seed string `yaml:"seed"`
}

// Default returns the built-in tuning
func Default() *Config {
	return &Config{
		Arena: Arena{
			Width:            parameter.ArenaWidth,
			Height:           parameter.ArenaHeight,
			DangerZoneMargin: parameter.DangerZoneMargin,
		},
		Craft: Craft{
			Scale:        parameter.CraftScale,
			Rotation:     parameter.CraftDefaultRotation,
			TurnRate:     parameter.CraftTurnRate,
			Acceleration: parameter.CraftDefaultAcceleration,
			DecayDivisor: parameter.CraftDecayDivisor,
			Deadzone:     parameter.CraftDeadzone,
		},
		Weapon: Weapon{
			Cooldown:      parameter.BulletCooldownDefault,
			CooldownFloor: parameter.BulletCooldownFloor,
			CooldownStep:  parameter.BulletCooldownStep,
			CooldownEvery: parameter.BulletCooldownEvery,
			AccelDivisor:  parameter.AccelerationScoreDivisor,
		},
		Projectile: Projectile{
			Speed:    parameter.ProjectileSpeed,
			MaxWraps: parameter.ProjectileMaxWraps,
		},
		Body: Body{
			ScaleMin:     parameter.BodyScaleMin,
			ScaleMax:     parameter.BodyScaleMax,
			ScaleDestroy: parameter.BodyScaleDestroy,
			SpeedMin:     parameter.BodySpeedMin,
			SpeedMax:     parameter.BodySpeedMax,
		},
		Fragment: Fragment{
			CountMin:   parameter.FragmentCountMin,
			CountMax:   parameter.FragmentCountMax,
			DivisorMin: parameter.FragmentDivisorMin,
			DivisorMax: parameter.FragmentDivisorMax,
			Speed:      parameter.FragmentSpeed,
		},
		Spawn: Spawn{
			Mode:         SpawnBatch,
			MaxAttempts:  parameter.SpawnMaxAttempts,
			Initial:      parameter.InitialBodies,
			OnReset:      parameter.ResetBodies,
			Batch:        parameter.ReseedBatch,
			IntervalBase: parameter.ReseedIntervalBase,
			IntervalMin:  parameter.ReseedIntervalMin,
			ScoreDivisor: parameter.ReseedScoreDivisor,
		},
	}
}

// Load overlays the YAML file at path onto the defaults
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays YAML from r onto the defaults and validates the result
// An empty document yields the defaults
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CraftReach bounds the distance from the craft center to any hitbox corner
// at any rotation; the hitbox corner furthest from center lies under sqrt(2)*scale
func CraftReach(scale float64) float64 {
	return math.Sqrt2 * scale
}

// Validate reports every constraint violation at once
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Arena.Width > 0 && c.Arena.Height > 0, "arena: size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	check(c.Arena.DangerZoneMargin > 0 && 2*c.Arena.DangerZoneMargin <= c.Arena.Width && 2*c.Arena.DangerZoneMargin <= c.Arena.Height,
		"arena: danger_zone_margin %v must be positive and fit twice in each dimension", c.Arena.DangerZoneMargin)

	check(c.Craft.Scale > 0, "craft: scale must be positive")
	check(c.Craft.TurnRate >= 0, "craft: turn_rate must not be negative")
	check(c.Craft.Acceleration > 0, "craft: acceleration must be positive")
	check(c.Craft.DecayDivisor > 0, "craft: decay_divisor must be positive")
	check(c.Craft.Deadzone >= 0, "craft: deadzone must not be negative")

	check(c.Weapon.CooldownFloor >= parameter.BulletCooldownFloor,
		"weapon: cooldown_floor %v below minimum %v", c.Weapon.CooldownFloor, parameter.BulletCooldownFloor)
	check(c.Weapon.Cooldown >= c.Weapon.CooldownFloor, "weapon: cooldown %v below floor %v", c.Weapon.Cooldown, c.Weapon.CooldownFloor)
	check(c.Weapon.CooldownStep >= 0, "weapon: cooldown_step must not be negative")
	check(c.Weapon.CooldownEvery > 0, "weapon: cooldown_every must be positive")
	check(c.Weapon.AccelDivisor > 0, "weapon: accel_divisor must be positive")

	check(c.Projectile.Speed > 0, "projectile: speed must be positive")
	check(c.Projectile.MaxWraps > 0, "projectile: max_wraps must be positive")

	check(c.Body.ScaleMin > c.Body.ScaleDestroy, "body: scale_min %v must exceed scale_destroy %v", c.Body.ScaleMin, c.Body.ScaleDestroy)
	check(c.Body.ScaleMax >= c.Body.ScaleMin, "body: scale_max below scale_min")
	check(c.Body.SpeedMin > 0 && c.Body.SpeedMax >= c.Body.SpeedMin, "body: speed range invalid")
	// Spawn fallback places a body half an arena away from the craft on each axis
	reach := c.Body.ScaleMax + CraftReach(c.Craft.Scale)
	check(reach < math.Min(c.Arena.Width, c.Arena.Height)/2,
		"body: scale_max %v plus craft reach %v must stay below half the smaller arena side", c.Body.ScaleMax, CraftReach(c.Craft.Scale))

	check(c.Fragment.CountMin >= 1 && c.Fragment.CountMax >= c.Fragment.CountMin, "fragment: count range invalid")
	check(c.Fragment.DivisorMin > 1, "fragment: divisor_min must exceed 1 so children shrink")
	check(c.Fragment.DivisorMax >= c.Fragment.DivisorMin, "fragment: divisor_max below divisor_min")
	check(c.Fragment.Speed > 0, "fragment: speed must be positive")

	check(c.Spawn.Mode == SpawnBatch || c.Spawn.Mode == SpawnInterval, "spawn: unknown mode %q", c.Spawn.Mode)
	check(c.Spawn.MaxAttempts > 0, "spawn: max_attempts must be positive")
	check(c.Spawn.Initial >= 0 && c.Spawn.OnReset >= 0, "spawn: initial and on_reset must not be negative")
	check(c.Spawn.Batch > 0, "spawn: batch must be positive")
	check(c.Spawn.IntervalMin > 0 && c.Spawn.IntervalBase >= c.Spawn.IntervalMin, "spawn: interval range invalid")
	check(c.Spawn.ScoreDivisor > 0, "spawn: score_divisor must be positive")

	return errors.Join(errs...)
}

// SeedValue resolves Seed into a generator seed
// Integers are used verbatim, other strings are hashed, empty falls back to now
func (c *Config) SeedValue(now time.Time) uint64 {
	if c.Seed == "" {
		return uint64(now.UnixNano())
	}
	if n, err := strconv.ParseUint(c.Seed, 10, 64); err == nil {
		return n
	}
	return xxhash.Sum64String(c.Seed)
}
