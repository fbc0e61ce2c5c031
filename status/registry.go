package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys published by the simulation
const (
	TickCount      = "tick.count"
	SpawnAttempts  = "spawn.attempts"
	SpawnFallback  = "spawn.fallback"
	SpawnOverlap   = "spawn.overlap"
	BodyDestroyed  = "body.destroyed"
	ResetCount     = "reset.count"
	ProjectileLive = "projectile.live"
	BodyLive       = "body.live"
	TickRate       = "tick.rate"
)

// Registry is the metrics facade shared by the simulation and the overlay
// The step loop is the only writer; the renderer reads
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Add increments a counter; nil registry is a no-op so tests may omit it
func (r *Registry) Add(key string, delta int64) {
	if r == nil {
		return
	}
	r.Counters.Get(key).Add(delta)
}

// Set stores a gauge value; nil registry is a no-op
func (r *Registry) Set(key string, val float64) {
	if r == nil {
		return
	}
	r.Gauges.Get(key).Set(val)
}

// Count reads a counter
func (r *Registry) Count(key string) int64 {
	if r == nil {
		return 0
	}
	return r.Counters.Get(key).Load()
}

// Lines formats every metric as "key value", counters first, each group sorted
func (r *Registry) Lines() []string {
	if r == nil {
		return nil
	}
	lines := make([]string, 0, r.Counters.Count()+r.Gauges.Count())
	for _, k := range r.Counters.Keys() {
		lines = append(lines, fmt.Sprintf("%s %d", k, r.Counters.Get(k).Load()))
	}
	for _, k := range r.Gauges.Keys() {
		lines = append(lines, fmt.Sprintf("%s %.1f", k, r.Gauges.Get(k).Get()))
	}
	return lines
}
