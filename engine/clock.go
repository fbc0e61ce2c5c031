package engine

import (
	"sync"
	"time"
)

// Clock supplies wall time to the loop driving Step
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable Clock for tests and replays
type ManualClock struct {
	mu      sync.RWMutex
	current time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set moves the clock to t
func (m *ManualClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance moves the clock forward by d
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// Pacer converts wall-clock readings into step durations
// Readings closer than min to the last accepted step are rejected so the
// world never sees a step shorter than min; long stalls are capped at max
type Pacer struct {
	clock    Clock
	min, max time.Duration
	last     time.Time
}

// NewPacer starts pacing from the clock's current reading; max <= 0 disables the cap
func NewPacer(clock Clock, min, max time.Duration) *Pacer {
	return &Pacer{clock: clock, min: min, max: max, last: clock.Now()}
}

// Next returns the time since the last accepted step and whether a step is due
func (p *Pacer) Next() (time.Duration, bool) {
	now := p.clock.Now()
	dt := now.Sub(p.last)
	if dt < p.min {
		return 0, false
	}
	p.last = now
	if p.max > 0 && dt > p.max {
		dt = p.max
	}
	return dt, true
}
