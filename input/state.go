package input

// Flags is the level state of every control for one tick
type Flags struct {
	TurnLeft    bool
	TurnRight   bool
	Thrust      bool
	Reverse     bool
	Fire        bool
	ToggleDebug bool
}

// Frame pairs this tick's flags with the previous tick's for edge detection
// Movement flags are level-triggered; Fire and ToggleDebug are rising-edge
type Frame struct {
	Current  Flags
	Previous Flags
}

// FirePressed reports a fire rising edge
func (f Frame) FirePressed() bool {
	return f.Current.Fire && !f.Previous.Fire
}

// DebugToggled reports a debug-toggle rising edge
func (f Frame) DebugToggled() bool {
	return f.Current.ToggleDebug && !f.Previous.ToggleDebug
}

// Turn returns -1 for left, +1 for right, 0 for none or both
func (f Frame) Turn() float64 {
	var dir float64
	if f.Current.TurnLeft {
		dir--
	}
	if f.Current.TurnRight {
		dir++
	}
	return dir
}

// ThrustDirection returns +1 forward, -1 reverse, 0 for none or both
func (f Frame) ThrustDirection() float64 {
	var dir float64
	if f.Current.Thrust {
		dir++
	}
	if f.Current.Reverse {
		dir--
	}
	return dir
}

// Thrusting reports whether any thrust control is held
// Holding both cancels the push but still suppresses coasting decay
func (f Frame) Thrusting() bool {
	return f.Current.Thrust || f.Current.Reverse
}

// Tracker remembers the last flags so callers only supply the current ones
type Tracker struct {
	prev Flags
}

// Next builds the frame for cur and stores cur as the new previous
func (t *Tracker) Next(cur Flags) Frame {
	f := Frame{Current: cur, Previous: t.prev}
	t.prev = cur
	return f
}
