package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameEdges(t *testing.T) {
	var tr Tracker

	f := tr.Next(Flags{Fire: true, ToggleDebug: true})
	assert.True(t, f.FirePressed())
	assert.True(t, f.DebugToggled())

	f = tr.Next(Flags{Fire: true, ToggleDebug: true})
	assert.False(t, f.FirePressed(), "held fire is not a new edge")
	assert.False(t, f.DebugToggled())

	f = tr.Next(Flags{})
	assert.False(t, f.FirePressed())

	f = tr.Next(Flags{Fire: true})
	assert.True(t, f.FirePressed())
}

func TestFrameLevels(t *testing.T) {
	cases := []struct {
		name      string
		flags     Flags
		turn      float64
		thrust    float64
		thrusting bool
	}{
		{"idle", Flags{}, 0, 0, false},
		{"left", Flags{TurnLeft: true}, -1, 0, false},
		{"right forward", Flags{TurnRight: true, Thrust: true}, 1, 1, true},
		{"both turns cancel", Flags{TurnLeft: true, TurnRight: true}, 0, 0, false},
		{"reverse", Flags{Reverse: true}, 0, -1, true},
		{"both thrusts cancel but hold", Flags{Thrust: true, Reverse: true}, 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := Frame{Current: tc.flags}
			assert.Equal(t, tc.turn, f.Turn())
			assert.Equal(t, tc.thrust, f.ThrustDirection())
			assert.Equal(t, tc.thrusting, f.Thrusting())
		})
	}
}
