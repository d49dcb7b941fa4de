package controller

import (
	"math"

	"github.com/automoto/platformer-controller/components"
)

// StateID is a presentation label derived from motion state.
type StateID int

const (
	Idle StateID = iota
	Running
	Airborne
	Sliding
)

// runningThreshold is the horizontal speed below which a grounded body reads
// as idle.
const runningThreshold = 0.1

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Airborne:
		return "airborne"
	case Sliding:
		return "sliding"
	}
	return "unknown"
}

// DeriveState maps motion state to a label for renderers and logs.
func DeriveState(m *components.MotionData) StateID {
	switch {
	case m.Sliding:
		return Sliding
	case !m.Grounded:
		return Airborne
	case math.Abs(m.Velocity.X) >= runningThreshold:
		return Running
	}
	return Idle
}
