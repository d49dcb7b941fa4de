package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// MotionData is the character's per-tick motion state. It is owned by one
// controller and mutated once per tick.
type MotionData struct {
	Velocity Vector // units per second

	// Set by the collision pass of the previous tick; gates this tick's jump
	// and deceleration.
	Grounded bool

	// Armed by a grounded jump, spent by an airborne jump.
	DoubleJumpAvailable bool

	// While true, walk and air control do not touch Velocity.X.
	Sliding bool

	Facing float64 // -1 or 1, last non-zero input direction
}

var Motion = donburi.NewComponentType[MotionData]()

// SlideStop is a scheduled end-of-slide. When the clock reaches FireAt the
// slide decelerates one step and Sliding clears.
type SlideStop struct {
	ID     uint64
	FireAt float64
}

// SlideTimerData holds pending slide stops in scheduling order.
type SlideTimerData struct {
	Pending []SlideStop
	NextID  uint64
}

var SlideTimers = donburi.NewComponentType[SlideTimerData]()
