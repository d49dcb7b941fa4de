package controller

import (
	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/gamemath"
)

// fireSlack absorbs float drift from summing tick durations into the clock.
const fireSlack = 1e-9

// ArmSlideStop schedules the end of a slide SlideDuration after now. Under
// SlideTimerOverlap earlier stops stay pending and fire on their own; under
// SlideTimerRestart they are dropped first.
func ArmSlideStop(timers *components.SlideTimerData, p *Params, now float64) components.SlideStop {
	if p.SlidePolicy == cfg.SlideTimerRestart {
		timers.Pending = timers.Pending[:0]
	}
	timers.NextID++
	stop := components.SlideStop{ID: timers.NextID, FireAt: now + p.SlideDuration}
	timers.Pending = append(timers.Pending, stop)
	return stop
}

// FireSlideStops runs every pending stop whose time has come: each one moves
// Velocity.X one step toward zero at SlideDeceleration and clears Sliding.
// Stops still in the future stay pending in order. It returns how many fired.
func FireSlideStops(m *components.MotionData, timers *components.SlideTimerData, p *Params, now, dt float64) int {
	fired := 0
	remaining := timers.Pending[:0]
	for _, stop := range timers.Pending {
		if stop.FireAt > now+fireSlack {
			remaining = append(remaining, stop)
			continue
		}
		m.Velocity.X = gamemath.MoveTowards(m.Velocity.X, 0, p.Motion.SlideDeceleration*dt)
		m.Sliding = false
		fired++
	}
	timers.Pending = remaining
	return fired
}

// CancelSlideStops drops every pending stop without firing it.
func CancelSlideStops(timers *components.SlideTimerData) {
	timers.Pending = timers.Pending[:0]
}
