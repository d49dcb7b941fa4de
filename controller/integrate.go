package controller

import (
	"github.com/automoto/platformer-controller/components"
	"github.com/automoto/platformer-controller/gamemath"
)

// IntegrateVelocity produces this tick's velocity from the previous one, the
// grounded and sliding flags, and the sampled input. Steps run in a fixed
// precedence order; later steps override earlier ones on the same axis.
func IntegrateVelocity(m *components.MotionData, timers *components.SlideTimerData, in Snapshot, p *Params, t Tick) {
	mc := &p.Motion

	if in.MoveAxis != 0 {
		m.Facing = sign(in.MoveAxis)
	}

	// 1. Slide
	if in.SlidePressed {
		m.Sliding = true
		m.Velocity.X = gamemath.MoveTowards(m.Velocity.X, mc.SlideSpeed*in.MoveAxis, mc.SlideAcceleration*t.Dt)
		ArmSlideStop(timers, p, t.Now)
	}

	// 2. Ground and jump gating
	if m.Grounded {
		m.Velocity.Y = 0
		if in.JumpPressed {
			m.Velocity.Y = gamemath.JumpVelocity(mc.JumpHeight, t.GravityY)
			m.DoubleJumpAvailable = true
		}
	} else if m.DoubleJumpAvailable && in.JumpPressed {
		m.Velocity.Y = gamemath.JumpVelocity(mc.JumpHeight, t.GravityY)
		m.DoubleJumpAvailable = false
	}

	// 3. Walk and air control. Airborne with no input keeps its speed.
	if !m.Sliding {
		accel, decel := mc.AirAcceleration, 0.0
		if m.Grounded {
			accel, decel = mc.WalkAcceleration, mc.GroundDeceleration
		}
		if in.MoveAxis != 0 {
			m.Velocity.X = gamemath.MoveTowards(m.Velocity.X, mc.MaxSpeed*in.MoveAxis, accel*t.Dt)
		} else {
			m.Velocity.X = gamemath.MoveTowards(m.Velocity.X, 0, decel*t.Dt)
		}
	}

	// 4. Gravity
	m.Velocity.Y += t.GravityY * t.Dt
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
