package controller

import (
	"math"

	"github.com/automoto/platformer-controller/components"
	"github.com/solarlune/resolv"
)

// Result summarises one pipeline pass.
type Result struct {
	Input      Snapshot
	Contacts   int // overlaps resolved this tick
	SlideStops int // slide stops that fired this tick
}

// Step runs one full tick: sample input, integrate velocity, resolve
// collisions, then fire due slide stops. Grounded produced by this tick's
// resolution gates the next tick's integration.
func Step(m *components.MotionData, timers *components.SlideTimerData, body *resolv.Object, src InputSource, p *Params, t Tick) Result {
	in := Sample(src)
	return StepSnapshot(m, timers, body, in, p, t)
}

// StepSnapshot is Step with input already sampled.
func StepSnapshot(m *components.MotionData, timers *components.SlideTimerData, body *resolv.Object, in Snapshot, p *Params, t Tick) Result {
	res := Result{Input: in}
	if !(t.Dt >= 0) || math.IsInf(t.Dt, 0) {
		return res
	}

	IntegrateVelocity(m, timers, in, p, t)
	res.Contacts = ResolveCollisions(m, body, t.Dt)
	res.SlideStops = FireSlideStops(m, timers, p, t.Now, t.Dt)
	return res
}
