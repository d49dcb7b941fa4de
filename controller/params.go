package controller

import (
	cfg "github.com/automoto/platformer-controller/config"
)

// Params bundles the read-only values the pipeline needs.
type Params struct {
	Motion        cfg.MotionConfig
	SlideDuration float64
	SlidePolicy   cfg.SlideTimerPolicy
}

// DefaultParams builds Params from the global configuration.
func DefaultParams() Params {
	return Params{
		Motion:        cfg.Motion,
		SlideDuration: cfg.Physics.SlideDuration,
		SlidePolicy:   cfg.Physics.SlideTimerPolicy,
	}
}

// Tick is the ambient input to one pipeline pass.
type Tick struct {
	Dt       float64 // seconds covered by this tick
	Now      float64 // clock value for this tick, same base as Dt
	GravityY float64
}
