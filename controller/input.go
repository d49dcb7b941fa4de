package controller

import (
	"math"

	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/gamemath"
)

// Names the controller asks its InputSource for.
const (
	AxisHorizontal = "Horizontal"
	ButtonJump     = "Jump"
	KeySlide       = "LeftShift"
)

// InputSource is the engine-side input state. The JustPressed queries must be
// edge-triggered: true only on the tick the input went from released to
// pressed.
type InputSource interface {
	Axis(name string) float64
	KeyJustPressed(key string) bool
	ButtonJustPressed(action string) bool
}

// Snapshot is one tick's worth of sampled input.
type Snapshot struct {
	MoveAxis     float64 // raw, in [-1, 1]
	JumpPressed  bool
	SlidePressed bool
}

// Sample reads the input source once. A NaN axis samples as 0 and anything
// outside [-1, 1] is clamped.
func Sample(src InputSource) Snapshot {
	if src == nil {
		return Snapshot{}
	}
	axis := src.Axis(AxisHorizontal)
	if math.IsNaN(axis) {
		axis = 0
	}
	return Snapshot{
		MoveAxis:     gamemath.ClampSpeed(axis, 1),
		JumpPressed:  src.ButtonJustPressed(ButtonJump),
		SlidePressed: src.KeyJustPressed(KeySlide),
	}
}

// SnapshotSource replays a fixed snapshot as an InputSource.
type SnapshotSource Snapshot

func (s SnapshotSource) Axis(name string) float64 {
	if name != AxisHorizontal {
		return 0
	}
	return s.MoveAxis
}

func (s SnapshotSource) KeyJustPressed(key string) bool {
	return key == KeySlide && s.SlidePressed
}

func (s SnapshotSource) ButtonJustPressed(action string) bool {
	return action == ButtonJump && s.JumpPressed
}

// ActionSource adapts the per-frame action state polled by the input system.
type ActionSource struct {
	In *components.InputData
}

func (s ActionSource) Axis(name string) float64 {
	if s.In == nil || name != AxisHorizontal {
		return 0
	}
	return s.In.Axis
}

func (s ActionSource) KeyJustPressed(key string) bool {
	return s.In != nil && key == KeySlide && s.In.Action(cfg.ActionSlide).JustPressed
}

func (s ActionSource) ButtonJustPressed(action string) bool {
	return s.In != nil && action == ButtonJump && s.In.Action(cfg.ActionJump).JustPressed
}
