package components

import "github.com/yohamta/donburi"

// PauseData freezes the simulation. StepRequested lets exactly one tick
// through while paused.
type PauseData struct {
	IsPaused      bool
	StepRequested bool
}

var Pause = donburi.NewComponentType[PauseData]()

// DebugData toggles the collider overlay.
type DebugData struct {
	Enabled bool
}

var Debug = donburi.NewComponentType[DebugData]()
