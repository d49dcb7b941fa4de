package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlatformData anchors a floating platform's tween to its resting height.
type PlatformData struct {
	BaseY float64
}

var Platform = donburi.NewComponentType[PlatformData]()

// Tween drives a floating platform's vertical offset above BaseY.
var Tween = donburi.NewComponentType[gween.Sequence]()
