package systems

import (
	"github.com/automoto/platformer-controller/components"
	"github.com/automoto/platformer-controller/leveldata"
	"github.com/automoto/platformer-controller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updatePlatforms moves every floating platform along its tween by dt
// seconds. It runs inside UpdateController so platforms and characters
// always advance by the same step.
func updatePlatforms(e *ecs.ECS, dt float64) {
	tags.FloatingPlatform.Each(e.World, func(entry *donburi.Entry) {
		offset := leveldata.AdvanceOffset(components.Tween.Get(entry), dt)
		obj := components.Object.Get(entry)
		obj.Y = components.Platform.Get(entry).BaseY + offset
		obj.Update()
	})
}
