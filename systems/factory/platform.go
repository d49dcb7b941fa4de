package factory

import (
	"github.com/automoto/platformer-controller/archetypes"
	"github.com/automoto/platformer-controller/components"
	"github.com/automoto/platformer-controller/controller"
	"github.com/automoto/platformer-controller/leveldata"
	"github.com/automoto/platformer-controller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform adds a level platform. Platforms without a usable cycle are
// plain solids; the rest bob on a tween sequence.
func CreatePlatform(ecs *ecs.ECS, p leveldata.Platform) *donburi.Entry {
	obj := controller.NewCollider(p.X, p.Y, p.W, p.H, tags.ResolvSolid, tags.ResolvPlatform)

	seq := p.NewSequence()
	if seq == nil {
		platform := archetypes.Platform.Spawn(ecs)
		obj.Data = platform
		components.Object.SetValue(platform, components.ObjectData{Object: obj})
		addToSpace(ecs, obj)
		return platform
	}

	platform := archetypes.FloatingPlatform.Spawn(ecs)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Platform.SetValue(platform, components.PlatformData{BaseY: obj.Y})
	components.Tween.Set(platform, seq)
	addToSpace(ecs, obj)

	return platform
}
