package factory

import (
	"github.com/automoto/platformer-controller/archetypes"
	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/leveldata"
	"github.com/automoto/platformer-controller/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, spawn leveldata.Point) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Motion.SetValue(player, components.MotionData{Facing: 1})
	components.SlideTimers.SetValue(player, components.SlideTimerData{})
	components.Player.SetValue(player, components.PlayerData{})
	addToSpace(ecs, obj)

	return player
}
