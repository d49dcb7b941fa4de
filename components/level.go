package components

import (
	"github.com/automoto/platformer-controller/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Spawn        leveldata.Point
}

var Level = donburi.NewComponentType[LevelData]()
