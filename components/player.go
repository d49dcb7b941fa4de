package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Respawns int
}

var Player = donburi.NewComponentType[PlayerData]()
