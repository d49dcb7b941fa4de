package factory

import (
	"log"
	"math"

	"github.com/automoto/platformer-controller/archetypes"
	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel populates the world from level: the collision space, every
// solid and platform, the clock, the camera and the player at the spawn.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	spawn := level.Spawn(leveldata.Point{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY})
	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: level,
		Spawn:        spawn,
	})

	CreateSpace(ecs,
		max(cfg.World.Width, int(math.Ceil(level.Width))),
		max(cfg.World.Height, int(math.Ceil(level.Height))),
		cfg.World.CellSize, cfg.World.CellSize,
	)
	for _, r := range level.Solids {
		CreateWall(ecs, r)
	}
	for _, p := range level.Platforms {
		CreatePlatform(ecs, p)
	}

	archetypes.Clock.Spawn(ecs)
	CreatePlayer(ecs, spawn)
	CreateCamera(ecs, spawn.X, spawn.Y)

	log.Printf("Loaded level %q: %d solids, %d platforms, %.0fx%.0f units",
		level.Name, len(level.Solids), len(level.Platforms), level.Width, level.Height)

	return entry
}
