package systems

import (
	"math"

	"github.com/automoto/platformer-controller/components"
	"github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/tags"
	"github.com/yohamta/donburi/ecs"
)

// followSmoothing is the fraction of the distance to the target the camera
// covers each frame.
const followSmoothing = 0.15

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Target the center of the player's collider.
	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2

	// Keep the level filling the screen where it is big enough to.
	ppu := config.World.PixelsPerUnit
	halfW := float64(config.World.ScreenWidth) / ppu / 2
	halfH := float64(config.World.ScreenHeight) / ppu / 2
	targetX = clampCamera(targetX, halfW, levelData.CurrentLevel.Width)
	targetY = clampCamera(targetY, halfH, levelData.CurrentLevel.Height)

	camera.Position.X += (targetX - camera.Position.X) * followSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * followSmoothing
}

// clampCamera keeps a view of half-size half inside [0, size]. A level
// smaller than the view is centered.
func clampCamera(v, half, size float64) float64 {
	if size <= 2*half {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}
