package systems

import (
	"fmt"

	"github.com/automoto/platformer-controller/components"
	"github.com/automoto/platformer-controller/controller"
	"github.com/automoto/platformer-controller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 8

// DrawHUD prints the player's motion state and the replay status.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	motion := components.Motion.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	rs := getOrCreateReplay(e)

	msg := fmt.Sprintf(
		"state: %s\npos: %6.2f %6.2f\nvel: %6.2f %6.2f\ngrounded: %t  air jump: %t\nrespawns: %d\nreplay: %s (%d frames)\n\nmove: arrows/AD  jump: space  slide: shift\nF5 save replay  F9 play replay\nP pause  . step  F3 colliders",
		controller.DeriveState(motion),
		obj.X, obj.Y,
		motion.Velocity.X, motion.Velocity.Y,
		motion.Grounded, motion.DoubleJumpAvailable,
		player.Respawns,
		rs.Status, rs.Recorder.Len(),
	)
	ebitenutil.DebugPrintAt(screen, msg, hudMargin, hudMargin)
}
